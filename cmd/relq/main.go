// Command relq runs the school exercise catalog on the relq engine.
package main

import "github.com/leengari/relq/internal/cli"

func main() {
	cli.Execute()
}

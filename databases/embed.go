// Package databases embeds the seed datasets shipped with relq.
package databases

import "embed"

// Content holds one directory per dataset (currently only "school"), each with
// a meta.json and one meta.json + data.json pair per table
//
//go:embed school
var Content embed.FS

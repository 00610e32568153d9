package fixture

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// Extract copies the dataset rooted at root in seedFS to target/<root> on
// disk, so it can be edited and loaded back with LoadFS(os.DirFS(target), root).
// An existing target dataset is left untouched.
func Extract(seedFS fs.FS, root, target string) (string, error) {
	targetDir := filepath.Join(target, filepath.FromSlash(root))

	if _, err := os.Stat(targetDir); !os.IsNotExist(err) {
		return targetDir, err
	}

	slog.Info("Seeding database...", "database", root, "target", targetDir)

	return targetDir, fs.WalkDir(seedFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := path.Clean(p)
		targetPath := filepath.Join(target, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}

		content, err := fs.ReadFile(seedFS, p)
		if err != nil {
			return err
		}

		return os.WriteFile(targetPath, content, 0644)
	})
}

package model

import (
	"os"
	"path/filepath"
)

// defaultCacheDir places the search cache under the user cache directory,
// falling back to a relative path when the home cannot be resolved.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".factforge-cache"
	}
	return filepath.Join(base, "factforge")
}

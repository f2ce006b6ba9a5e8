// Package misc holds build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X sdfc/misc.version=... -X sdfc/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name without extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "sdfc"
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

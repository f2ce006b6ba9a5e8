package process

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"sdfc/config"
	"sdfc/state"
)

// buildOutputPath returns output file name for document. Source directory
// structure is kept unless NoDirs is set, user template replaces file name
// (and may add subdirectories) when configured. Every path segment is
// cleaned and transliterated if requested.
func buildOutputPath(d *document, dst, ext string, env *state.LocalEnv) string {
	outDir := determineOutputDir(d.src, dst, env)
	defaultFile := buildDefaultFileName(d.src, ext, env)

	if env.Cfg.Import.PlanNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(d, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}

	return assemblePathWithSubdirs(outDir, expandedName, ext, env)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildDefaultFileName(src, ext string, env *state.LocalEnv) string {
	return cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env) + ext
}

func expandOutputNameTemplate(d *document, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(d, config.PlanNameTemplateFieldName, env.Cfg.Import.PlanNameTemplate)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expandedName))
}

// assemblePathWithSubdirs joins expanded template name, which may contain
// path separators, to outDir.
func assemblePathWithSubdirs(outDir, expandedName, ext string, env *state.LocalEnv) string {
	pathSegments := splitPath(expandedName)
	if len(pathSegments) == 0 {
		return outDir
	}

	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}
	dirParts = append(dirParts, cleanPathSegment(pathSegments[len(pathSegments)-1], env)+ext)
	return filepath.Join(dirParts...)
}

// splitPath returns non empty path segments, parent references are dropped
// so template cannot escape destination.
func splitPath(path string) []string {
	segments := make([]string, 0, 8)
	for s := range strings.SplitSeq(path, string(os.PathSeparator)) {
		if s == "" || s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	return slices.Clip(segments)
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Import.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

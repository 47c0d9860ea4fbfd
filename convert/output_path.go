package convert

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"

	"mwc/config"
	"mwc/state"
)

// buildOutputBase returns output path for src without extension: outputs
// add their own. src is relative to the processed directory or archive and
// its directories are kept under dst unless requested otherwise. Every
// segment is cleaned and, if requested, transliterated.
func buildOutputBase(src, dst string, env *state.LocalEnv) string {
	segments := splitPath(filepath.FromSlash(src))
	if len(segments) == 0 {
		return filepath.Join(dst, config.CleanFileName(""))
	}
	last := len(segments) - 1
	segments[last] = strings.TrimSuffix(segments[last], filepath.Ext(segments[last]))
	if env.NoDirs {
		segments = segments[last:]
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dst)
	for _, s := range segments {
		parts = append(parts, cleanPathSegment(s, env))
	}
	return filepath.Join(parts...)
}

// splitPath returns path segments, empty and "." segments dropped.
func splitPath(path string) []string {
	segments := make([]string, 0, 8)
	for head, tail := filepath.Split(path); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(filepath.Separator))
		if head == "" || head == "." || head == path {
			break
		}
		path = head
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

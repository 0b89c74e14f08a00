package selector

import (
	"strings"
)

// Options controls which files under Root are selected.
type Options struct {
	Root             string
	Recursive        bool
	Extensions       []string // Allow-list; empty selects every extension
	Include          []string // doublestar globs over the root-relative slash path
	Exclude          []string
	RespectGitignore bool
}

// NormalizeExtensions lowercases extensions and gives them a leading dot.
// "jpg", ".JPG" and "*.jpg" all become ".jpg". Entries "*" or "all" clear
// the filter.
func NormalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, raw := range exts {
		for _, ext := range strings.Split(raw, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			ext = strings.TrimPrefix(ext, "*")
			switch ext {
			case "":
				continue
			case "all":
				return nil
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			if !seen[ext] {
				seen[ext] = true
				out = append(out, ext)
			}
		}
	}
	return out
}

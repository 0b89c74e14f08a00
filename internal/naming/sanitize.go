package naming

import (
	"path/filepath"
	"strings"
)

// invalidChars are replaced with '_' by Sanitize.
const invalidChars = `\/:*?"<>|`

var sanitizer = newReplacer(invalidChars, "_")

func newReplacer(chars, with string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, c := range chars {
		pairs = append(pairs, string(c), with)
	}
	return strings.NewReplacer(pairs...)
}

// Sanitize replaces characters that are illegal in filenames with '_'.
// A leading '.' always survives so hidden files stay hidden.
func Sanitize(name string) string {
	sanitized := sanitizer.Replace(name)
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(sanitized, ".") {
		sanitized = "." + sanitized
	}
	return sanitized
}

// SplitExt splits name into stem and extension. The extension keeps its dot.
// A name whose only dot is the leading one (".bashrc") has no extension,
// and a trailing bare dot ("a.") is not an extension either.
func SplitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name || ext == "." {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// Package identity derives a canonical artist name from an uploaded
// document's filename.
package identity

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	timestampPrefix = regexp.MustCompile(`^\d{8}_\d{6}_`)
	spaceRuns       = regexp.MustCompile(`\s+`)
)

// UnknownArtist is used when a filename yields no usable name.
const UnknownArtist = "Unknown Artist"

// ResolveName turns a raw upload filename into a display name.
// "20231015_143000_jane_doe.pdf" becomes "Jane Doe".
func ResolveName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = timestampPrefix.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	name = titleCase(name)
	name = spaceRuns.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return UnknownArtist
	}
	return name
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, so "o'brien" becomes "O'Brien" and "jane doe"
// becomes "Jane Doe".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevAlpha := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevAlpha {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevAlpha = true
		} else {
			b.WriteRune(r)
			prevAlpha = false
		}
	}
	return b.String()
}

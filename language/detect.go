// Package language identifies programming languages (and related file types)
// from paths and file extensions.
//
// Lookups are driven by a static table that maps lowercase extensions to a
// Language. A Language carries a display name ("C++") and an ID ("cpp"). The ID
// is a lowercase form of the name with symbols replaced, so it can be used as a
// URL slug.
//
//	lang, ok := language.FromPath("src/main.rs") // Rust, rust, true
//	lang, ok = language.FromExtension("JsOn")    // JSON, json, true
//	lang, ok = language.FromExtension("gz")      // zero value, false
//
// All functions are safe for concurrent use.
package language

import (
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// Language is a (name, ID) pair. Two extensions that belong to the same
// language return equal values.
type Language struct {
	name string
	id   string
}

// Name returns the display name of the language, e.g. "C++".
func (l Language) Name() string {
	return l.name
}

// ID returns the slug-safe identifier of the language, e.g. "cpp".
func (l Language) ID() string {
	return l.id
}

// String returns the language ID.
func (l Language) String() string {
	return l.id
}

// FromPath identifies a language from the extension of the last element of
// path. Casing of the extension is ignored. The path does not need to exist
// and is never opened.
func FromPath(path string) (Language, bool) {
	ext, ok := Ext(path)
	if !ok {
		return Language{}, false
	}
	return FromExtension(ext)
}

// FromExtension identifies a language from a file extension given without the
// leading dot. Casing is ignored.
func FromExtension(ext string) (Language, bool) {
	return FromLowercaseExtension(lowerASCII(ext))
}

// FromLowercaseExtension is FromExtension for callers that already hold a
// lowercase extension. It skips case folding, so "JSON" does not match.
func FromLowercaseExtension(ext string) (Language, bool) {
	i, found := slices.BinarySearchFunc(table[:], ext, func(e entry, target string) int {
		return strings.Compare(e.ext, target)
	})
	if !found {
		return Language{}, false
	}
	return table[i].lang, true
}

// Ext returns the extension of the last element of path, without the dot.
// Trailing separators are ignored. Names whose only dot is the leading one
// (".bashrc") have no extension, and neither do "." and "..". An extension
// that is not valid UTF-8 is reported as missing.
func Ext(path string) (string, bool) {
	name := filepath.Base(path)
	if name == ".." {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	ext := name[i+1:]
	if !utf8.ValidString(ext) {
		return "", false
	}
	return ext, true
}

// Extensions returns every known extension in ascending order.
func Extensions() []string {
	exts := make([]string, len(table))
	for i, e := range table {
		exts[i] = e.ext
	}
	return exts
}

// ExtensionsFor returns the extensions that map to the language with the given
// ID, in ascending order. The ID is matched case-insensitively.
func ExtensionsFor(id string) []string {
	id = lowerASCII(id)
	var exts []string
	for _, e := range table {
		if e.lang.id == id {
			exts = append(exts, e.ext)
		}
	}
	return exts
}

// Languages returns each known language once, sorted by ID.
func Languages() []Language {
	seen := make(map[string]struct{}, len(table))
	langs := make([]Language, 0, len(table))
	for _, e := range table {
		if _, ok := seen[e.lang.id]; ok {
			continue
		}
		seen[e.lang.id] = struct{}{}
		langs = append(langs, e.lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].id < langs[j].id
	})
	return langs
}

// lowerASCII folds A-Z only. It returns s unchanged when there is nothing to
// fold.
func lowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

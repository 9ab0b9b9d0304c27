package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	gitignore "github.com/sabhiram/go-gitignore"
)

// DefaultPatterns are always ignored, whatever the project's ignore files say.
var DefaultPatterns = []string{
	".git/",
	".hg/",
	".svn/",
	"node_modules/",
	"bower_components/",
	"vendor/",
	"target/",
	"__pycache__/",
	".pytest_cache/",
	".idea/",
	".DS_Store",
	"Thumbs.db",
}

// Options controls which rule sources Load reads.
type Options struct {
	Gitignore  bool     // read <root>/.gitignore
	IgnoreFile string   // extra gitignore-style file relative to root, e.g. ".langignore"
	Includes   []string // glob patterns; when set, a file must match one
	Excludes   []string // glob patterns; a matching file is skipped
}

// Matcher decides which paths below a root take part in a scan.
// Paths passed to its methods are relative to the root.
type Matcher struct {
	rules    *gitignore.GitIgnore
	includes []glob.Glob
	excludes []glob.Glob
}

// Load compiles the ignore files under root and the include/exclude globs.
// Missing ignore files are not an error; unreadable ones and bad globs are.
func Load(root string, opts Options) (*Matcher, error) {
	var patterns []string

	if opts.Gitignore {
		lines, err := readLines(filepath.Join(root, ".gitignore"))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, lines...)
	}
	if opts.IgnoreFile != "" {
		lines, err := readLines(filepath.Join(root, opts.IgnoreFile))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, lines...)
	}
	patterns = append(patterns, DefaultPatterns...)

	includes, err := compileGlobs(opts.Includes)
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}
	excludes, err := compileGlobs(opts.Excludes)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Matcher{
		rules:    gitignore.CompileIgnoreLines(patterns...),
		includes: includes,
		excludes: excludes,
	}, nil
}

// Ignored reports whether an ignore rule matches rel. Directories are matched
// with a trailing slash so that "build/" style patterns apply.
func (m *Matcher) Ignored(rel string, isDir bool) bool {
	p := filepath.ToSlash(rel)
	if isDir {
		p = strings.TrimSuffix(p, "/") + "/"
	}
	return m.rules.MatchesPath(p)
}

// Selected reports whether the file rel passes the include and exclude globs.
func (m *Matcher) Selected(rel string) bool {
	p := filepath.ToSlash(rel)
	for _, g := range m.excludes {
		if g.Match(p) {
			return false
		}
	}
	if len(m.includes) == 0 {
		return true
	}
	for _, g := range m.includes {
		if g.Match(p) {
			return true
		}
	}
	return false
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading ignore file %s: %w", path, err)
	}
	return strings.Split(string(content), "\n"), nil
}

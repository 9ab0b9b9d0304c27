package walker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jake/detectlang/internal/ignore"
	"github.com/jake/detectlang/language"
	"go.uber.org/zap"
)

// File is a file found by Walk.
type File struct {
	RelPath  string // slash-separated, relative to the walk root
	Ext      string
	Language language.Language
	Known    bool
}

// Options configures Walk and Tree.
type Options struct {
	Matcher        *ignore.Matcher // nil means nothing is ignored
	MaxDepth       int             // 0 means unlimited; 1 is the root's direct children
	IncludeUnknown bool            // also report files with no known language
	Logger         *zap.Logger
}

// Callback is called for every selected file. Returning an error stops the
// walk and is returned from Walk.
type Callback func(f File) error

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Walk visits every file below root, skipping ignored paths, and reports the
// language of each one. Files are visited in lexical order.
func Walk(ctx context.Context, root string, opts Options, fn Callback) error {
	log := opts.logger()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	return filepath.WalkDir(absRoot, func(absPath string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if absPath == absRoot {
				return fmt.Errorf("failed to walk directory: %w", err)
			}
			log.Warn("error accessing path, skipping", zap.String("path", absPath), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if absPath == absRoot {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, absPath)
		if err != nil {
			log.Warn("could not get relative path, skipping", zap.String("path", absPath), zap.Error(err))
			return nil
		}

		if opts.Matcher != nil && opts.Matcher.Ignored(relPath, d.IsDir()) {
			log.Debug("ignore rule matched", zap.String("path", relPath))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if opts.MaxDepth > 0 && depth(relPath) >= opts.MaxDepth {
				log.Debug("max depth reached", zap.String("path", relPath), zap.Int("max_depth", opts.MaxDepth))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if opts.Matcher != nil && !opts.Matcher.Selected(relPath) {
			log.Debug("filtered out by include/exclude patterns", zap.String("path", relPath))
			return nil
		}

		ext, _ := language.Ext(relPath)
		lang, known := language.FromPath(relPath)
		if !known && !opts.IncludeUnknown {
			log.Debug("unknown language, skipping", zap.String("path", relPath))
			return nil
		}

		log.Debug("detected", zap.String("path", relPath), zap.String("language", lang.ID()))
		return fn(File{
			RelPath:  filepath.ToSlash(relPath),
			Ext:      strings.ToLower(ext),
			Language: lang,
			Known:    known,
		})
	})
}

// Tree renders the directory structure below root, directories first, with
// the language name after each file. Ignore rules and MaxDepth apply;
// include/exclude globs and IncludeUnknown only filter files.
func Tree(ctx context.Context, root string, opts Options) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("getting absolute path for %s: %w", root, err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return "", fmt.Errorf("failed to access %s: %w", root, err)
	}

	var b strings.Builder
	b.WriteString(filepath.Base(absRoot) + "/\n")
	if err := walkTree(ctx, absRoot, "", "", 0, opts, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func walkTree(ctx context.Context, absRoot, rel, prefix string, level int, opts Options, b *strings.Builder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.MaxDepth > 0 && level >= opts.MaxDepth {
		return nil
	}

	entries, err := os.ReadDir(filepath.Join(absRoot, rel))
	if err != nil {
		opts.logger().Warn("cannot read directory", zap.String("path", rel), zap.Error(err))
		return nil
	}

	kept := entries[:0]
	for _, entry := range entries {
		entryRel := filepath.Join(rel, entry.Name())
		if opts.Matcher != nil && opts.Matcher.Ignored(entryRel, entry.IsDir()) {
			continue
		}
		if !entry.IsDir() {
			if opts.Matcher != nil && !opts.Matcher.Selected(entryRel) {
				continue
			}
			if _, known := language.FromPath(entry.Name()); !known && !opts.IncludeUnknown {
				continue
			}
		}
		kept = append(kept, entry)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return strings.ToLower(kept[i].Name()) < strings.ToLower(kept[j].Name())
	})

	for i, entry := range kept {
		connector, childPrefix := "├── ", "│   "
		if i == len(kept)-1 {
			connector, childPrefix = "└── ", "    "
		}

		if entry.IsDir() {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, entry.Name())
			if err := walkTree(ctx, absRoot, filepath.Join(rel, entry.Name()), prefix+childPrefix, level+1, opts, b); err != nil {
				return err
			}
			continue
		}

		label := "unknown"
		if lang, ok := language.FromPath(entry.Name()); ok {
			label = lang.Name()
		}
		fmt.Fprintf(b, "%s%s%s (%s)\n", prefix, connector, entry.Name(), label)
	}
	return nil
}

// depth counts path elements: "a" is 1, "a/b" is 2.
func depth(rel string) int {
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

package cmd

import (
	"fmt"
	"os"

	"github.com/jake/detectlang/internal/ignore"
	"github.com/jake/detectlang/internal/report"
	"github.com/jake/detectlang/internal/walker"
	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	var listFiles bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Count files per language in a directory tree",
		Long: `Walk a directory, respecting .gitignore and .langignore rules, and report
how many files belong to each language.

By default, it operates in the current working directory.

Examples:
  # Summarize the current project
  detectlang scan

  # Only look at sources, as JSON
  detectlang scan ./repo --include "src/**" --exclude "**_test.go" -f json

  # Per-file listing, including files with no known language
  detectlang scan --files --unknown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootDir(args)
			if err != nil {
				return err
			}
			matcher, err := loadMatcher(a, root)
			if err != nil {
				return err
			}

			b := report.NewBuilder(root, listFiles)
			err = walker.Walk(cmd.Context(), root, walkOptions(a, matcher), b.Add)
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", root, err)
			}
			return report.Render(cmd.OutOrStdout(), a.cfg.Output.Format, b.Summary())
		},
	}

	addWalkFlags(cmd)
	cmd.Flags().BoolVar(&listFiles, "files", false, "List every file with its language")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [directory]",
		Short: "Print the directory tree with the language of each file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootDir(args)
			if err != nil {
				return err
			}
			matcher, err := loadMatcher(a, root)
			if err != nil {
				return err
			}

			tree, err := walker.Tree(cmd.Context(), root, walkOptions(a, matcher))
			if err != nil {
				return fmt.Errorf("failed to build tree for %s: %w", root, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree)
			return err
		},
	}

	addWalkFlags(cmd)
	return cmd
}

// walkFlagKeys maps the flags shared by scan and tree to their config keys.
// They are bound in app.init, for the command that actually runs.
var walkFlagKeys = map[string]string{
	"include":     "scan.includes",
	"exclude":     "scan.excludes",
	"max-depth":   "scan.max_depth",
	"ignore-file": "scan.ignore_file",
	"unknown":     "scan.unknown",
}

// addWalkFlags registers the flags shared by scan and tree.
func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("include", "i", nil, "Glob patterns a file must match (can be used multiple times)")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Glob patterns to exclude (can be used multiple times)")
	cmd.Flags().IntP("max-depth", "d", 0, "Maximum directory depth to walk (0 for unlimited)")
	cmd.Flags().Bool("no-gitignore", false, "Do not use .gitignore rules")
	cmd.Flags().String("ignore-file", ".langignore", "Additional gitignore-style file in the root directory")
	cmd.Flags().BoolP("unknown", "u", false, "Also report files with no known language")
}

func rootDir(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("root directory not found: %s", root)
		}
		return "", fmt.Errorf("failed to access root directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("specified path is not a directory: %s", root)
	}
	return root, nil
}

func loadMatcher(a *app, root string) (*ignore.Matcher, error) {
	matcher, err := ignore.Load(root, ignore.Options{
		Gitignore:  a.cfg.Scan.Gitignore,
		IgnoreFile: a.cfg.Scan.IgnoreFile,
		Includes:   a.cfg.Scan.Includes,
		Excludes:   a.cfg.Scan.Excludes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	return matcher, nil
}

func walkOptions(a *app, matcher *ignore.Matcher) walker.Options {
	return walker.Options{
		Matcher:        matcher,
		MaxDepth:       a.cfg.Scan.MaxDepth,
		IncludeUnknown: a.cfg.Scan.Unknown,
		Logger:         a.log,
	}
}

package cmd

import (
	"strings"

	"github.com/jake/detectlang/internal/report"
	"github.com/jake/detectlang/language"
	"github.com/spf13/cobra"
)

func newDetectCmd(a *app) *cobra.Command {
	var asExtension, lowercase bool

	cmd := &cobra.Command{
		Use:   "detect <path|extension>...",
		Short: "Identify the language of paths or extensions",
		Long: `Identify the language of each argument. Arguments are paths unless --ext
is given. Paths do not need to exist.

Examples:
  # Identify paths
  detectlang detect src/main.rs include/vector.hpp

  # Identify extensions, with or without the leading dot
  detectlang detect --ext JSON .yml

  # Skip case folding for input known to be lowercase
  detectlang detect --ext --lowercase json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]report.Detection, 0, len(args))
			for _, arg := range args {
				lang, ok := lookup(arg, asExtension, lowercase)
				results = append(results, report.NewDetection(arg, lang, ok))
			}
			return report.Render(cmd.OutOrStdout(), a.cfg.Output.Format, results)
		},
	}

	cmd.Flags().BoolVarP(&asExtension, "ext", "e", false, "Treat arguments as extensions instead of paths")
	cmd.Flags().BoolVar(&lowercase, "lowercase", false, "Match extensions exactly, without case folding")
	return cmd
}

func lookup(arg string, asExtension, lowercase bool) (language.Language, bool) {
	var ext string
	if asExtension {
		ext = strings.TrimPrefix(arg, ".")
	} else {
		if !lowercase {
			return language.FromPath(arg)
		}
		var ok bool
		if ext, ok = language.Ext(arg); !ok {
			return language.Language{}, false
		}
	}
	if lowercase {
		return language.FromLowercaseExtension(ext)
	}
	return language.FromExtension(ext)
}

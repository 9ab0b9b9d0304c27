package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/jake/detectlang/internal/config"
	"github.com/jake/detectlang/internal/walker"
	"github.com/jake/detectlang/language"
	"go.yaml.in/yaml/v3"
)

// Detection is the result for one input of the detect command.
type Detection struct {
	Input    string `json:"input" yaml:"input"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Detected bool   `json:"detected" yaml:"detected"`
}

// NewDetection builds a Detection from a lookup result.
func NewDetection(input string, lang language.Language, ok bool) Detection {
	return Detection{Input: input, Name: lang.Name(), ID: lang.ID(), Detected: ok}
}

// LanguageCount aggregates the files of one language.
type LanguageCount struct {
	Name       string   `json:"name" yaml:"name"`
	ID         string   `json:"id" yaml:"id"`
	Files      int      `json:"files" yaml:"files"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// Summary is the result of the scan command.
type Summary struct {
	Root      string          `json:"root" yaml:"root"`
	Known     int             `json:"known" yaml:"known"`
	Unknown   int             `json:"unknown" yaml:"unknown"`
	Languages []LanguageCount `json:"languages" yaml:"languages"`
	Files     []FileEntry     `json:"files,omitempty" yaml:"files,omitempty"`
}

// FileEntry is one scanned file, listed when the caller asks for files.
type FileEntry struct {
	Path string `json:"path" yaml:"path"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Builder accumulates walker results into a Summary.
type Builder struct {
	root      string
	withFiles bool
	known     int
	unknown   int
	counts    map[string]*LanguageCount
	exts      map[string]map[string]struct{}
	files     []FileEntry
}

// NewBuilder returns a Builder for a scan of root. withFiles keeps a per-file
// listing in the summary.
func NewBuilder(root string, withFiles bool) *Builder {
	return &Builder{
		root:      root,
		withFiles: withFiles,
		counts:    make(map[string]*LanguageCount),
		exts:      make(map[string]map[string]struct{}),
	}
}

// Add records one file. It has the walker.Callback signature.
func (b *Builder) Add(f walker.File) error {
	if b.withFiles {
		b.files = append(b.files, FileEntry{Path: f.RelPath, ID: f.Language.ID()})
	}
	if !f.Known {
		b.unknown++
		return nil
	}
	b.known++

	id := f.Language.ID()
	c, ok := b.counts[id]
	if !ok {
		c = &LanguageCount{Name: f.Language.Name(), ID: id}
		b.counts[id] = c
		b.exts[id] = make(map[string]struct{})
	}
	c.Files++
	b.exts[id][f.Ext] = struct{}{}
	return nil
}

// Summary returns the languages ordered by file count, most first, then by ID.
func (b *Builder) Summary() Summary {
	s := Summary{
		Root:      b.root,
		Known:     b.known,
		Unknown:   b.unknown,
		Languages: make([]LanguageCount, 0, len(b.counts)),
		Files:     b.files,
	}
	for id, c := range b.counts {
		lc := *c
		lc.Extensions = make([]string, 0, len(b.exts[id]))
		for ext := range b.exts[id] {
			lc.Extensions = append(lc.Extensions, ext)
		}
		sort.Strings(lc.Extensions)
		s.Languages = append(s.Languages, lc)
	}
	sort.Slice(s.Languages, func(i, j int) bool {
		if s.Languages[i].Files != s.Languages[j].Files {
			return s.Languages[i].Files > s.Languages[j].Files
		}
		return s.Languages[i].ID < s.Languages[j].ID
	})
	return s
}

// TableRow is one row of the list command.
type TableRow struct {
	Extension string `json:"extension" yaml:"extension"`
	Name      string `json:"name" yaml:"name"`
	ID        string `json:"id" yaml:"id"`
}

// Table lists the extension table, optionally restricted to one language ID.
func Table(id string) []TableRow {
	exts := language.Extensions()
	if id != "" {
		exts = language.ExtensionsFor(id)
	}
	rows := make([]TableRow, 0, len(exts))
	for _, ext := range exts {
		lang, _ := language.FromLowercaseExtension(ext)
		rows = append(rows, TableRow{Extension: ext, Name: lang.Name(), ID: lang.ID()})
	}
	return rows
}

// Render writes v in the given format. v must be a []Detection, a Summary or a
// []TableRow.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return nil
	case config.FormatText, "":
		return renderText(w, v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch v := v.(type) {
	case []Detection:
		for _, d := range v {
			if !d.Detected {
				fmt.Fprintf(tw, "%s\tunknown\n", d.Input)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Input, d.Name, d.ID)
		}
	case Summary:
		fmt.Fprintln(tw, "LANGUAGE\tID\tFILES\tEXTENSIONS")
		for _, l := range v.Languages {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", l.Name, l.ID, l.Files, strings.Join(l.Extensions, ","))
		}
		if len(v.Files) > 0 {
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "PATH\tID")
			for _, f := range v.Files {
				id := f.ID
				if id == "" {
					id = "unknown"
				}
				fmt.Fprintf(tw, "%s\t%s\n", f.Path, id)
			}
		}
		fmt.Fprintf(tw, "\n%d files detected, %d unknown\n", v.Known, v.Unknown)
	case []TableRow:
		fmt.Fprintln(tw, "EXTENSION\tNAME\tID")
		for _, r := range v {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Extension, r.Name, r.ID)
		}
	default:
		return fmt.Errorf("cannot render %T as text", v)
	}
	return tw.Flush()
}

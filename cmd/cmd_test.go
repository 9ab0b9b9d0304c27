package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jake/detectlang/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestDetectPaths(t *testing.T) {
	out, err := run(t, "detect", "-f", "json", "src/main.rs", "foo.tar.gz", "README")
	require.NoError(t, err)

	var got []report.Detection
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []report.Detection{
		{Input: "src/main.rs", Name: "Rust", ID: "rust", Detected: true},
		{Input: "foo.tar.gz"},
		{Input: "README"},
	}, got)
}

func TestDetectExtensions(t *testing.T) {
	out, err := run(t, "detect", "--ext", "-f", "json", "JSON", ".hpp")
	require.NoError(t, err)

	var got []report.Detection
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "json", got[0].ID)
	assert.Equal(t, "C++", got[1].Name)
}

func TestDetectLowercase(t *testing.T) {
	out, err := run(t, "detect", "--ext", "--lowercase", "-f", "json", "JSON", "json")
	require.NoError(t, err)

	var got []report.Detection
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.False(t, got[0].Detected)
	assert.True(t, got[1].Detected)

	out, err = run(t, "detect", "--lowercase", "-f", "json", "a.JSON", "a.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got[0].Detected)
	assert.True(t, got[1].Detected)
}

func TestDetectText(t *testing.T) {
	out, err := run(t, "detect", "foo.cpp", "foo.unknown")
	require.NoError(t, err)
	assert.Regexp(t, `foo\.cpp\s+C\+\+\s+cpp`, out)
	assert.Regexp(t, `foo\.unknown\s+unknown`, out)
}

func TestDetectRequiresArgs(t *testing.T) {
	_, err := run(t, "detect")
	assert.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "detect", "-f", "xml", "a.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestScan(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.go":        "",
		"util.go":        "",
		"web/app.ts":     "",
		"web/style.scss": "",
		"gen/out.go":     "",
		"notes.txt":      "",
		".gitignore":     "gen/\n",
	})

	out, err := run(t, "scan", dir, "-f", "json")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 4, s.Known)
	assert.Equal(t, 0, s.Unknown)
	require.Len(t, s.Languages, 3)
	assert.Equal(t, report.LanguageCount{Name: "Go", ID: "go", Files: 2, Extensions: []string{"go"}}, s.Languages[0])

	out, err = run(t, "scan", dir, "-f", "json", "--no-gitignore", "--unknown", "--files")
	require.NoError(t, err)
	s = report.Summary{}
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 5, s.Known)
	assert.Equal(t, 2, s.Unknown)
	assert.Len(t, s.Files, 7)
}

func TestScanFilters(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.go":      "",
		"main_test.go": "",
		"web/app.ts":   "",
	})

	out, err := run(t, "scan", dir, "-f", "json", "--exclude", "**_test.go", "--max-depth", "1")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 1, s.Known)
	require.Len(t, s.Languages, 1)
	assert.Equal(t, "go", s.Languages[0].ID)
}

func TestScanConfigFile(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.py":  "",
		"b.rb":  "",
		"c.lua": "",
	})
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\nscan:\n  includes: [\"*.py\"]\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "scan", dir)
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 1, s.Known)
	assert.Equal(t, "python", s.Languages[0].ID)
}

func TestScanMissingDir(t *testing.T) {
	_, err := run(t, "scan", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root directory not found")
}

func TestScanNotADir(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.go": ""})
	_, err := run(t, "scan", filepath.Join(dir, "a.go"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestTree(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"cmd/main.go": "",
		"lib.rs":      "",
	})

	out, err := run(t, "tree", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir)+"/\n├── cmd/\n│   └── main.go (Go)\n└── lib.rs (Rust)\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "--id", "cpp", "-f", "json")
	require.NoError(t, err)

	var rows []report.TableRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, "C++", r.Name)
	}

	_, err = run(t, "list", "--id", "cobol")
	assert.Error(t, err)

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Regexp(t, `EXTENSION\s+NAME\s+ID`, out)
	assert.Regexp(t, `yml\s+YAML\s+yaml`, out)
}

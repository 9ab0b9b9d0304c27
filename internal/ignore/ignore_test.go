package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultsAlwaysApply(t *testing.T) {
	m, err := Load(t.TempDir(), Options{})
	require.NoError(t, err)

	assert.True(t, m.Ignored(".git", true))
	assert.True(t, m.Ignored("web/node_modules", true))
	assert.True(t, m.Ignored(".DS_Store", false))
	assert.False(t, m.Ignored("src", true))
	assert.False(t, m.Ignored("src/main.go", false))
}

func TestGitignoreAndIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "# comment\nbuild/\n*.gen.go\n")
	writeFile(t, filepath.Join(root, ".langignore"), "docs/\n")

	m, err := Load(root, Options{Gitignore: true, IgnoreFile: ".langignore"})
	require.NoError(t, err)
	assert.True(t, m.Ignored("build", true))
	assert.True(t, m.Ignored("pkg/api.gen.go", false))
	assert.True(t, m.Ignored("docs", true))
	assert.False(t, m.Ignored("pkg/api.go", false))

	m, err = Load(root, Options{Gitignore: false, IgnoreFile: ".langignore"})
	require.NoError(t, err)
	assert.False(t, m.Ignored("build", true))
	assert.True(t, m.Ignored("docs", true))
}

func TestMissingIgnoreFilesAreFine(t *testing.T) {
	_, err := Load(t.TempDir(), Options{Gitignore: true, IgnoreFile: ".langignore"})
	assert.NoError(t, err)
}

func TestSelected(t *testing.T) {
	m, err := Load(t.TempDir(), Options{
		Includes: []string{"src/**", "*.md"},
		Excludes: []string{"**_test.go"},
	})
	require.NoError(t, err)

	assert.True(t, m.Selected("src/main.go"))
	assert.True(t, m.Selected("README.md"))
	assert.False(t, m.Selected("src/main_test.go"))
	assert.False(t, m.Selected("lib/util.go"))
	assert.False(t, m.Selected("docs/guide.md"))
}

func TestSelectedWithoutIncludes(t *testing.T) {
	m, err := Load(t.TempDir(), Options{Excludes: []string{"*.json"}})
	require.NoError(t, err)
	assert.True(t, m.Selected("a/b.go"))
	assert.False(t, m.Selected("package.json"))
}

func TestInvalidGlob(t *testing.T) {
	_, err := Load(t.TempDir(), Options{Includes: []string{"[unclosed"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include patterns")
}

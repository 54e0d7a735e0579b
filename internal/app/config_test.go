package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progviz/internal/app"
)

func TestLoadConfig_MissingOptionalFile(t *testing.T) {
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), app.DefaultConfigFile), false)
	require.NoError(t, err)
	assert.Equal(t, "output", cfg.Output)
	assert.Equal(t, []string{"ENGG 160"}, cfg.CoreqExempt)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_MissingRequiredFile(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "custom.yaml"), true)
	require.Error(t, err)
}

func TestLoadConfig_ResolvesRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
courses: data/courses.xlsx
sequence: /abs/sequence.xlsx
department: " ECE "
coreq_exempt: ["ENGG 160", " ", "MATH 100"]
log_level: DEBUG
`), 0o644))

	cfg, err := app.LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "courses.xlsx"), cfg.Courses)
	assert.Equal(t, filepath.Clean("/abs/sequence.xlsx"), cfg.Sequence)
	assert.Equal(t, filepath.Join(dir, "output"), cfg.Output)
	assert.Equal(t, "ECE", cfg.Department)
	assert.Equal(t, []string{"ENGG 160", "MATH 100"}, cfg.CoreqExempt)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: a.xlsx\nsequence: b.xlsx\n"), 0o644))

	t.Setenv(app.EnvCourses, "env-courses.xlsx")
	t.Setenv(app.EnvDepartment, "MECE")
	t.Setenv(app.EnvOutput, "site")

	cfg, err := app.LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "env-courses.xlsx", cfg.Courses)
	assert.Equal(t, filepath.Join(dir, "b.xlsx"), cfg.Sequence)
	assert.Equal(t, "MECE", cfg.Department)
	assert.Equal(t, "site", cfg.Output)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: [unterminated"), 0o644))

	_, err := app.LoadConfig(path, true)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := app.DefaultConfig()
	assert.ErrorContains(t, cfg.Validate(), "courses")

	cfg.Courses = "c.xlsx"
	assert.ErrorContains(t, cfg.Validate(), "sequence")

	cfg.Sequence = "s.xlsx"
	assert.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), "log_level")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), app.DefaultConfigFile)

	wrote, err := app.WriteDefaultConfig(path)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = app.WriteDefaultConfig(path)
	require.NoError(t, err)
	assert.False(t, wrote)

	cfg, err := app.LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "data", "courses.xlsx"), cfg.Courses)
	assert.Empty(t, cfg.Accreditation)
	assert.NoError(t, cfg.Validate())
}

package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "progviz.yaml"

const defaultConfigYAML = `# progviz configuration
#
# Paths are relative to this file. PROGVIZ_* environment variables and
# command-line flags override these values.

# Course catalog workbook (first sheet, 16 columns).
courses: data/courses.xlsx

# Category legend workbook (one column per category: name, colour, members).
categories: data/categories.xlsx

# Sequencing workbook (one sheet per plan; department code in A1).
sequence: data/sequence.xlsx

# Optional accreditation units workbook.
# accreditation: data/accreditation.xlsx

# Department code; defaults to cell A1 of the sequencing workbook.
# department: ECE

# Directory the site is written to.
output: output

# Courses whose corequisites are never demoted to prerequisites.
coreq_exempt:
  - ENGG 160

# debug, info, warn or error.
log_level: info
`

// Environment variables overriding the config file.
const (
	EnvCourses       = "PROGVIZ_COURSES"
	EnvCategories    = "PROGVIZ_CATEGORIES"
	EnvSequence      = "PROGVIZ_SEQUENCE"
	EnvAccreditation = "PROGVIZ_ACCREDITATION"
	EnvDepartment    = "PROGVIZ_DEPARTMENT"
	EnvOutput        = "PROGVIZ_OUTPUT"
)

// Config holds the input workbooks and runtime options.
type Config struct {
	Courses       string   `yaml:"courses"`
	Categories    string   `yaml:"categories"`
	Sequence      string   `yaml:"sequence"`
	Accreditation string   `yaml:"accreditation,omitempty"`
	Department    string   `yaml:"department,omitempty"`
	Output        string   `yaml:"output"`
	CoreqExempt   []string `yaml:"coreq_exempt"`
	LogLevel      string   `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Output:      "output",
		CoreqExempt: []string{"ENGG 160"},
		LogLevel:    "info",
	}
}

// LoadConfig reads path, then applies .env and PROGVIZ_* overrides. A
// missing file is an error only when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		parsed.applyDefaults()
		parsed.normalize(filepath.Dir(path))
		cfg = parsed
	}

	_ = godotenv.Load()
	cfg.applyEnv()
	cfg.normalize("")
	return cfg, nil
}

// WriteDefaultConfig writes the commented default config to path unless a
// file already exists there. It reports whether it wrote the file.
func WriteDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return false, fmt.Errorf("config: write %s: %w", path, err)
	}
	return true, nil
}

// Validate reports the first missing or invalid setting.
func (c Config) Validate() error {
	if c.Courses == "" {
		return fmt.Errorf("config: courses workbook is required")
	}
	if c.Sequence == "" {
		return fmt.Errorf("config: sequence workbook is required")
	}
	if c.Output == "" {
		return fmt.Errorf("config: output directory is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.CoreqExempt == nil {
		c.CoreqExempt = def.CoreqExempt
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvCourses:       &c.Courses,
		EnvCategories:    &c.Categories,
		EnvSequence:      &c.Sequence,
		EnvAccreditation: &c.Accreditation,
		EnvDepartment:    &c.Department,
		EnvOutput:        &c.Output,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*field = v
		}
	}
}

// normalize trims every value and resolves relative paths against base.
func (c *Config) normalize(base string) {
	c.Courses = resolvePath(base, c.Courses)
	c.Categories = resolvePath(base, c.Categories)
	c.Sequence = resolvePath(base, c.Sequence)
	c.Accreditation = resolvePath(base, c.Accreditation)
	c.Output = resolvePath(base, c.Output)
	c.Department = strings.TrimSpace(c.Department)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	exempt := c.CoreqExempt[:0]
	for _, name := range c.CoreqExempt {
		if name = strings.TrimSpace(name); name != "" {
			exempt = append(exempt, name)
		}
	}
	c.CoreqExempt = exempt
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) || base == "" {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

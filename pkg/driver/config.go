package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/AaronStGeorge/cat-lox/pkg/interpreter"
)

// ConfigFileName is the file FindConfig searches for.
const ConfigFileName = "catbox.yml"

// ErrConfigNotFound reports that no catbox.yml exists from the start
// directory up to the filesystem root.
var ErrConfigNotFound = errors.New("catbox.yml not found")

// ColorMode selects when diagnostics and REPL output are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the merged result of defaults, catbox.yml and CATBOX_* variables.
type Config struct {
	// Path is the absolute location of the loaded file, empty for defaults.
	Path         string
	Prelude      []string
	HistoryFile  string
	Prompt       string
	Color        ColorMode
	LogLevel     string
	Debug        bool
	MaxCallDepth int
}

type configFile struct {
	Prelude      []string `yaml:"prelude"`
	HistoryFile  string   `yaml:"history_file"`
	Prompt       *string  `yaml:"prompt"`
	Color        string   `yaml:"color"`
	LogLevel     string   `yaml:"log_level"`
	Debug        *bool    `yaml:"debug"`
	MaxCallDepth *int     `yaml:"max_call_depth"`
}

// ValidationError aggregates configuration problems.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no catbox.yml is present.
func DefaultConfig() *Config {
	return &Config{
		HistoryFile:  ".catbox_history",
		Prompt:       "> ",
		Color:        ColorAuto,
		LogLevel:     "warn",
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
	}
}

// LoadConfig parses path on top of the defaults. Relative prelude and
// history paths are taken relative to the file's directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", absPath)
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(absPath string) *Config {
	cfg := DefaultConfig()
	cfg.Path = absPath
	dir := filepath.Dir(absPath)
	for _, entry := range raw.Prelude {
		cfg.Prelude = append(cfg.Prelude, relativeTo(dir, entry))
	}
	if raw.HistoryFile != "" {
		cfg.HistoryFile = relativeTo(dir, raw.HistoryFile)
	}
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.Color != "" {
		cfg.Color = ColorMode(strings.ToLower(raw.Color))
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	if raw.MaxCallDepth != nil {
		cfg.MaxCallDepth = *raw.MaxCallDepth
	}
	return cfg
}

func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs ValidationError
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	if c.MaxCallDepth < 1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_call_depth must be positive (got %d)", c.MaxCallDepth))
	}
	for i, entry := range c.Prelude {
		if strings.TrimSpace(entry) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("prelude[%d] must be a non-empty path", i))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindConfig walks from start up to the filesystem root looking for
// catbox.yml. The error wraps ErrConfigNotFound when none exists.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// LoadEnv loads the given dotenv files into the process environment,
// skipping files that do not exist. Variables already set are kept.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("env: load %s: %w", file, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from CATBOX_* variables found through lookup,
// usually os.LookupEnv. CATBOX_PRELUDE is a path list.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs ValidationError
	if v, ok := lookup("CATBOX_PRELUDE"); ok {
		c.Prelude = nil
		for _, entry := range filepath.SplitList(v) {
			if entry != "" {
				c.Prelude = append(c.Prelude, entry)
			}
		}
	}
	if v, ok := lookup("CATBOX_HISTORY_FILE"); ok {
		c.HistoryFile = v
	}
	if v, ok := lookup("CATBOX_PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookup("CATBOX_COLOR"); ok {
		c.Color = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := lookup("CATBOX_LOG_LEVEL"); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup("CATBOX_DEBUG"); ok {
		debug, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("CATBOX_DEBUG must be a boolean (got %q)", v))
		} else {
			c.Debug = debug
		}
	}
	if v, ok := lookup("CATBOX_MAX_CALL_DEPTH"); ok {
		depth, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("CATBOX_MAX_CALL_DEPTH must be an integer (got %q)", v))
		} else {
			c.MaxCallDepth = depth
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return c.Validate()
}

// ParseLogLevel accepts debug, info, warn and error in any case.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", name)
	}
	return level, nil
}

// NewLogger builds a text logger at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// UseColor resolves the color mode; auto defers to whether the output is
// a terminal.
func (c *Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

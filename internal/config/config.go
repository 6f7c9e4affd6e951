// Package config loads, validates, and persists the holocron user
// configuration stored as TOML under the per-user config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configDirName  = "holocron"
	configFileName = "config.toml"

	// DefaultArchiveDir is the directory under the TIL repository where
	// entries are filed when no archive_dir is configured.
	DefaultArchiveDir = "archive"
)

// ErrNotConfigured is returned by Load when no config file exists yet.
// Callers should run first-time setup rather than treating this as fatal.
var ErrNotConfigured = errors.New("holocron is not configured")

// NotesFormat identifies the knowledge-base flavor notes are written for.
type NotesFormat string

const (
	FormatObsidian NotesFormat = "obsidian"
	FormatLogseq   NotesFormat = "logseq"
	FormatPlain    NotesFormat = "plain"
)

// Valid reports whether the format is one of the supported values.
func (f NotesFormat) Valid() bool {
	switch f {
	case FormatObsidian, FormatLogseq, FormatPlain:
		return true
	}
	return false
}

func (f NotesFormat) String() string { return string(f) }

// ParseNotesFormat converts user input into a NotesFormat.
func ParseNotesFormat(s string) (NotesFormat, error) {
	f := NotesFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid notes format %q: use obsidian, logseq, or plain", s)
	}
	return f, nil
}

// Config is the persisted holocron configuration.
type Config struct {
	// TILPath is the root of the TIL repository.
	TILPath string `toml:"til_path"`

	// ArchiveDir is the directory within TILPath for TIL entries.
	ArchiveDir string `toml:"archive_dir"`

	// NotesPath is the optional knowledge-base repository root.
	NotesPath string `toml:"notes_path,omitempty"`

	// NotesFormat selects the note flavor (obsidian, logseq, plain).
	NotesFormat NotesFormat `toml:"notes_format"`
}

// New returns a Config for the given TIL path with default settings.
func New(tilPath string) *Config {
	return &Config{
		TILPath:     tilPath,
		ArchiveDir:  DefaultArchiveDir,
		NotesFormat: FormatObsidian,
	}
}

// Path returns the location of the config file
// (typically ~/.config/holocron/config.toml).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the config from the default location. Missing file yields
// ErrNotConfigured.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// Viper defaults so older config files missing keys fall back gracefully.
	v.SetDefault("archive_dir", DefaultArchiveDir)
	v.SetDefault("notes_format", string(FormatObsidian))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := &Config{
		TILPath:     v.GetString("til_path"),
		ArchiveDir:  v.GetString("archive_dir"),
		NotesPath:   v.GetString("notes_path"),
		NotesFormat: NotesFormat(v.GetString("notes_format")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks required fields and the notes format enum.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TILPath) == "" {
		return fmt.Errorf("til_path must not be empty")
	}
	if c.ArchiveDir == "" {
		return fmt.Errorf("archive_dir must not be empty")
	}
	if !c.NotesFormat.Valid() {
		return fmt.Errorf("invalid notes format %q: use obsidian, logseq, or plain", c.NotesFormat)
	}
	return nil
}

// Save validates and writes the config to the default location atomically.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.saveTo(path)
}

// saveTo writes the config via a temp file and rename so a crash mid-write
// never leaves a truncated config behind.
func (c *Config) saveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, configFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp config file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing config file %s: %w", path, err)
	}
	return nil
}

// ArchivePath returns the full path of the archive directory.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.TILPath, c.ArchiveDir)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
		}
	}
	return path
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/richtext"
	"github.com/alnah/go-md2post/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Field limits.
const (
	MaxBulletGlyphRunes  = 4
	MaxNestedIndentRunes = 16
	MaxReceiveIDLength   = 256
	MaxDirLength         = 4096
)

// appDir is the directory under os.UserConfigDir searched for named configs.
const appDir = "go-md2post"

// Config holds all configuration for post generation.
type Config struct {
	Post     PostConfig     `yaml:"post"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Output   OutputConfig   `yaml:"output"`
	Message  MessageConfig  `yaml:"message"`
}

// Validated sections repeat their YAML keys as json tags: ozzo-validation
// names failing fields after the json tag.

// PostConfig defines the shape of generated posts.
type PostConfig struct {
	Locale       string `yaml:"locale" json:"locale"`             // zh_cn, en_us, ja_jp (default: zh_cn)
	BulletGlyph  string `yaml:"bulletGlyph" json:"bulletGlyph"`   // default: "•"
	NestedIndent string `yaml:"nestedIndent" json:"nestedIndent"` // repeated per nesting depth (default: two spaces)
}

// MarkdownConfig defines Markdown parsing options.
type MarkdownConfig struct {
	Linkify           bool `yaml:"linkify"`
	FrontMatter       bool `yaml:"frontMatter"`
	NormalizeLanguage bool `yaml:"normalizeLanguage"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" json:"defaultDir"` // empty = next to the source
	Compact    bool   `yaml:"compact" json:"compact"`
}

// MessageConfig defines the optional send-message envelope.
type MessageConfig struct {
	Envelope  bool   `yaml:"envelope" json:"envelope"`
	ReceiveID string `yaml:"receiveId" json:"receiveId"`
}

// Validate checks every section and reports the first failing field, e.g.
// "invalid config: post: locale: must be a valid value.".
// Called by LoadConfig; available to callers building a Config by hand.
func (c *Config) Validate() error {
	sections := []struct {
		name string
		err  error
	}{
		{"post", c.Post.validate()},
		{"output", c.Output.validate()},
		{"message", c.Message.validate()},
	}
	for _, s := range sections {
		if s.err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigInvalid, s.name, s.err)
		}
	}
	return nil
}

func (p *PostConfig) validate() error {
	locales := make([]any, len(richtext.Locales))
	for i, l := range richtext.Locales {
		locales[i] = l
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.Locale, validation.In(locales...)),
		validation.Field(&p.BulletGlyph, validation.RuneLength(0, MaxBulletGlyphRunes)),
		validation.Field(&p.NestedIndent, validation.RuneLength(0, MaxNestedIndentRunes)),
	)
}

func (o *OutputConfig) validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.DefaultDir, validation.Length(0, MaxDirLength)),
	)
}

func (m *MessageConfig) validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.ReceiveID,
			validation.When(m.Envelope, validation.Required),
			validation.Length(0, MaxReceiveIDLength),
		),
	)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Post: PostConfig{
			Locale:       richtext.DefaultLocale,
			BulletGlyph:  "•",
			NestedIndent: "  ",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a path. Otherwise it names
// a config searched as <name>.yaml or <name>.yml in the current directory,
// then in the user config directory. Fields absent from the file keep their
// DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the files LoadConfig tries for a config name, in order:
// .yaml then .yml, first in the current directory, then in
// <UserConfigDir>/go-md2post.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, appDir))
	}

	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

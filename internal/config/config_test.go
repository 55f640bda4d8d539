package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Post.Locale != "zh_cn" {
		t.Errorf("Post.Locale = %q, want zh_cn", cfg.Post.Locale)
	}
	if cfg.Post.BulletGlyph != "•" {
		t.Errorf("Post.BulletGlyph = %q, want •", cfg.Post.BulletGlyph)
	}
	if cfg.Post.NestedIndent != "  " {
		t.Errorf("Post.NestedIndent = %q, want two spaces", cfg.Post.NestedIndent)
	}
	if cfg.Markdown.Linkify || cfg.Markdown.FrontMatter || cfg.Markdown.NormalizeLanguage {
		t.Error("markdown extensions should be disabled by default")
	}
	if cfg.Message.Envelope {
		t.Error("Message.Envelope = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty locale uses default", mutate: func(c *Config) { c.Post.Locale = "" }},
		{name: "en_us", mutate: func(c *Config) { c.Post.Locale = "en_us" }},
		{name: "ja_jp", mutate: func(c *Config) { c.Post.Locale = "ja_jp" }},
		{
			name:    "unknown locale",
			mutate:  func(c *Config) { c.Post.Locale = "fr_fr" },
			wantErr: "post",
		},
		{name: "multi-byte glyph", mutate: func(c *Config) { c.Post.BulletGlyph = "・" }},
		{
			name:    "glyph too long",
			mutate:  func(c *Config) { c.Post.BulletGlyph = "-----" },
			wantErr: "bulletGlyph",
		},
		{
			name:    "indent too long",
			mutate:  func(c *Config) { c.Post.NestedIndent = strings.Repeat(" ", MaxNestedIndentRunes+1) },
			wantErr: "nestedIndent",
		},
		{
			name:    "envelope without receive id",
			mutate:  func(c *Config) { c.Message.Envelope = true },
			wantErr: "message",
		},
		{
			name: "envelope with receive id",
			mutate: func(c *Config) {
				c.Message.Envelope = true
				c.Message.ReceiveID = "oc_123"
			},
		},
		{
			name:    "receive id too long",
			mutate:  func(c *Config) { c.Message.ReceiveID = strings.Repeat("x", MaxReceiveIDLength+1) },
			wantErr: "receiveId",
		},
		{
			name:    "output dir too long",
			mutate:  func(c *Config) { c.Output.DefaultDir = strings.Repeat("d", MaxDirLength+1) },
			wantErr: "output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("Validate() = %v, want ErrConfigInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateNamesYAMLKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "locale",
			mutate: func(c *Config) { c.Post.Locale = "fr_fr" },
			want:   "invalid config: post: locale: must be a valid value.",
		},
		{
			name:   "bulletGlyph",
			mutate: func(c *Config) { c.Post.BulletGlyph = "-----" },
			want:   "invalid config: post: bulletGlyph: the length must be no more than 4.",
		},
		{
			name:   "receiveId",
			mutate: func(c *Config) { c.Message.Envelope = true },
			want:   "invalid config: message: receiveId: cannot be blank.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if err.Error() != tt.want {
				t.Errorf("Validate() = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("file path loads all sections", func(t *testing.T) {
		p := writeConfig(t, t.TempDir(), "full.yaml", `post:
  locale: en_us
  bulletGlyph: "-"
  nestedIndent: "    "
markdown:
  linkify: true
  frontMatter: true
  normalizeLanguage: true
output:
  defaultDir: "/tmp/out"
  compact: true
message:
  envelope: true
  receiveId: "oc_abc"
`)
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{
			Post:     PostConfig{Locale: "en_us", BulletGlyph: "-", NestedIndent: "    "},
			Markdown: MarkdownConfig{Linkify: true, FrontMatter: true, NormalizeLanguage: true},
			Output:   OutputConfig{DefaultDir: "/tmp/out", Compact: true},
			Message:  MessageConfig{Envelope: true, ReceiveID: "oc_abc"},
		}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		p := writeConfig(t, t.TempDir(), "partial.yaml", "markdown:\n  linkify: true\n")
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Post.Locale != "zh_cn" || cfg.Post.BulletGlyph != "•" {
			t.Errorf("Post = %+v, want defaults", cfg.Post)
		}
		if !cfg.Markdown.Linkify {
			t.Error("Markdown.Linkify = false, want true")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		p := writeConfig(t, t.TempDir(), "invalid.yaml", "post: [unclosed")
		_, err := LoadConfig(p)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		p := writeConfig(t, t.TempDir(), "unknown.yaml", "post:\n  title: nope\n")
		_, err := LoadConfig(p)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value returns ErrConfigInvalid", func(t *testing.T) {
		p := writeConfig(t, t.TempDir(), "bad.yaml", "post:\n  locale: de_de\n")
		_, err := LoadConfig(p)
		if !errors.Is(err, ErrConfigInvalid) {
			t.Errorf("error = %v, want ErrConfigInvalid", err)
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "team.yaml", "post:\n  locale: ja_jp\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Post.Locale != "ja_jp" {
			t.Errorf("Post.Locale = %q, want ja_jp", cfg.Post.Locale)
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "team.yaml", "post:\n  bulletGlyph: \"*\"\n")
		writeConfig(t, dir, "team.yml", "post:\n  bulletGlyph: \"+\"\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Post.BulletGlyph != "*" {
			t.Errorf("Post.BulletGlyph = %q, want * (from .yaml)", cfg.Post.BulletGlyph)
		}
	})

	t.Run("config name resolves yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "team.yml", "output:\n  compact: true\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Output.Compact {
			t.Error("Output.Compact = false, want true")
		}
	})

	t.Run("config name resolves from user config directory", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
		}
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		if err := os.MkdirAll(filepath.Join(home, appDir), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		writeConfig(t, filepath.Join(home, appDir), "shared.yaml", "post:\n  locale: en_us\n")
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Post.Locale != "en_us" {
			t.Errorf("Post.Locale = %q, want en_us", cfg.Post.Locale)
		}
	})

	t.Run("config name not found lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") || !strings.Contains(err.Error(), "missing.yml") {
			t.Errorf("error should list tried paths: %v", err)
		}
	})
}

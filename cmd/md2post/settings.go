package main

import (
	"errors"
	"fmt"
	"log/slog"

	md2post "github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/hints"
	"github.com/alnah/go-md2post/internal/message"
	"github.com/alnah/go-md2post/internal/richtext"
)

// loadConfig resolves the config file named by the --config flag or
// MD2POST_CONFIG and applies environment overrides. Without a name the
// built-in defaults are used.
func loadConfig(name string, env *envConfig, logger *slog.Logger) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
		logger.Debug("config loaded", "config", name)
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// applyPostFlags copies explicitly set post flags into cfg.
func applyPostFlags(f *postFlags, changed func(string) bool, cfg *config.Config) {
	if changed("locale") {
		cfg.Post.Locale = f.locale
	}
	if changed("bullet") {
		cfg.Post.BulletGlyph = f.bullet
	}
	if changed("nested-indent") {
		cfg.Post.NestedIndent = f.nestedIndent
	}
	if changed("linkify") {
		cfg.Markdown.Linkify = f.linkify
	}
	if changed("front-matter") {
		cfg.Markdown.FrontMatter = f.frontMatter
	}
	if changed("normalize-lang") {
		cfg.Markdown.NormalizeLanguage = f.normalizeLang
	}
}

// checkConfig validates the merged configuration. Errors carry hints.
func checkConfig(cfg *config.Config) error {
	if cfg.Post.Locale == "" {
		cfg.Post.Locale = md2post.DefaultLocale
	}
	if err := richtext.ValidateLocale(cfg.Post.Locale); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForInvalidLocale(richtext.Locales))
	}
	if cfg.Message.Envelope && cfg.Message.ReceiveID == "" {
		return fmt.Errorf("%w%s", message.ErrEmptyReceiveID, hints.ForMissingReceiveID())
	}
	return cfg.Validate()
}

// newConverter builds a converter from a checked configuration.
func newConverter(cfg *config.Config) (*md2post.Converter, error) {
	return md2post.NewConverter(
		md2post.WithLocale(cfg.Post.Locale),
		md2post.WithBulletGlyph(cfg.Post.BulletGlyph),
		md2post.WithNestedIndent(cfg.Post.NestedIndent),
		md2post.WithLinkify(cfg.Markdown.Linkify),
		md2post.WithFrontMatter(cfg.Markdown.FrontMatter),
		md2post.WithLanguageNormalization(cfg.Markdown.NormalizeLanguage),
	)
}

// convertError appends a hint to conversion errors users can fix themselves.
func convertError(err error) error {
	if errors.Is(err, md2post.ErrFrontMatter) {
		return fmt.Errorf("%w%s", err, hints.ForFrontMatter())
	}
	return err
}

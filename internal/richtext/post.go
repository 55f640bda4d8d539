package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultLocale is the locale key used when none is configured.
const DefaultLocale = "zh_cn"

// Locales lists the container keys the API accepts for post content.
var Locales = []string{"zh_cn", "en_us", "ja_jp"}

// ErrInvalidLocale is returned when a post is keyed by an unsupported locale.
var ErrInvalidLocale = errors.New("invalid locale")

// ValidateLocale checks that locale is one of Locales.
func ValidateLocale(locale string) error {
	for _, l := range Locales {
		if l == locale {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidLocale, locale, strings.Join(Locales, ", "))
}

// Post is the message content: a titled document keyed by locale.
type Post struct {
	Locale  string
	Title   string
	Content Document
}

type postBody struct {
	Title   string   `json:"title"`
	Content Document `json:"content"`
}

// MarshalJSON encodes the post as {"<locale>": {"title": ..., "content": [...]}}.
func (p Post) MarshalJSON() ([]byte, error) {
	locale := p.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	content := p.Content
	if content == nil {
		content = Document{}
	}
	return json.Marshal(map[string]postBody{
		locale: {Title: p.Title, Content: content},
	})
}

// UnmarshalJSON decodes a single-locale post.
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw map[string]postBody
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("post must hold exactly one locale, got %d", len(raw))
	}
	for locale, body := range raw {
		*p = Post{Locale: locale, Title: body.Title, Content: body.Content}
	}
	return nil
}

// PlainText renders the post content without markup. The title, when set,
// comes first on its own row.
func (p Post) PlainText() string {
	body := p.Content.PlainText()
	if p.Title == "" {
		return body
	}
	return p.Title + "\n" + body
}

package pipeline

import (
	"context"
	"errors"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"CRLF", "a\r\nb\r\n", "a\nb\n"},
		{"lone CR", "a\rb", "a\nb"},
		{"byte order mark", "\ufeff# Title", "# Title"},
		{"inner BOM kept", "a\ufeffb", "a\ufeffb"},
		{"untouched", "# x\n\n  \ny", "# x\n\n  \ny"},
	}

	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdownCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &CommonMarkPreprocessor{}
	if got := p.PreprocessMarkdown(ctx, "a\r\nb"); got != "a\r\nb" {
		t.Errorf("canceled preprocess changed content: %q", got)
	}
}

func TestExtractFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantBody string
		wantMeta map[string]any
	}{
		{
			name:     "no front matter",
			input:    "# Title\n",
			wantBody: "# Title\n",
		},
		{
			name:     "yaml block",
			input:    "---\ntitle: Hello\nlang: en\n---\n# Body\n",
			wantBody: "# Body\n",
			wantMeta: map[string]any{"title": "Hello", "lang": "en"},
		},
		{
			name:     "dots close",
			input:    "---\na: b\n...\nrest",
			wantBody: "rest",
			wantMeta: map[string]any{"a": "b"},
		},
		{
			name:     "empty block",
			input:    "---\n---\nbody",
			wantBody: "body",
			wantMeta: map[string]any{},
		},
		{
			name:     "closing delimiter at end of input",
			input:    "---\na: b\n---",
			wantBody: "",
			wantMeta: map[string]any{"a": "b"},
		},
		{
			name:     "unclosed block is content",
			input:    "---\na: b\n",
			wantBody: "---\na: b\n",
		},
		{
			name:     "rule not on first line",
			input:    "text\n---\n",
			wantBody: "text\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body, meta, err := ExtractFrontMatter(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if len(meta) != len(tt.wantMeta) || (meta == nil) != (tt.wantMeta == nil) {
				t.Fatalf("meta = %#v, want %#v", meta, tt.wantMeta)
			}
			for k, v := range tt.wantMeta {
				if meta[k] != v {
					t.Errorf("meta[%q] = %#v, want %#v", k, meta[k], v)
				}
			}
		})
	}
}

func TestExtractFrontMatterInvalidYAML(t *testing.T) {
	t.Parallel()

	_, _, err := ExtractFrontMatter("---\nname: [unclosed\n---\nbody")
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("error = %v, want ErrFrontMatter", err)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info string
		want string
	}{
		{"", ""},
		{"python", "python"},
		{"py", "python"},
		{"go", "go"},
		{"golang", "go"},
		{"python {linenos=true}", "python"},
		{"no-such-language-xyz", "no-such-language-xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLanguage(tt.info); got != tt.want {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.info, got, tt.want)
			}
		})
	}
}

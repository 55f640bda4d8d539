package token

import "testing"

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  Type
		want string
	}{
		{HeadingOpen, "heading_open"},
		{Inline, "inline"},
		{Fence, "fence"},
		{StrikeOpen, "s_open"},
		{SoftBreak, "softbreak"},
		{HTMLInline, "html_inline"},
		{Type(250), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeClose(t *testing.T) {
	t.Parallel()

	pairs := map[Type]Type{
		HeadingOpen:     HeadingClose,
		ParagraphOpen:   ParagraphClose,
		BulletListOpen:  BulletListClose,
		OrderedListOpen: OrderedListClose,
		ListItemOpen:    ListItemClose,
		BlockquoteOpen:  BlockquoteClose,
		StrongOpen:      StrongClose,
		EmOpen:          EmClose,
		StrikeOpen:      StrikeClose,
		LinkOpen:        LinkClose,
	}
	for open, want := range pairs {
		if got := open.Close(); got != want {
			t.Errorf("%s.Close() = %s, want %s", open, got, want)
		}
	}

	for _, leaf := range []Type{Text, Fence, HR, Inline, HeadingClose} {
		if got := leaf.Close(); got != Unknown {
			t.Errorf("%s.Close() = %s, want unknown", leaf, got)
		}
	}
}

func TestAttrGet(t *testing.T) {
	t.Parallel()

	tok := Token{Type: LinkOpen, Attrs: []Attr{{Key: "href", Value: "http://x"}, {Key: "title", Value: ""}}}

	if v, ok := tok.AttrGet("href"); !ok || v != "http://x" {
		t.Errorf("AttrGet(href) = %q, %v; want http://x, true", v, ok)
	}
	if v, ok := tok.AttrGet("title"); !ok || v != "" {
		t.Errorf("AttrGet(title) = %q, %v; want empty, true", v, ok)
	}
	if _, ok := tok.AttrGet("rel"); ok {
		t.Error("AttrGet(rel) ok = true, want false")
	}
}

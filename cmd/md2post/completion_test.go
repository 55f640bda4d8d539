package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_md2post_completions()",
				"complete -F _md2post_completions md2post",
				"compgen",
				"convert",
				"--output",
				"-o|--output)",
				"zh_cn en_us ja_jp",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef md2post",
				"_md2post",
				"_arguments",
				"_describe",
				"'(-o --output)'{-o,--output}",
				"--locale[post locale\\: zh_cn, en_us, ja_jp]",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c md2post",
				"__fish_md2post_needs_command",
				"__fish_md2post_using_command",
				"-a convert",
				"-s o -l output",
				"-l locale",
				"-a 'bash zsh fish'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "powershell")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

func TestGetCommands(t *testing.T) {
	t.Parallel()

	defs := getCommands()
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if !isCommand(d.Name) {
			t.Errorf("completion lists unknown command %q", d.Name)
		}
		seen[d.Name] = true
	}
	for _, name := range commands {
		if !seen[name] {
			t.Errorf("command %q has no completion entry", name)
		}
	}
}

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))
	byName := make(map[string]flagDef, len(flags))
	for _, f := range flags {
		byName[f.Long] = f
	}

	tests := []struct {
		name  string
		short string
		typ   flagType
	}{
		{"output", "o", flagDir},
		{"config", "c", flagFile},
		{"locale", "", flagEnum},
		{"workers", "w", flagInt},
		{"compact", "", flagBool},
		{"receive-id", "", flagString},
	}
	for _, tt := range tests {
		f, ok := byName[tt.name]
		if !ok {
			t.Errorf("flag %q missing", tt.name)
			continue
		}
		if f.Short != tt.short || f.Type != tt.typ {
			t.Errorf("flag %q = %+v, want short %q type %d", tt.name, f, tt.short, tt.typ)
		}
	}
}

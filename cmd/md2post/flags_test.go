package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseConvertFlags([]string{
		"-o", "out", "-w", "3", "--locale", "en_us", "--envelope", "--receive-id", "oc_1", "in.md",
	})
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if flags.output != "out" {
		t.Errorf("output = %q, want out", flags.output)
	}
	if flags.workers != 3 {
		t.Errorf("workers = %d, want 3", flags.workers)
	}
	if flags.post.locale != "en_us" {
		t.Errorf("locale = %q, want en_us", flags.post.locale)
	}
	if !flags.message.envelope || flags.message.receiveID != "oc_1" {
		t.Errorf("message flags = %+v", flags.message)
	}
	if len(args) != 1 || args[0] != "in.md" {
		t.Errorf("args = %v, want [in.md]", args)
	}
	if !flags.changed("locale") {
		t.Error("changed(locale) = false, want true")
	}
	if flags.changed("bullet") {
		t.Error("changed(bullet) = true, want false")
	}
}

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"help", []string{"-h"}, flag.ErrHelp},
		{"unknown flag", []string{"--bogus"}, ErrUsage},
		{"bad int", []string{"--workers", "many"}, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseConvertFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePreviewFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parsePreviewFlags([]string{"--width", "40", "--bullet", "-", "doc.md"})
	if err != nil {
		t.Fatalf("parsePreviewFlags() error = %v", err)
	}
	if flags.width != 40 || flags.post.bullet != "-" {
		t.Errorf("flags = %+v", flags)
	}
	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v", args)
	}

	if _, _, err := parsePreviewFlags([]string{"--width=-1"}); !errors.Is(err, ErrUsage) {
		t.Errorf("negative width error = %v, want ErrUsage", err)
	}
}

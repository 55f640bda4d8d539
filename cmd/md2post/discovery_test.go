package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		want      string
	}{
		{
			name:  "next to source",
			input: filepath.Join("docs", "readme.md"),
			want:  filepath.Join("docs", "readme.json"),
		},
		{
			name:      "explicit json file",
			input:     "readme.md",
			outputDir: filepath.Join("out", "post.json"),
			want:      filepath.Join("out", "post.json"),
		},
		{
			name:      "output directory",
			input:     filepath.Join("docs", "readme.markdown"),
			outputDir: "out",
			want:      filepath.Join("out", "readme.json"),
		},
		{
			name:      "mirrors layout under output directory",
			input:     filepath.Join("docs", "guide", "intro.md"),
			outputDir: "out",
			baseDir:   "docs",
			want:      filepath.Join("out", "guide", "intro.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "a")
	writeFile(t, filepath.Join(dir, "deep", "b.markdown"), "b")
	writeFile(t, filepath.Join(dir, "c.txt"), "c")

	t.Run("directory walk keeps markdown only", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(dir, "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("found %d files, want 2: %+v", len(files), files)
		}
		want := map[string]string{
			filepath.Join(dir, "a.md"):               filepath.Join(dir, "a.json"),
			filepath.Join(dir, "deep", "b.markdown"): filepath.Join(dir, "deep", "b.json"),
		}
		for _, f := range files {
			if want[f.InputPath] != f.OutputPath {
				t.Errorf("%s -> %s, want %s", f.InputPath, f.OutputPath, want[f.InputPath])
			}
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(filepath.Join(dir, "a.md"), "out")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join("out", "a.json") {
			t.Errorf("files = %+v", files)
		}
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "c.txt"), "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("rejects json output for directory", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(dir, "all.json")
		if !errors.Is(err, ErrOutputNotDirectory) {
			t.Errorf("error = %v, want ErrOutputNotDirectory", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "nope"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{32, false},
		{33, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}

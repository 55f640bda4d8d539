package main

import "testing"

func TestTerminalWidth(t *testing.T) {
	tests := []struct {
		columns string
		want    int
	}{
		{"120", 120},
		{"abc", defaultWidth},
		{"-5", defaultWidth},
		{"", defaultWidth},
	}

	for _, tt := range tests {
		t.Setenv("COLUMNS", tt.columns)
		if got := terminalWidth(defaultWidth); got != tt.want {
			t.Errorf("COLUMNS=%q: terminalWidth() = %d, want %d", tt.columns, got, tt.want)
		}
	}
}

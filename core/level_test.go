package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{FinestLevel, "FINEST"},
		{FinerLevel, "FINER"},
		{FineLevel, "FINE"},
		{ConfigLevel, "CONFIG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{SevereLevel, "SEVERE"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"finest", FinestLevel},
		{"FINER", FinerLevel},
		{"Fine", FineLevel},
		{"config", ConfigLevel},
		{"info", InfoLevel},
		{"warning", WarningLevel},
		{"warn", WarningLevel},
		{"severe", SevereLevel},
		{"error", SevereLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

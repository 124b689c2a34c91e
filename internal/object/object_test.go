package object

import (
	"errors"
	"path/filepath"
	"testing"
)

const testID = "2eec9880e2f26fd459705a3b54263ba7e52dd8f1"

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", testID, testID, false},
		{"uppercase normalized", "2EEC9880E2F26FD459705A3B54263BA7E52DD8F1", testID, false},
		{"surrounding whitespace", "  " + testID + "\n", testID, false},
		{"too short", "2eec9880", "", true},
		{"too long", testID + "ff", "", true},
		{"non-hex", "zzec9880e2f26fd459705a3b54263ba7e52dd8f1", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoosePath(t *testing.T) {
	want := filepath.Join("2e", "ec9880e2f26fd459705a3b54263ba7e52dd8f1")
	if got := LoosePath(testID); got != want {
		t.Errorf("LoosePath(%q) = %q, want %q", testID, got, want)
	}
}

func TestIDFromLoosePath(t *testing.T) {
	id, ok := IDFromLoosePath("2e", "ec9880e2f26fd459705a3b54263ba7e52dd8f1")
	if !ok {
		t.Fatal("IDFromLoosePath() ok = false, want true")
	}
	if id != testID {
		t.Errorf("IDFromLoosePath() = %q, want %q", id, testID)
	}

	if _, ok := IDFromLoosePath("pack", "pack-1234.idx"); ok {
		t.Error("IDFromLoosePath() ok = true for non-object file, want false")
	}
}

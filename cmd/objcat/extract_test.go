package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsFileArg(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{"object id", "2eec9880e2f26fd459705a3b54263ba7e52dd8f1", false},
		{"uppercase object id", "2EEC9880E2F26FD459705A3B54263BA7E52DD8F1", false},
		{"relative path", "tmp/object", true},
		{"absolute path", "/tmp/object", true},
		{"windows path", `objects\2e`, true},
		{"bare filename", "commit_content.txt", true},
		{"short hex", "2eec9880", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFileArg(tt.arg); got != tt.want {
				t.Errorf("isFileArg(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestIsFileArg_IgnoresShadowingFile(t *testing.T) {
	// A stray file named exactly like an object ID must not hijack
	// object-store resolution.
	const id = "2eec9880e2f26fd459705a3b54263ba7e52dd8f1"

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, id), []byte("shadow"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if isFileArg(id) {
		t.Errorf("isFileArg(%q) = true with same-named file in cwd, want false", id)
	}
}

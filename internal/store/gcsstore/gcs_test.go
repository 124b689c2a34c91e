package gcsstore

import (
	"testing"

	"github.com/loosegit/objcat/internal/codec/zlibcodec"
	"github.com/loosegit/objcat/internal/codec/zstdcodec"
)

const testID = "2eec9880e2f26fd459705a3b54263ba7e52dd8f1"

func TestWithPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"prefix", "prefix/"},
		{"prefix/", "prefix/"},
		{"a/b/c", "a/b/c/"},
		{"a/b/c/", "a/b/c/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := &Store{}
			opt := WithPrefix(tt.input)
			opt(s)
			if s.prefix != tt.want {
				t.Errorf("prefix = %q, want %q", s.prefix, tt.want)
			}
		})
	}
}

func TestStore_objectKey(t *testing.T) {
	s := &Store{codec: zlibcodec.New()}

	got := s.objectKey(testID)
	want := "objects/2e/ec9880e2f26fd459705a3b54263ba7e52dd8f1"
	if got != want {
		t.Errorf("objectKey() = %q, want %q", got, want)
	}
}

func TestStore_objectKey_WithPrefixAndExtension(t *testing.T) {
	s := &Store{
		codec:  zstdcodec.New(),
		prefix: "mirrors/repo1/",
	}

	got := s.objectKey(testID)
	want := "mirrors/repo1/objects/2e/ec9880e2f26fd459705a3b54263ba7e52dd8f1.zst"
	if got != want {
		t.Errorf("objectKey() = %q, want %q", got, want)
	}
}

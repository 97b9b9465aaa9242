package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{"prefix only", nil, "pageassist"},
		{"one part", []string{"health"}, "pageassist:health"},
		{"several parts", []string{"bookmarks", "library", "abc"}, "pageassist:bookmarks:library:abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.parts...))
		})
	}
}

func TestBookmarkLibraryKey(t *testing.T) {
	assert.Equal(t, "pageassist:bookmarks:library:default", BookmarkLibraryKey("default"))
}

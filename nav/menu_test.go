package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	paths := Paths()
	assert.Len(t, paths, 13)
	assert.Equal(t, PathUpgrade, paths[0])

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path  string
		label string
		ok    bool
	}{
		{PathHome, "Home", true},
		{PathUpgrade, "Upgrade Plan", true},
		{PathLiked, "Liked", true},
		{PathHelp, "Help Center", true},
		{PrefixMyStuff, "", false},
		{"/nowhere", "", false},
	}
	for _, tt := range tests {
		e, ok := Lookup(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.label, e.Label, tt.path)
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("/my/liked", PrefixMyStuff))
	assert.True(t, HasPrefix("/my", PrefixMyStuff))
	assert.True(t, HasPrefix("/myself", PrefixMyStuff))
	assert.False(t, HasPrefix("/", PrefixMyStuff))
	assert.False(t, HasPrefix("/resource", PrefixResources))
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reify/internal/core/domain"
)

func TestEntry_DisplayName(t *testing.T) {
	assert.Equal(t, "build", domain.Entry{Name: "build"}.DisplayName())
	assert.Equal(t, domain.UnnamedEntry, domain.Entry{}.DisplayName())
}

func TestEntry_WithDigest(t *testing.T) {
	e := domain.Entry{
		Name:          "gen",
		Cmd:           "make gen",
		Files:         []string{"out.txt"},
		RequiredFiles: []string{"in.txt"},
		Digest:        "old",
	}

	got := e.WithDigest("new")

	assert.Equal(t, "new", got.Digest)
	assert.Equal(t, "old", e.Digest, "original entry must not change")
	assert.Equal(t, e.Files, got.Files)

	got.Files[0] = "other.txt"
	assert.Equal(t, "out.txt", e.Files[0], "slices must not be shared")
}

func TestEntry_HasDigest(t *testing.T) {
	assert.False(t, domain.Entry{}.HasDigest())
	assert.True(t, domain.Entry{Digest: "abc"}.HasDigest())
}

package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFor(t *testing.T) {
	id := publicIDFor("uploads/Dr Smith.png")
	assert.True(t, strings.HasPrefix(id, "Dr_Smith-"), id)
	assert.NotContains(t, id, ".png")

	assert.NotEqual(t, publicIDFor("a.png"), publicIDFor("a.png"))

	id = publicIDFor("")
	assert.Len(t, id, 36)
}

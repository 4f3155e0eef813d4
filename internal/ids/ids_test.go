package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_NewID(t *testing.T) {
	var gen UUID
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := string(gen.NewID())
		assert.True(t, Valid(id), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestParse(t *testing.T) {
	id, err := Parse("3B241101-E2BB-4255-8CAF-4136C566A962")
	require.NoError(t, err)
	assert.Equal(t, "3b241101-e2bb-4255-8caf-4136c566a962", string(id))

	for _, bad := range []string{"", "abc", "../etc/passwd", "3b241101-e2bb-4255-8caf"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
		assert.False(t, Valid(bad), bad)
	}
}

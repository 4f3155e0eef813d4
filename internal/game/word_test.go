package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "uppercase", raw: "CAKES", want: "CAKES"},
		{name: "lowercase is normalized", raw: "cakes", want: "CAKES"},
		{name: "surrounding space is trimmed", raw: "  Crane\n", want: "CRANE"},
		{name: "non-ascii letters", raw: "ÉCLAT", want: "ÉCLAT"},
		{name: "too short", raw: "CAKE", wantErr: ErrInvalidWordLength},
		{name: "too long", raw: "CAKESS", wantErr: ErrInvalidWordLength},
		{name: "empty", raw: "", wantErr: ErrInvalidWordLength},
		{name: "inner space", raw: "CA ES", wantErr: ErrInvalidWordCharacters},
		{name: "digits", raw: "CAK3S", wantErr: ErrInvalidWordCharacters},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestMustParseWord_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustParseWord("nope") })
	assert.NotPanics(t, func() { MustParseWord("beans") })
}

func TestParseGuess(t *testing.T) {
	g, err := ParseGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", g.String())

	_, err = ParseGuess("cranes")
	assert.ErrorIs(t, err, ErrInvalidWordLength)
}

func TestWord_Contains(t *testing.T) {
	w := MustParseWord("CAKES")
	for _, c := range "CAKES" {
		assert.True(t, w.Contains(c), "expected %q in CAKES", c)
	}
	for _, c := range "RNBDc" {
		assert.False(t, w.Contains(c), "did not expect %q in CAKES", c)
	}
}

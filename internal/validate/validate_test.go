package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dormshare/internal/apperr"
)

func TestText(t *testing.T) {
	v, err := Text("title", "  Pizza Night ", 200)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Night", v)

	_, err = Text("title", "   ", 200)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = Text("name", strings.Repeat("x", 101), 100)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// Runes, not bytes.
	_, err = Text("name", strings.Repeat("é", 100), 100)
	assert.NoError(t, err)
}

func TestOptionalText(t *testing.T) {
	v, err := OptionalText("quantity", "", 50)
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = OptionalText("quantity", strings.Repeat("1", 51), 50)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

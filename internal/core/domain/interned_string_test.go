package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("/src/styles/_base.scss")
	b := domain.NewInternedString("/src/styles/_base.scss")

	assert.Equal(t, a, b, "identical paths share a handle")
	assert.Equal(t, "/src/styles/_base.scss", a.String())

	var zero domain.InternedString
	assert.Empty(t, zero.String())
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		got := domain.NewInternedStrings([]string{"a.scss", "b.scss", "a.scss"})

		require.Len(t, got, 3)
		assert.Equal(t, "a.scss", got[0].String())
		assert.Equal(t, "b.scss", got[1].String())
		assert.Equal(t, got[0], got[2])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, domain.NewInternedStrings(nil))
	})
}

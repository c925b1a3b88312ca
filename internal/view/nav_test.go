package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/temp-matrix/internal/domain"
	"github.com/couchcryptid/temp-matrix/internal/view"
)

func years(y0, y1 int) []int {
	out := make([]int, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		out = append(out, y)
	}
	return out
}

func TestGridNav_InitiallyUnfocused(t *testing.T) {
	nav := view.NewGridNav(years(2008, 2017))

	_, ok := nav.Focused()
	assert.False(t, ok)
}

func TestGridNav_FirstMoveFocusesOrigin(t *testing.T) {
	nav := view.NewGridNav(years(2008, 2017))

	nav.Move(view.DirRight)

	key, ok := nav.Focused()
	require.True(t, ok)
	assert.Equal(t, domain.MonthKey{Year: 2008, Month: time.January}, key)
}

func TestGridNav_Moves(t *testing.T) {
	nav := view.NewGridNav(years(2008, 2017))
	nav.Move(view.DirRight) // focus origin

	nav.Move(view.DirRight)
	nav.Move(view.DirDown)
	nav.Move(view.DirDown)

	key, ok := nav.Focused()
	require.True(t, ok)
	assert.Equal(t, domain.MonthKey{Year: 2010, Month: time.February}, key)

	nav.Move(view.DirLeft)
	nav.Move(view.DirUp)

	key, _ = nav.Focused()
	assert.Equal(t, domain.MonthKey{Year: 2009, Month: time.January}, key)
}

func TestGridNav_ClampsAtEdges(t *testing.T) {
	nav := view.NewGridNav(years(2008, 2017))
	nav.Move(view.DirUp) // focus origin

	t.Run("top-left corner", func(t *testing.T) {
		nav.Move(view.DirUp)
		nav.Move(view.DirLeft)

		key, _ := nav.Focused()
		assert.Equal(t, domain.MonthKey{Year: 2008, Month: time.January}, key)
	})

	t.Run("rightmost column holds", func(t *testing.T) {
		for range 20 {
			nav.Move(view.DirRight)
		}
		key, _ := nav.Focused()
		assert.Equal(t, time.December, key.Month)

		nav.Move(view.DirRight)
		key, _ = nav.Focused()
		assert.Equal(t, time.December, key.Month, "no wraparound at the last column")
	})

	t.Run("bottom row holds", func(t *testing.T) {
		for range 20 {
			nav.Move(view.DirDown)
		}
		key, _ := nav.Focused()
		assert.Equal(t, 2017, key.Year)

		nav.Move(view.DirDown)
		key, _ = nav.Focused()
		assert.Equal(t, 2017, key.Year)
	})
}

func TestGridNav_EmptyYears(t *testing.T) {
	nav := view.NewGridNav(nil)

	nav.Move(view.DirDown)

	_, ok := nav.Focused()
	assert.False(t, ok)
}

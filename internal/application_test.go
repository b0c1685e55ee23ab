package application

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tiptaptoe/internal/apperror"
	"github.com/rocketscienceinc/tiptaptoe/internal/config"
	"github.com/rocketscienceinc/tiptaptoe/internal/display"
	"github.com/rocketscienceinc/tiptaptoe/testing/suite"
)

func TestRun(t *testing.T) {
	t.Run("Prints the board after the scripted game", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the five-move opening
		conf := &config.Config{Moves: []config.Move{
			{Row: 0, Col: 0, Player: "O"},
			{Row: 1, Col: 0, Player: "X"},
			{Row: 0, Col: 1, Player: "O"},
			{Row: 1, Col: 1, Player: "X"},
			{Row: 0, Col: 2, Player: "O"},
		}}
		var out bytes.Buffer

		// When: running it
		err := Run(ctx, st.Logger, conf, display.NewRenderer(&out, false))

		// Then: the final board is printed
		require.NoError(t, err)
		assert.Equal(t, "O|O|O\n-+-+-\nX|X| \n-+-+-\n | | \n", out.String())
	})

	t.Run("Invalid script is rejected before play", func(t *testing.T) {
		ctx, st := suite.New(t)

		conf := &config.Config{Moves: []config.Move{{Row: 0, Col: 9, Player: "O"}}}
		var out bytes.Buffer

		err := Run(ctx, st.Logger, conf, display.NewRenderer(&out, false))

		require.ErrorIs(t, err, apperror.ErrInvalidIndex)
		assert.Empty(t, out.String())
	})

	t.Run("Occupied cell fails the run", func(t *testing.T) {
		ctx, st := suite.New(t)

		conf := &config.Config{Moves: []config.Move{
			{Row: 1, Col: 1, Player: "X"},
			{Row: 1, Col: 1, Player: "O"},
		}}
		var out bytes.Buffer

		err := Run(ctx, st.Logger, conf, display.NewRenderer(&out, false))

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Empty(t, out.String())
	})
}

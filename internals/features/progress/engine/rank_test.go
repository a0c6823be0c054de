package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankStandings(t *testing.T) {
	list := []Standing{
		{DNI: "30111222", Nickname: "Ana", Points: 100},
		{DNI: "28999111", Nickname: "Bruno", Points: 175},
		{DNI: "31555000", Nickname: "Carla", Points: 100},
	}

	ranked := RankStandings(list)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Bruno", ranked[0].Nickname)
	assert.Equal(t, 1, ranked[0].Rank)

	// The two 100-point students take ranks 2 and 3 in dni order.
	assert.Equal(t, "28999111", ranked[0].DNI)
	assert.Equal(t, "30111222", ranked[1].DNI)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "31555000", ranked[2].DNI)
	assert.Equal(t, 3, ranked[2].Rank)

	t.Run("input slice untouched", func(t *testing.T) {
		assert.Equal(t, "Ana", list[0].Nickname)
		assert.Zero(t, list[0].Rank)
	})

	t.Run("deterministic across reloads", func(t *testing.T) {
		again := RankStandings([]Standing{list[2], list[0], list[1]})
		assert.Equal(t, ranked, again)
	})

	t.Run("empty board", func(t *testing.T) {
		assert.Empty(t, RankStandings(nil))
	})
}

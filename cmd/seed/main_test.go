package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/projecthelena/lottostats/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDraws(t *testing.T) {
	last := db.NewDate(2024, time.June, 28)
	draws := generateDraws(rand.New(rand.NewPCG(7, 7)), last, 20)
	require.Len(t, draws, 20)

	assert.Equal(t, "2024-06-28", draws[19].DrawDate.String())
	assert.Equal(t, "2024-02-16", draws[0].DrawDate.String())

	for _, d := range draws {
		nums := []int{d.Number1, d.Number2, d.Number3, d.Number4, d.Number5, d.Number6, d.Number7, d.BonusNumber}
		seen := map[int]bool{}
		for _, n := range nums {
			assert.GreaterOrEqual(t, n, db.MinNumber)
			assert.LessOrEqual(t, n, db.MaxNumber)
			assert.False(t, seen[n], "duplicate %d in draw %s", n, d.DrawDate)
			seen[n] = true
		}
	}
}

func TestGenerateDraws_Seeded(t *testing.T) {
	last := db.NewDate(2024, time.June, 28)
	a := generateDraws(rand.New(rand.NewPCG(3, 3)), last, 5)
	b := generateDraws(rand.New(rand.NewPCG(3, 3)), last, 5)
	assert.Equal(t, a, b)
}

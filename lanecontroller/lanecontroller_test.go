package lanecontroller

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackWidth = 10

func TestCollides(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)
	tests := []struct {
		name   string
		x      int
		bottom int
		want   bool
	}{
		{"on left wall", 5, 5, true},
		{"left of wall", 1, 5, true},
		{"first lane cell", 6, 5, false},
		{"last lane cell", 15, 5, false},
		{"right wall", 16, 5, true},
		{"far right", 23, 5, true},
		{"unset boundary left", 1, 0, false},
		{"unset boundary right", 23, 0, false},
		{"unset boundary centre", 12, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lc.Collides(tt.x, tt.bottom))
		})
	}
}

func TestEvaluateCountsAndResets(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)

	for i := 1; i <= 5; i++ {
		res := lc.Evaluate(12, 4)
		assert.False(t, res.Collided)
		assert.Equal(t, uint32(i), lc.SafeTicks())
	}

	res := lc.Evaluate(1, 4)
	assert.True(t, res.Collided)
	assert.Equal(t, uint32(0), lc.SafeTicks())

	res = lc.Evaluate(1, 0)
	assert.False(t, res.Collided)
	assert.Equal(t, uint32(1), lc.SafeTicks())
}

func TestEvaluateTierThresholds(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)
	assert.Equal(t, 1, lc.Tier().Level)
	assert.Equal(t, time.Second, lc.Tier().Period)

	changes := map[uint32]Tier{}
	for i := 0; i < 120; i++ {
		res := lc.Evaluate(12, 4)
		if res.TierChanged {
			changes[lc.SafeTicks()] = res.Tier
		}
	}

	want := map[uint32]Tier{
		10: {Threshold: 10, Level: 2, Period: 750 * time.Millisecond},
		30: {Threshold: 30, Level: 3, Period: 500 * time.Millisecond},
		50: {Threshold: 50, Level: 4, Period: 250 * time.Millisecond},
		75: {Threshold: 75, Level: 5, Period: 175 * time.Millisecond},
	}
	assert.Equal(t, want, changes)
	assert.Equal(t, 5, lc.Tier().Level)
}

func TestEvaluatePeriodSequence(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)

	var periods []time.Duration
	for i := 0; i < 12; i++ {
		periods = append(periods, lc.Evaluate(12, 4).Tier.Period)
	}

	ms := time.Millisecond
	assert.Equal(t, []time.Duration{
		1000 * ms, 1000 * ms, 1000 * ms, 1000 * ms, 1000 * ms,
		1000 * ms, 1000 * ms, 1000 * ms, 1000 * ms, 750 * ms,
		750 * ms, 750 * ms,
	}, periods)
}

func TestCollisionDropsToFirstTier(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)
	for i := 0; i < 40; i++ {
		lc.Evaluate(12, 4)
	}
	require.Equal(t, 3, lc.Tier().Level)

	res := lc.Evaluate(20, 4)
	assert.True(t, res.Collided)
	assert.True(t, res.TierChanged)
	assert.Equal(t, 1, res.Tier.Level)
	assert.Equal(t, time.Second, res.Tier.Period)

	res = lc.Evaluate(20, 4)
	assert.True(t, res.Collided)
	assert.False(t, res.TierChanged, "already on the first tier")
}

func TestCollisionOnFirstTierKeepsTier(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)
	lc.Evaluate(12, 4)
	res := lc.Evaluate(3, 4)
	assert.False(t, res.TierChanged)
	assert.Equal(t, 1, res.Tier.Level)
}

func TestReset(t *testing.T) {
	lc := NewLaneController(trackWidth, nil)
	for i := 0; i < 12; i++ {
		lc.Evaluate(12, 4)
	}
	lc.Reset()
	assert.Equal(t, uint32(0), lc.SafeTicks())
	assert.Equal(t, 1, lc.Tier().Level)
}

func TestCustomTiers(t *testing.T) {
	tiers := []Tier{
		{Threshold: 0, Level: 1, Period: 300 * time.Millisecond},
		{Threshold: 2, Level: 2, Period: 100 * time.Millisecond},
	}
	lc := NewLaneController(trackWidth, tiers)
	lc.Evaluate(12, 4)
	res := lc.Evaluate(12, 4)
	assert.True(t, res.TierChanged)
	assert.Equal(t, 100*time.Millisecond, res.Tier.Period)
	assert.Len(t, lc.Tiers(), 2)
}

func TestParseTiers(t *testing.T) {
	input := `
# threshold period_ms
0 900

5 400
20 100
`
	tiers, err := ParseTiers(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Tier{
		{Threshold: 0, Level: 1, Period: 900 * time.Millisecond},
		{Threshold: 5, Level: 2, Period: 400 * time.Millisecond},
		{Threshold: 20, Level: 3, Period: 100 * time.Millisecond},
	}, tiers)
}

func TestParseTiersErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "# nothing\n"},
		{"missing period", "0\n"},
		{"bad threshold", "x 100\n"},
		{"negative threshold", "-1 100\n"},
		{"bad period", "0 fast\n"},
		{"zero period", "0 0\n"},
		{"not starting at zero", "5 100\n"},
		{"not increasing", "0 100\n10 50\n10 20\n"},
		{"too many", "0 9\n1 9\n2 9\n3 9\n4 9\n5 9\n6 9\n7 9\n8 9\n9 9\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTiers(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadTiersFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1000\n10 750\n"), 0644))

	tiers, err := LoadTiersFromFile(path)
	require.NoError(t, err)
	assert.Len(t, tiers, 2)

	_, err = LoadTiersFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to open tier file")
}

func TestDefaultTiersAreValid(t *testing.T) {
	assert.NoError(t, ValidateTiers(DefaultTiers()))
}

package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "2024-5-15", Key(2024, 5, 15))
	assert.Equal(t, "2024-0-1", Key(2024, 0, 1))
	assert.Equal(t, "1999-11-31", Key(1999, 11, 31))
}

func TestKeyFor(t *testing.T) {
	// June is month index 5
	assert.Equal(t, "2024-5-15", KeyFor(time.Date(2024, time.June, 15, 9, 30, 0, 0, time.Local)))
	// January is month index 0
	assert.Equal(t, "2024-0-1", KeyFor(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)))
}

func TestHash_Golden(t *testing.T) {
	// golden values, must never change: the background context recomputes
	// the same hash independently and both sides have to agree bit-exact
	assert.Equal(t, int32(534549353), Hash("2024-5-15"))
	assert.Equal(t, int32(-1922423929), Hash("2024-0-1"))
}

func TestIndex_Golden(t *testing.T) {
	d := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 3, Index(d, 5))
}

func TestIndex_StableWithinDay(t *testing.T) {
	morning := time.Date(2024, time.March, 3, 0, 0, 1, 0, time.Local)
	evening := time.Date(2024, time.March, 3, 23, 59, 59, 0, time.Local)
	assert.Equal(t, Index(morning, 500), Index(evening, 500))
}

func TestIndex_ChangesAtMidnight(t *testing.T) {
	// the index is a pure function of the date, so consecutive days use
	// different keys; verify the keys really differ across the boundary
	before := time.Date(2024, time.March, 3, 23, 59, 59, 0, time.Local)
	after := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	assert.NotEqual(t, KeyFor(before), KeyFor(after))
}

func TestIndex_Range(t *testing.T) {
	start := time.Date(2020, time.January, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < 2000; i++ {
		idx := Index(start.AddDate(0, 0, i), 7)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 7)
	}
}

func TestIndex_Distribution(t *testing.T) {
	// over a long run of consecutive dates the index should be roughly
	// uniform; allow a generous tolerance, this is a sanity check not an
	// exact statistical test
	const n, days = 5, 5000
	counts := make([]int, n)
	start := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < days; i++ {
		counts[Index(start.AddDate(0, 0, i), n)]++
	}

	expected := days / n
	for i, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)*0.5, "bucket %d", i)
	}
}

func TestIndex_DegenerateCollection(t *testing.T) {
	d := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 0, Index(d, 1))
	assert.Equal(t, 0, Index(d, 0))
	assert.Equal(t, 0, Index(d, -3))
}

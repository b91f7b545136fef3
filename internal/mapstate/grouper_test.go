package mapstate

import (
	"math"
	"testing"

	"github.com/shenikar/napmap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_EveryRecordInExactlyOneGroup(t *testing.T) {
	store, err := LoadRecords([]models.RawRow{
		row("14.62", "121.11", "N1", "SubA"),
		row("14.63", "121.11", "N2", "SubA"),
		row("14.62", "121.11", "N3", "SubB"),
		row("14.620", "121.110", "N4", "SubA"),
		row("14.62000001", "121.11", "N5", "SubA"),
	})
	require.NoError(t, err)

	idx := Group(store.AllRecords(), 8)

	seen := make(map[int]int)
	for _, g := range idx.Groups() {
		for _, id := range g.MemberRecordIDs {
			seen[id]++
		}
	}
	assert.Len(t, seen, store.Len())
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %d", id)
	}

	// Совпадение группы тогда и только тогда, когда координаты равны побитово
	for _, a := range store.AllRecords() {
		for _, b := range store.AllRecords() {
			ga, _ := idx.ByRecord(a.ID)
			gb, _ := idx.ByRecord(b.ID)
			assert.Equal(t, a.Coordinate == b.Coordinate, ga == gb)
		}
	}
	assert.Equal(t, 3, idx.Len())
}

func TestGroup_MemberOrderAndSubdivisions(t *testing.T) {
	store, err := LoadRecords([]models.RawRow{
		row("14.62", "121.11", "N1", "SubA"),
		row("14.70", "121.20", "N2", "SubC"),
		row("14.62", "121.11", "N3", "SubB"),
		row("14.62", "121.11", "N4", "SubA"),
	})
	require.NoError(t, err)

	idx := Group(store.AllRecords(), 8)

	require.Equal(t, 2, idx.Len())
	first := idx.Groups()[0]
	assert.Equal(t, []int{0, 2, 3}, first.MemberRecordIDs)
	assert.True(t, first.HasSubdivision("SubA"))
	assert.True(t, first.HasSubdivision("SubB"))
	assert.False(t, first.HasSubdivision("SubC"))
	assert.Equal(t, models.Collapsed, first.State)
	assert.Equal(t, 8.0, first.Radius)
	assert.Len(t, first.DisplayPositions, 3)
	for _, pos := range first.DisplayPositions {
		assert.Equal(t, first.Coordinate, pos)
	}

	byID, ok := idx.ByID(first.ID)
	require.True(t, ok)
	assert.Same(t, first, byID)
	byKey, ok := idx.ByKey(first.Coordinate.Key())
	require.True(t, ok)
	assert.Same(t, first, byKey)
}

func TestGroup_NegativeZeroIsDistinctKey(t *testing.T) {
	records := []models.Record{
		{ID: 0, Coordinate: models.Coordinate{Latitude: 0, Longitude: 10}},
		{ID: 1, Coordinate: models.Coordinate{Latitude: math.Copysign(0, -1), Longitude: 10}},
	}

	idx := Group(records, 8)

	assert.Equal(t, 2, idx.Len())
}

func TestGroupID_Deterministic(t *testing.T) {
	key := models.Coordinate{Latitude: 14.62, Longitude: 121.11}.Key()

	assert.Equal(t, GroupID(key), GroupID(key))
	assert.NotEqual(t, GroupID(key), GroupID(models.Coordinate{Latitude: 14.62, Longitude: 121.12}.Key()))
}

package mapstate

import (
	"errors"
	"testing"

	"github.com/shenikar/napmap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(lat, lon, nap, sub string) models.RawRow {
	return models.RawRow{
		"LATITUDE":    lat,
		"LONGITUDE":   lon,
		"NAP":         nap,
		"SUBDIVISION": sub,
		"STREET":      "Main St",
		"BARANGAY":    "Mayamot",
		"CITY":        "Antipolo",
	}
}

func TestLoadRecords_SkipsInvalidCoordinates(t *testing.T) {
	rows := []models.RawRow{
		row("14.62", "121.11", "NAP-1", "SubA"),
		row("", "121.11", "NAP-2", "SubA"),
		row("abc", "121.11", "NAP-3", "SubA"),
		row("14.63", "NaN", "NAP-4", "SubB"),
		row("14.64", "121.12", "NAP-5", "SubB"),
	}

	store, err := LoadRecords(rows)

	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []int{1, 2, 3}, store.Dropped())
	rec, ok := store.Record(4)
	require.True(t, ok)
	assert.Equal(t, "NAP-5", rec.NAP)
	assert.Equal(t, 14.64, rec.Coordinate.Latitude)
}

func TestLoadRecords_MissingColumn(t *testing.T) {
	rows := []models.RawRow{{"LATITUDE": "14.62", "LONGITUDE": "121.11", "NAP": "N1"}}

	store, err := LoadRecords(rows)

	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, ErrParse))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ColumnSubdivision, perr.Column)
}

func TestLoadRecords_NormalizesHeaderAndValues(t *testing.T) {
	rows := []models.RawRow{{" latitude ": " 14.62 ", "Longitude": "121.11", "nap": " N1 ", "Subdivision": "SubA"}}

	store, err := LoadRecords(rows)

	require.NoError(t, err)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "N1", store.AllRecords()[0].NAP)
}

func TestLoadRecords_Empty(t *testing.T) {
	store, err := LoadRecords(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.AllSubdivisions())
	assert.Empty(t, store.AllNaps(models.FilterAll))
}

func TestRecordStore_Subdivisions_FirstOccurrenceOrder(t *testing.T) {
	store, err := LoadRecords([]models.RawRow{
		row("1", "1", "N1", "Zeta"),
		row("2", "2", "N2", ""),
		row("3", "3", "N3", "Alpha"),
		row("4", "4", "N4", "Zeta"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeta", "Alpha"}, store.AllSubdivisions())
	assert.Len(t, store.RecordsBySubdivision("Zeta"), 2)
	assert.Empty(t, store.RecordsBySubdivision("Missing"))
}

func TestRecordStore_AllNaps_SortedUnique(t *testing.T) {
	store, err := LoadRecords([]models.RawRow{
		row("1", "1", "N3", "SubB"),
		row("2", "2", "N2", "SubA"),
		row("3", "3", "N1", "SubA"),
		row("4", "4", "N2", "SubA"),
		row("5", "5", "", "SubA"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"N1", "N2", "N3"}, store.AllNaps(models.FilterAll))
	assert.Equal(t, []string{"N1", "N2"}, store.AllNaps("SubA"))
	assert.Equal(t, []string{"N3"}, store.AllNaps("SubB"))
}

func TestRecordStore_FindByNAP(t *testing.T) {
	store, err := LoadRecords([]models.RawRow{
		row("1", "1", "NAP-1", "SubA"),
		row("2", "2", "nap-1", "SubA"),
	})
	require.NoError(t, err)

	rec, ok := store.FindByNAP("  Nap-1 ")
	require.True(t, ok)
	assert.Equal(t, 0, rec.ID)

	_, ok = store.FindByNAP("NAP-9")
	assert.False(t, ok)
	_, ok = store.FindByNAP("   ")
	assert.False(t, ok)
}

package mapstate

import (
	"testing"

	"github.com/shenikar/napmap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFilterFixture: SubA -> N1, N2; SubB -> N3. N1 и N3 делят координату.
func newFilterFixture(t *testing.T) (*FilterEngine, *GroupIndex) {
	t.Helper()
	store, err := LoadRecords([]models.RawRow{
		row("14.60", "121.10", "N1", "SubA"),
		row("14.61", "121.10", "N2", "SubA"),
		row("14.60", "121.10", "N3", "SubB"),
	})
	require.NoError(t, err)
	return NewFilterEngine(store), Group(store.AllRecords(), 8)
}

func visibility(f *FilterEngine, idx *GroupIndex) []bool {
	out := make([]bool, 0, idx.Len())
	for _, g := range idx.Groups() {
		out = append(out, f.Visible(g))
	}
	return out
}

func TestFilterEngine_InitialState(t *testing.T) {
	f, idx := newFilterFixture(t)

	assert.Equal(t, models.DefaultFilterState(), f.State())
	assert.Equal(t, []string{"N1", "N2", "N3"}, f.Options().NAPs)
	assert.Equal(t, []string{"SubA", "SubB"}, f.Options().Subdivisions)
	assert.Equal(t, []bool{true, true}, visibility(f, idx))
}

func TestFilterEngine_SubdivisionSwitch(t *testing.T) {
	f, idx := newFilterFixture(t)
	require.True(t, f.SetNAP("N1"))

	require.True(t, f.SetSubdivision("SubB"))

	assert.Equal(t, []string{"N3"}, f.Options().NAPs)
	assert.Equal(t, models.FilterAll, f.State().NAP)
	assert.Equal(t, "SubB", f.State().Subdivision)
	assert.Equal(t, []bool{true, false}, visibility(f, idx))
}

func TestFilterEngine_DependentRefreshMatchesStore(t *testing.T) {
	f, _ := newFilterFixture(t)

	for _, sub := range []string{"SubA", "SubB", models.FilterAll} {
		f.SetNAP("N2")
		f.SetSubdivision(sub)
		assert.Equal(t, f.store.AllNaps(sub), f.Options().NAPs)
		assert.Equal(t, models.FilterAll, f.State().NAP)
	}
}

func TestFilterEngine_NAPChangeKeepsSubdivision(t *testing.T) {
	f, _ := newFilterFixture(t)
	f.SetSubdivision("SubA")
	before := f.Options()

	f.SetNAP("N2")

	assert.Equal(t, "SubA", f.State().Subdivision)
	assert.Equal(t, before, f.Options())
}

func TestFilterEngine_NAPTakesPrecedence(t *testing.T) {
	f, idx := newFilterFixture(t)

	// N3 принадлежит SubB, но фильтр NAP важнее фильтра subdivision
	f.SetSubdivision("SubA")
	f.SetNAP("N3")
	withSub := visibility(f, idx)

	f.state.Subdivision = "SubB"
	withOtherSub := visibility(f, idx)
	f.state.Subdivision = models.FilterAll
	withAll := visibility(f, idx)

	assert.Equal(t, []bool{true, false}, withSub)
	assert.Equal(t, withSub, withOtherSub)
	assert.Equal(t, withSub, withAll)
}

func TestFilterEngine_StaleNAPRendersNothing(t *testing.T) {
	f, idx := newFilterFixture(t)

	f.SetNAP("GONE")

	assert.Equal(t, []bool{false, false}, visibility(f, idx))
}

func TestFilterEngine_ApplySubdivisionChangeResetsNAP(t *testing.T) {
	f, _ := newFilterFixture(t)

	assert.True(t, f.Apply(models.FilterState{Subdivision: "SubA", NAP: "N2"}))
	assert.Equal(t, models.FilterState{Subdivision: "SubA", NAP: models.FilterAll}, f.State())

	assert.True(t, f.Apply(models.FilterState{Subdivision: "SubA", NAP: "N2"}))
	assert.Equal(t, models.FilterState{Subdivision: "SubA", NAP: "N2"}, f.State())

	assert.False(t, f.Apply(models.FilterState{Subdivision: "SubA", NAP: "N2"}))
}

func TestFilterEngine_EmptySelectionMeansAll(t *testing.T) {
	f, _ := newFilterFixture(t)
	f.SetSubdivision("SubA")

	f.SetSubdivision("")

	assert.Equal(t, models.FilterAll, f.State().Subdivision)
	assert.Equal(t, []string{"N1", "N2", "N3"}, f.Options().NAPs)
}

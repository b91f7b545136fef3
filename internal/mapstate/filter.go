package mapstate

import "github.com/shenikar/napmap/internal/models"

// FilterEngine хранит выбор фильтров и зависимый список NAP
type FilterEngine struct {
	store      *RecordStore
	state      models.FilterState
	napOptions []string
}

// NewFilterEngine создает фильтр в состоянии {All, All}
func NewFilterEngine(store *RecordStore) *FilterEngine {
	return &FilterEngine{
		store:      store,
		state:      models.DefaultFilterState(),
		napOptions: store.AllNaps(models.FilterAll),
	}
}

func (f *FilterEngine) State() models.FilterState {
	return f.state
}

// Options возвращает текущие списки значений для элементов управления
func (f *FilterEngine) Options() models.FilterOptions {
	naps := make([]string, len(f.napOptions))
	copy(naps, f.napOptions)
	return models.FilterOptions{
		Subdivisions: f.store.AllSubdivisions(),
		NAPs:         naps,
	}
}

// SetSubdivision меняет subdivision, пересчитывает список NAP и сбрасывает
// выбор NAP в All. Возвращает false, если значение не изменилось.
func (f *FilterEngine) SetSubdivision(subdivision string) bool {
	subdivision = normalizeSelection(subdivision)
	if subdivision == f.state.Subdivision {
		return false
	}
	f.state.Subdivision = subdivision
	f.napOptions = f.store.AllNaps(subdivision)
	f.state.NAP = models.FilterAll
	return true
}

// SetNAP меняет только выбор NAP
func (f *FilterEngine) SetNAP(nap string) bool {
	nap = normalizeSelection(nap)
	if nap == f.state.NAP {
		return false
	}
	f.state.NAP = nap
	return true
}

// Apply применяет полное состояние фильтров. Смена subdivision имеет
// приоритет: выбор NAP из того же события отбрасывается.
func (f *FilterEngine) Apply(state models.FilterState) bool {
	if f.SetSubdivision(state.Subdivision) {
		return true
	}
	return f.SetNAP(state.NAP)
}

// Visible вычисляет видимость группы. Фильтр NAP важнее фильтра subdivision.
func (f *FilterEngine) Visible(g *models.MarkerGroup) bool {
	if f.state.NAP != models.FilterAll {
		for _, id := range g.MemberRecordIDs {
			if rec, ok := f.store.Record(id); ok && rec.NAP == f.state.NAP {
				return true
			}
		}
		return false
	}
	if f.state.Subdivision != models.FilterAll {
		return g.HasSubdivision(f.state.Subdivision)
	}
	return true
}

func normalizeSelection(v string) string {
	if v == "" {
		return models.FilterAll
	}
	return v
}

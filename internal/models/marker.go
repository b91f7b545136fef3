package models

import "github.com/google/uuid"

// MarkerState - состояние отображения группы
type MarkerState int

const (
	Collapsed MarkerState = iota
	Expanded
)

func (s MarkerState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// MarkerGroup - все записи с одной и той же координатой, отображаемые одним маркером
type MarkerGroup struct {
	ID               uuid.UUID
	Key              CoordinateKey
	Coordinate       Coordinate
	MemberRecordIDs  []int
	Subdivisions     map[string]struct{}
	State            MarkerState
	Radius           float64
	DisplayPositions map[int]Coordinate
}

// Count возвращает количество записей в группе
func (g *MarkerGroup) Count() int {
	return len(g.MemberRecordIDs)
}

func (g *MarkerGroup) Expanded() bool {
	return g.State == Expanded
}

// HasSubdivision проверяет, есть ли среди участников группы запись из subdivision
func (g *MarkerGroup) HasSubdivision(subdivision string) bool {
	_, ok := g.Subdivisions[subdivision]
	return ok
}

// FilterState - текущий выбор в двух фильтрах
type FilterState struct {
	Subdivision string `json:"subdivision"`
	NAP         string `json:"nap"`
}

// DefaultFilterState возвращает фильтр без ограничений
func DefaultFilterState() FilterState {
	return FilterState{Subdivision: FilterAll, NAP: FilterAll}
}

// FilterOptions - списки значений для элементов управления фильтрами
type FilterOptions struct {
	Subdivisions []string `json:"subdivisions"`
	NAPs         []string `json:"naps"`
}

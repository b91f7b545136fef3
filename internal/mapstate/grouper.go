package mapstate

import (
	"github.com/google/uuid"
	"github.com/shenikar/napmap/internal/models"
)

// groupNamespace - пространство имен для детерминированных идентификаторов групп
var groupNamespace = uuid.MustParse("6f1d3c52-8a0e-4d7b-9c61-2b5e7a4f90d3")

// GroupIndex - отображение ключа координаты в группу маркеров
type GroupIndex struct {
	order    []*models.MarkerGroup
	byKey    map[models.CoordinateKey]*models.MarkerGroup
	byID     map[uuid.UUID]*models.MarkerGroup
	byRecord map[int]*models.MarkerGroup
}

// GroupID возвращает идентификатор группы для ключа координаты
func GroupID(key models.CoordinateKey) uuid.UUID {
	return uuid.NewSHA1(groupNamespace, []byte(key.String()))
}

// Group строит группы за один проход. Порядок участников внутри группы
// и порядок самих групп совпадают с порядком записей.
func Group(records []models.Record, collapsedRadius float64) *GroupIndex {
	idx := &GroupIndex{
		byKey:    make(map[models.CoordinateKey]*models.MarkerGroup),
		byID:     make(map[uuid.UUID]*models.MarkerGroup),
		byRecord: make(map[int]*models.MarkerGroup, len(records)),
	}

	for _, rec := range records {
		key := rec.Coordinate.Key()
		g, ok := idx.byKey[key]
		if !ok {
			g = &models.MarkerGroup{
				ID:               GroupID(key),
				Key:              key,
				Coordinate:       rec.Coordinate,
				Subdivisions:     make(map[string]struct{}),
				State:            models.Collapsed,
				Radius:           collapsedRadius,
				DisplayPositions: make(map[int]models.Coordinate),
			}
			idx.byKey[key] = g
			idx.byID[g.ID] = g
			idx.order = append(idx.order, g)
		}
		g.MemberRecordIDs = append(g.MemberRecordIDs, rec.ID)
		g.DisplayPositions[rec.ID] = g.Coordinate
		if rec.Subdivision != "" {
			g.Subdivisions[rec.Subdivision] = struct{}{}
		}
		idx.byRecord[rec.ID] = g
	}
	return idx
}

// Groups возвращает группы в порядке первого появления координаты
func (i *GroupIndex) Groups() []*models.MarkerGroup {
	return i.order
}

func (i *GroupIndex) Len() int {
	return len(i.order)
}

// ByKey возвращает группу по ключу координаты
func (i *GroupIndex) ByKey(key models.CoordinateKey) (*models.MarkerGroup, bool) {
	g, ok := i.byKey[key]
	return g, ok
}

// ByID возвращает группу по идентификатору
func (i *GroupIndex) ByID(id uuid.UUID) (*models.MarkerGroup, bool) {
	g, ok := i.byID[id]
	return g, ok
}

// ByRecord возвращает группу, в которую входит запись
func (i *GroupIndex) ByRecord(recordID int) (*models.MarkerGroup, bool) {
	g, ok := i.byRecord[recordID]
	return g, ok
}

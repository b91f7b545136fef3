package mapstate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/napmap/internal/models"
)

// Config - параметры отображения
type Config struct {
	Expansion      ExpansionConfig
	MarkerColor    string
	HighlightColor string
	LocateZoom     int
	PulseDuration  time.Duration
	InitialView    models.ViewCommand
}

// DefaultConfig возвращает параметры по умолчанию
func DefaultConfig() Config {
	return Config{
		Expansion:      DefaultExpansionConfig(),
		MarkerColor:    "#3388ff",
		HighlightColor: "red",
		LocateZoom:     18,
		PulseDuration:  1500 * time.Millisecond,
		InitialView: models.ViewCommand{
			Center: models.Coordinate{Latitude: 14.62, Longitude: 121.107},
			Zoom:   15,
		},
	}
}

// MapState владеет набором точек, группами, фильтрами и слоями границ.
// Все события обрабатываются последовательно, синхронизация - на вызывающей стороне.
type MapState struct {
	cfg        Config
	store      *RecordStore
	groups     *GroupIndex
	filter     *FilterEngine
	expansion  *ExpansionController
	boundaries map[string]*models.BoundaryLayer
	layerOrder []string
	now        func() time.Time
}

func New(cfg Config) *MapState {
	return &MapState{
		cfg:        cfg,
		expansion:  NewExpansionController(cfg.Expansion),
		boundaries: make(map[string]*models.BoundaryLayer),
		now:        time.Now,
	}
}

// Reset удаляет все данные перед повторной загрузкой
func (s *MapState) Reset() {
	s.store = nil
	s.groups = nil
	s.filter = nil
	s.boundaries = make(map[string]*models.BoundaryLayer)
	s.layerOrder = nil
}

// PointsLoaded сообщает, загружен ли набор точек
func (s *MapState) PointsLoaded() bool {
	return s.store != nil
}

func (s *MapState) Store() *RecordStore {
	return s.store
}

// Groups возвращает группы маркеров в порядке появления
func (s *MapState) Groups() []*models.MarkerGroup {
	if s.groups == nil {
		return nil
	}
	return s.groups.Groups()
}

// Group возвращает группу по идентификатору
func (s *MapState) Group(id uuid.UUID) (*models.MarkerGroup, bool) {
	if s.groups == nil {
		return nil, false
	}
	return s.groups.ByID(id)
}

// FilterState возвращает текущий выбор фильтров
func (s *MapState) FilterState() models.FilterState {
	if s.filter == nil {
		return models.DefaultFilterState()
	}
	return s.filter.State()
}

// Options возвращает списки значений фильтров
func (s *MapState) Options() models.FilterOptions {
	if s.filter == nil {
		return models.FilterOptions{Subdivisions: []string{}, NAPs: []string{}}
	}
	return s.filter.Options()
}

// Visible вычисляет видимость группы по текущему фильтру
func (s *MapState) Visible(g *models.MarkerGroup) bool {
	if s.filter == nil {
		return true
	}
	return s.filter.Visible(g)
}

// Boundaries возвращает слои границ в порядке загрузки
func (s *MapState) Boundaries() []*models.BoundaryLayer {
	out := make([]*models.BoundaryLayer, 0, len(s.layerOrder))
	for _, name := range s.layerOrder {
		out = append(out, s.boundaries[name])
	}
	return out
}

// Boundary возвращает слой границ по имени
func (s *MapState) Boundary(name string) (*models.BoundaryLayer, bool) {
	layer, ok := s.boundaries[name]
	return layer, ok
}

// OnPointsLoaded строит группы и сбрасывает фильтры. Предыдущие группы уничтожаются.
func (s *MapState) OnPointsLoaded(store *RecordStore) models.DrawBatch {
	s.store = store
	s.groups = Group(store.AllRecords(), s.cfg.Expansion.CollapsedRadius)
	s.filter = NewFilterEngine(store)

	batch := s.newBatch(models.ReasonLoad)
	batch.Markers = s.allMarkerCommands()
	opts := s.filter.Options()
	batch.Options = &opts
	view := s.cfg.InitialView
	batch.View = &view
	return batch
}

// OnBoundaryLoaded добавляет или заменяет слой границ
func (s *MapState) OnBoundaryLoaded(layer *models.BoundaryLayer) models.DrawBatch {
	if _, ok := s.boundaries[layer.Name]; !ok {
		s.layerOrder = append(s.layerOrder, layer.Name)
	}
	s.boundaries[layer.Name] = layer

	batch := s.newBatch(models.ReasonBoundary)
	batch.Boundaries = []models.BoundaryCommand{boundaryCommand(layer)}
	return batch
}

// OnBoundaryToggle показывает или скрывает слой границ
func (s *MapState) OnBoundaryToggle(name string, visible bool) (models.DrawBatch, error) {
	layer, ok := s.boundaries[name]
	if !ok {
		return models.DrawBatch{}, fmt.Errorf("%w: %s", ErrBoundaryNotFound, name)
	}
	layer.Visible = visible

	batch := s.newBatch(models.ReasonBoundary)
	batch.Boundaries = []models.BoundaryCommand{boundaryCommand(layer)}
	return batch, nil
}

// OnFilterChange применяет полное состояние фильтров
func (s *MapState) OnFilterChange(state models.FilterState) (models.DrawBatch, error) {
	if s.filter == nil {
		return models.DrawBatch{}, ErrPointsNotLoaded
	}
	s.filter.Apply(state)
	return s.filterBatch(), nil
}

// OnSubdivisionChange меняет только фильтр subdivision
func (s *MapState) OnSubdivisionChange(subdivision string) (models.DrawBatch, error) {
	if s.filter == nil {
		return models.DrawBatch{}, ErrPointsNotLoaded
	}
	s.filter.SetSubdivision(subdivision)
	return s.filterBatch(), nil
}

// OnNAPChange меняет только фильтр NAP
func (s *MapState) OnNAPChange(nap string) (models.DrawBatch, error) {
	if s.filter == nil {
		return models.DrawBatch{}, ErrPointsNotLoaded
	}
	s.filter.SetNAP(nap)
	return s.filterBatch(), nil
}

// OnGroupActivate переключает группу между свернутым и раскрытым состоянием.
// Для группы из одной записи пакет команд пуст.
func (s *MapState) OnGroupActivate(id uuid.UUID) (models.DrawBatch, error) {
	if s.groups == nil {
		return models.DrawBatch{}, ErrPointsNotLoaded
	}
	g, ok := s.groups.ByID(id)
	if !ok {
		return models.DrawBatch{}, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}

	batch := s.newBatch(models.ReasonToggle)
	wasExpanded := g.Expanded()
	if !s.expansion.Activate(g) {
		return batch, nil
	}
	batch.ClosePopups = wasExpanded
	batch.Markers = s.groupCommands(g, s.Visible(g))
	return batch, nil
}

// OnSearch ищет NAP и формирует команды центрирования и подсветки.
// Отсутствие совпадения - не ошибка, а результат с Found == false.
func (s *MapState) OnSearch(query string) (models.LocateResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return models.LocateResult{}, ErrEmptyQuery
	}
	result := models.LocateResult{Query: q}
	if s.store == nil {
		return result, nil
	}

	rec, ok := s.store.FindByNAP(q)
	if !ok {
		return result, nil
	}
	g, ok := s.groups.ByRecord(rec.ID)
	if !ok {
		return result, nil
	}

	visible := s.Visible(g)
	batch := s.newBatch(models.ReasonLocate)
	batch.View = &models.ViewCommand{Center: g.DisplayPositions[rec.ID], Zoom: s.cfg.LocateZoom}
	batch.Markers = s.locateCommands(g, rec.ID, visible, s.cfg.HighlightColor, true)
	batch.Revert = s.locateCommands(g, rec.ID, visible, s.cfg.MarkerColor, false)
	batch.RevertAfter = s.cfg.PulseDuration

	result.Found = true
	result.RecordID = rec.ID
	result.GroupID = g.ID
	result.Batch = &batch
	return result, nil
}

// Snapshot возвращает полное текущее состояние отображения
func (s *MapState) Snapshot() models.DrawBatch {
	batch := s.newBatch(models.ReasonSnapshot)
	batch.Markers = s.allMarkerCommands()
	for _, layer := range s.Boundaries() {
		batch.Boundaries = append(batch.Boundaries, boundaryCommand(layer))
	}
	opts := s.Options()
	batch.Options = &opts
	return batch
}

func (s *MapState) filterBatch() models.DrawBatch {
	batch := s.newBatch(models.ReasonFilter)
	batch.Markers = s.allMarkerCommands()
	opts := s.filter.Options()
	batch.Options = &opts
	return batch
}

func (s *MapState) newBatch(reason string) models.DrawBatch {
	return models.DrawBatch{Reason: reason, CreatedAt: s.now()}
}

func (s *MapState) allMarkerCommands() []models.MarkerCommand {
	cmds := make([]models.MarkerCommand, 0, len(s.Groups()))
	for _, g := range s.Groups() {
		cmds = append(cmds, s.groupCommands(g, s.Visible(g))...)
	}
	return cmds
}

// groupCommands формирует команды одной группы. В раскрытой группе
// открытым остается окно последнего участника.
func (s *MapState) groupCommands(g *models.MarkerGroup, visible bool) []models.MarkerCommand {
	if !g.Expanded() {
		return []models.MarkerCommand{{
			GroupID:  g.ID,
			RecordID: -1,
			Position: g.Coordinate,
			Radius:   g.Radius,
			Color:    s.cfg.MarkerColor,
			Popup:    GroupPopup(g, s.store),
			Visible:  visible,
		}}
	}

	cmds := make([]models.MarkerCommand, 0, g.Count())
	for i, id := range g.MemberRecordIDs {
		rec, _ := s.store.Record(id)
		cmds = append(cmds, models.MarkerCommand{
			GroupID:   g.ID,
			RecordID:  id,
			Position:  g.DisplayPositions[id],
			Radius:    g.Radius,
			Color:     s.cfg.MarkerColor,
			Popup:     MemberPopup(rec),
			Visible:   visible,
			OpenPopup: i == g.Count()-1,
		})
	}
	return cmds
}

func (s *MapState) locateCommands(g *models.MarkerGroup, recordID int, visible bool, color string, open bool) []models.MarkerCommand {
	cmds := s.groupCommands(g, visible)
	for i := range cmds {
		cmds[i].OpenPopup = false
		if cmds[i].RecordID == -1 || cmds[i].RecordID == recordID {
			cmds[i].Color = color
			cmds[i].OpenPopup = open
		}
	}
	return cmds
}

func boundaryCommand(layer *models.BoundaryLayer) models.BoundaryCommand {
	return models.BoundaryCommand{
		Name:    layer.Name,
		Kind:    layer.Kind,
		Style:   layer.Style,
		Visible: layer.Visible,
	}
}

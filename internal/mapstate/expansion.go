package mapstate

import (
	"math"

	"github.com/shenikar/napmap/internal/models"
)

// ExpansionConfig - параметры раскладки раскрытой группы
type ExpansionConfig struct {
	// Offset - радиус кольца в десятичных градусах, не зависит от масштаба карты
	Offset          float64
	CollapsedRadius float64
	ExpandedRadius  float64
}

// DefaultExpansionConfig возвращает параметры по умолчанию
func DefaultExpansionConfig() ExpansionConfig {
	return ExpansionConfig{
		Offset:          0.00005,
		CollapsedRadius: 8,
		ExpandedRadius:  12,
	}
}

// ExpansionController переключает группу между свернутым и раскрытым состоянием
type ExpansionController struct {
	cfg ExpansionConfig
}

func NewExpansionController(cfg ExpansionConfig) *ExpansionController {
	return &ExpansionController{cfg: cfg}
}

// Expandable сообщает, может ли группа быть раскрыта
func (c *ExpansionController) Expandable(g *models.MarkerGroup) bool {
	return g.Count() > 1
}

// Expand раскладывает участников по кольцу вокруг исходной координаты.
// Возвращает false, если состояние не изменилось.
func (c *ExpansionController) Expand(g *models.MarkerGroup) bool {
	if !c.Expandable(g) || g.Expanded() {
		return false
	}

	count := float64(g.Count())
	for i, id := range g.MemberRecordIDs {
		theta := 2 * math.Pi * float64(i) / count
		g.DisplayPositions[id] = models.Coordinate{
			Latitude:  g.Coordinate.Latitude + c.cfg.Offset*math.Cos(theta),
			Longitude: g.Coordinate.Longitude + c.cfg.Offset*math.Sin(theta),
		}
	}
	g.Radius = c.cfg.ExpandedRadius
	g.State = models.Expanded
	return true
}

// Collapse возвращает всех участников в исходную координату.
// Возвращает false, если группа уже свернута.
func (c *ExpansionController) Collapse(g *models.MarkerGroup) bool {
	if !g.Expanded() {
		return false
	}

	for _, id := range g.MemberRecordIDs {
		g.DisplayPositions[id] = g.Coordinate
	}
	g.Radius = c.cfg.CollapsedRadius
	g.State = models.Collapsed
	return true
}

// Activate обрабатывает клик по группе. Группа из одной записи не меняется.
func (c *ExpansionController) Activate(g *models.MarkerGroup) bool {
	if g.Expanded() {
		return c.Collapse(g)
	}
	return c.Expand(g)
}

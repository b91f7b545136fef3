package models

import (
	"time"

	"github.com/google/uuid"
)

// Причины формирования пакета команд отрисовки
const (
	ReasonLoad     = "load"
	ReasonToggle   = "toggle"
	ReasonFilter   = "filter"
	ReasonLocate   = "locate"
	ReasonBoundary = "boundary"
	ReasonSnapshot = "snapshot"
)

// MarkerCommand - команда отрисовки одного маркера.
// RecordID равен -1 для маркера уровня группы (свернутое состояние).
type MarkerCommand struct {
	GroupID   uuid.UUID  `json:"group_id"`
	RecordID  int        `json:"record_id"`
	Position  Coordinate `json:"position"`
	Radius    float64    `json:"radius"`
	Color     string     `json:"color"`
	Popup     string     `json:"popup"`
	Visible   bool       `json:"visible"`
	OpenPopup bool       `json:"open_popup,omitempty"`
}

// BoundaryCommand - команда показа или скрытия слоя границ
type BoundaryCommand struct {
	Name    string        `json:"name"`
	Kind    BoundaryKind  `json:"kind"`
	Style   BoundaryStyle `json:"style"`
	Visible bool          `json:"visible"`
}

// ViewCommand - команда центрирования карты
type ViewCommand struct {
	Center Coordinate `json:"center"`
	Zoom   int        `json:"zoom"`
}

// DrawBatch - набор команд, порожденный одним событием
type DrawBatch struct {
	Reason      string            `json:"reason"`
	Markers     []MarkerCommand   `json:"markers,omitempty"`
	Boundaries  []BoundaryCommand `json:"boundaries,omitempty"`
	View        *ViewCommand      `json:"view,omitempty"`
	Options     *FilterOptions    `json:"options,omitempty"`
	ClosePopups bool              `json:"close_popups,omitempty"`
	// Revert - команды, которые MapView применяет через RevertAfter (подсветка при поиске)
	Revert      []MarkerCommand `json:"revert,omitempty"`
	RevertAfter time.Duration   `json:"revert_after,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LocateResult - результат поиска NAP
type LocateResult struct {
	Found    bool       `json:"found"`
	Query    string     `json:"query"`
	RecordID int        `json:"record_id,omitempty"`
	GroupID  uuid.UUID  `json:"group_id,omitempty"`
	Batch    *DrawBatch `json:"batch,omitempty"`
}

package v1

import (
	"github.com/google/uuid"
)

// FilterRequest DTO для полного изменения фильтров
// @Description DTO для полного изменения фильтров
type FilterRequest struct {
	Subdivision string `json:"subdivision" validate:"required,max=255"`
	NAP         string `json:"nap" validate:"required,max=255"`
}

// SubdivisionRequest DTO для изменения фильтра subdivision
// @Description DTO для изменения фильтра subdivision
type SubdivisionRequest struct {
	Subdivision string `json:"subdivision" validate:"required,max=255"`
}

// NAPRequest DTO для изменения фильтра NAP
// @Description DTO для изменения фильтра NAP
type NAPRequest struct {
	NAP string `json:"nap" validate:"required,max=255"`
}

// BoundaryVisibilityRequest DTO для показа или скрытия слоя границ
// @Description DTO для показа или скрытия слоя границ
type BoundaryVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// CoordinateResponse DTO координаты
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarkerResponse DTO команды отрисовки маркера
// @Description DTO команды отрисовки маркера
type MarkerResponse struct {
	GroupID   uuid.UUID          `json:"group_id"`
	RecordID  int                `json:"record_id"`
	Position  CoordinateResponse `json:"position"`
	Radius    float64            `json:"radius"`
	Color     string             `json:"color"`
	Popup     string             `json:"popup"`
	Visible   bool               `json:"visible"`
	OpenPopup bool               `json:"open_popup"`
}

// BoundaryResponse DTO состояния слоя границ
// @Description DTO состояния слоя границ
type BoundaryResponse struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillOpacity float64 `json:"fill_opacity"`
	Visible     bool    `json:"visible"`
}

// ViewResponse DTO команды центрирования карты
type ViewResponse struct {
	Center CoordinateResponse `json:"center"`
	Zoom   int                `json:"zoom"`
}

// OptionsResponse DTO списков значений фильтров
type OptionsResponse struct {
	Subdivisions []string `json:"subdivisions"`
	NAPs         []string `json:"naps"`
}

// DrawBatchResponse DTO пакета команд отрисовки
// @Description DTO пакета команд отрисовки
type DrawBatchResponse struct {
	Reason        string             `json:"reason"`
	Markers       []MarkerResponse   `json:"markers"`
	Boundaries    []BoundaryResponse `json:"boundaries,omitempty"`
	View          *ViewResponse      `json:"view,omitempty"`
	Options       *OptionsResponse   `json:"options,omitempty"`
	ClosePopups   bool               `json:"close_popups"`
	Revert        []MarkerResponse   `json:"revert,omitempty"`
	RevertAfterMs int64              `json:"revert_after_ms,omitempty"`
}

// FiltersResponse DTO текущего состояния фильтров
// @Description DTO текущего состояния фильтров
type FiltersResponse struct {
	Subdivision string          `json:"subdivision"`
	NAP         string          `json:"nap"`
	Options     OptionsResponse `json:"options"`
}

// SearchResponse DTO результата поиска NAP
// @Description DTO результата поиска NAP
type SearchResponse struct {
	Found    bool               `json:"found"`
	Query    string             `json:"query"`
	RecordID *int               `json:"record_id,omitempty"`
	GroupID  *uuid.UUID         `json:"group_id,omitempty"`
	Batch    *DrawBatchResponse `json:"batch,omitempty"`
}

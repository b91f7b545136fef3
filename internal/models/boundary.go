package models

import "github.com/paulmach/orb/geojson"

// BoundaryKind - тип слоя границ
type BoundaryKind string

const (
	BoundaryBarangay    BoundaryKind = "barangay"
	BoundarySubdivision BoundaryKind = "subdivision"
)

// BoundaryStyle - стиль отрисовки полигонов слоя
type BoundaryStyle struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillOpacity float64 `json:"fill_opacity"`
}

// StyleFor возвращает стиль по умолчанию для типа слоя
func StyleFor(kind BoundaryKind) BoundaryStyle {
	if kind == BoundarySubdivision {
		return BoundaryStyle{Color: "green", Weight: 1.5, FillOpacity: 0.15}
	}
	return BoundaryStyle{Color: "blue", Weight: 2, FillOpacity: 0.1}
}

// BoundaryLayer - загруженный слой границ. Геометрия не анализируется,
// а передается в MapView как есть.
type BoundaryLayer struct {
	Name     string
	File     string
	Kind     BoundaryKind
	Style    BoundaryStyle
	Visible  bool
	Features *geojson.FeatureCollection
}

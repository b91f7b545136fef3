package models

import (
	"fmt"
	"math"
)

// Колонки входной таблицы точек
const (
	ColumnLatitude    = "LATITUDE"
	ColumnLongitude   = "LONGITUDE"
	ColumnNAP         = "NAP"
	ColumnSubdivision = "SUBDIVISION"
	ColumnStreet      = "STREET"
	ColumnBarangay    = "BARANGAY"
	ColumnCity        = "CITY"
)

// FilterAll - значение фильтра, означающее отсутствие ограничения
const FilterAll = "All"

// Coordinate - географическая точка в десятичных градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key возвращает точный ключ координаты (побитовое равенство)
func (c Coordinate) Key() CoordinateKey {
	return CoordinateKey{
		lat: math.Float64bits(c.Latitude),
		lon: math.Float64bits(c.Longitude),
	}
}

// CoordinateKey - ключ группировки. Две записи попадают в одну группу
// только если их координаты совпадают побитово.
type CoordinateKey struct {
	lat uint64
	lon uint64
}

func (k CoordinateKey) String() string {
	return fmt.Sprintf("%016x:%016x", k.lat, k.lon)
}

// Record - одна строка набора точек, неизменяемая после загрузки
type Record struct {
	ID          int        `json:"id"`
	Coordinate  Coordinate `json:"coordinate"`
	NAP         string     `json:"nap"`
	Subdivision string     `json:"subdivision"`
	Street      string     `json:"street"`
	Barangay    string     `json:"barangay"`
	City        string     `json:"city"`
}

// RawRow - строка таблицы с ключами по заголовку
type RawRow map[string]string

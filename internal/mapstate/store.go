package mapstate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shenikar/napmap/internal/models"
)

var requiredColumns = []string{
	models.ColumnLatitude,
	models.ColumnLongitude,
	models.ColumnNAP,
	models.ColumnSubdivision,
}

// RecordStore хранит разобранные записи точек в порядке входных строк
type RecordStore struct {
	records      []models.Record
	byID         map[int]int
	subdivisions []string
	dropped      []int
}

// LoadRecords разбирает строки таблицы. Строки без числовых координат
// пропускаются, отсутствие обязательной колонки возвращает *ParseError.
func LoadRecords(rows []models.RawRow) (*RecordStore, error) {
	store := &RecordStore{
		records: make([]models.Record, 0, len(rows)),
		byID:    make(map[int]int, len(rows)),
	}
	if len(rows) == 0 {
		return store, nil
	}

	normalized := make([]map[string]string, len(rows))
	columns := make(map[string]struct{})
	for i, row := range rows {
		normalized[i] = normalizeRow(row)
		for col := range normalized[i] {
			columns[col] = struct{}{}
		}
	}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, &ParseError{Column: col}
		}
	}

	seenSub := make(map[string]struct{})
	for i, row := range normalized {
		lat, okLat := parseCoordinate(row[models.ColumnLatitude])
		lon, okLon := parseCoordinate(row[models.ColumnLongitude])
		if !okLat || !okLon {
			store.dropped = append(store.dropped, i)
			continue
		}

		rec := models.Record{
			ID:          i,
			Coordinate:  models.Coordinate{Latitude: lat, Longitude: lon},
			NAP:         row[models.ColumnNAP],
			Subdivision: row[models.ColumnSubdivision],
			Street:      row[models.ColumnStreet],
			Barangay:    row[models.ColumnBarangay],
			City:        row[models.ColumnCity],
		}
		store.byID[rec.ID] = len(store.records)
		store.records = append(store.records, rec)

		if rec.Subdivision == "" {
			continue
		}
		if _, ok := seenSub[rec.Subdivision]; !ok {
			seenSub[rec.Subdivision] = struct{}{}
			store.subdivisions = append(store.subdivisions, rec.Subdivision)
		}
	}
	return store, nil
}

func normalizeRow(row models.RawRow) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

func parseCoordinate(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// AllRecords возвращает записи в порядке входных строк
func (s *RecordStore) AllRecords() []models.Record {
	return s.records
}

// Len возвращает количество принятых записей
func (s *RecordStore) Len() int {
	return len(s.records)
}

// Dropped возвращает индексы строк, отброшенных из-за координат
func (s *RecordStore) Dropped() []int {
	return s.dropped
}

// Record возвращает запись по идентификатору
func (s *RecordStore) Record(id int) (models.Record, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return models.Record{}, false
	}
	return s.records[idx], true
}

// RecordsBySubdivision возвращает записи указанного subdivision
func (s *RecordStore) RecordsBySubdivision(name string) []models.Record {
	var out []models.Record
	for _, rec := range s.records {
		if rec.Subdivision == name {
			out = append(out, rec)
		}
	}
	return out
}

// AllSubdivisions возвращает уникальные subdivision в порядке первого появления
func (s *RecordStore) AllSubdivisions() []string {
	out := make([]string, len(s.subdivisions))
	copy(out, s.subdivisions)
	return out
}

// AllNaps возвращает уникальные NAP, отсортированные лексикографически.
// Пустая строка или FilterAll означают все записи.
func (s *RecordStore) AllNaps(subdivision string) []string {
	all := subdivision == "" || subdivision == models.FilterAll
	seen := make(map[string]struct{})
	naps := make([]string, 0)
	for _, rec := range s.records {
		if rec.NAP == "" {
			continue
		}
		if !all && rec.Subdivision != subdivision {
			continue
		}
		if _, ok := seen[rec.NAP]; ok {
			continue
		}
		seen[rec.NAP] = struct{}{}
		naps = append(naps, rec.NAP)
	}
	sort.Strings(naps)
	return naps
}

// FindByNAP ищет первую запись с NAP, равным запросу без учета регистра
func (s *RecordStore) FindByNAP(query string) (models.Record, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return models.Record{}, false
	}
	for _, rec := range s.records {
		if strings.EqualFold(rec.NAP, q) {
			return rec, true
		}
	}
	return models.Record{}, false
}

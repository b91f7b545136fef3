package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/shenikar/napmap/internal/models"
)

// Manifest - список файлов границ (index.json)
type Manifest struct {
	Barangays    []string `json:"barangays"`
	Subdivisions []string `json:"subdivisions"`
}

// BoundaryFile - один файл границ из манифеста
type BoundaryFile struct {
	File string
	Kind models.BoundaryKind
}

// Files возвращает файлы границ в порядке манифеста: сначала barangay, затем subdivision
func (m *Manifest) Files() []BoundaryFile {
	out := make([]BoundaryFile, 0, len(m.Barangays)+len(m.Subdivisions))
	for _, f := range m.Barangays {
		out = append(out, BoundaryFile{File: f, Kind: models.BoundaryBarangay})
	}
	for _, f := range m.Subdivisions {
		out = append(out, BoundaryFile{File: f, Kind: models.BoundarySubdivision})
	}
	return out
}

// ReadManifest читает манифест из файловой системы данных
func ReadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", name, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", name, err)
	}
	return &m, nil
}

// LayerName выводит отображаемое имя слоя из имени файла
func LayerName(file string) string {
	base := file
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return strings.ReplaceAll(strings.TrimSuffix(base, ".geojson"), "_", " ")
}

package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/napmap/internal/models"
)

// ReadBoundary декодирует файл границ. Принимаются FeatureCollection,
// одиночный Feature и голая геометрия; геометрия не анализируется.
func ReadBoundary(fsys fs.FS, bf BoundaryFile) (*models.BoundaryLayer, error) {
	data, err := fs.ReadFile(fsys, bf.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary %s: %w", bf.File, err)
	}

	fc, err := decodeFeatures(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode boundary %s: %w", bf.File, err)
	}

	return &models.BoundaryLayer{
		Name:     LayerName(bf.File),
		File:     bf.File,
		Kind:     bf.Kind,
		Style:    models.StyleFor(bf.Kind),
		Visible:  true,
		Features: fc,
	}, nil
}

func decodeFeatures(data []byte) (*geojson.FeatureCollection, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case "FeatureCollection":
		return geojson.UnmarshalFeatureCollection(data)
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(f)
		return fc, nil
	case "":
		return nil, fmt.Errorf("missing geojson type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(geojson.NewFeature(g.Geometry()))
		return fc, nil
	}
}

package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/shenikar/napmap/internal/mapstate"
	"github.com/shenikar/napmap/internal/models"
)

// ParsePoints читает CSV с заголовком в строки с ключами по колонкам.
// Строки разной длины допускаются, недостающие поля считаются пустыми.
func ParsePoints(r io.Reader) ([]models.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &mapstate.ParseError{Err: fmt.Errorf("read header: %w", err)}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]models.RawRow, 0)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &mapstate.ParseError{Err: err}
		}
		if isBlank(fields) {
			continue
		}
		row := make(models.RawRow, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// CSVPointSource читает точки из CSV-файла в каталоге данных
type CSVPointSource struct {
	fsys fs.FS
	file string
}

func NewCSVPointSource(fsys fs.FS, file string) *CSVPointSource {
	return &CSVPointSource{fsys: fsys, file: file}
}

func (s *CSVPointSource) Name() string {
	return s.file
}

// LoadRows читает и разбирает файл точек
func (s *CSVPointSource) LoadRows(_ context.Context) ([]models.RawRow, error) {
	f, err := s.fsys.Open(s.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open points file %s: %w", s.file, err)
	}
	defer f.Close()

	rows, err := ParsePoints(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse points file %s: %w", s.file, err)
	}
	return rows, nil
}

package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/napmap/internal/models"
)

// PointRepository читает таблицу точек NAP из PostgreSQL.
// Репозиторий только читает: состояние карты в базе не хранится.
type PointRepository struct {
	db *pgxpool.Pool
}

func NewPointRepository(db *pgxpool.Pool) *PointRepository {
	return &PointRepository{db: db}
}

func (r *PointRepository) Name() string {
	return "postgres:nap_points"
}

// LoadRows возвращает строки в порядке идентификаторов, в формате CSV-таблицы.
// Координаты без значения попадают в строку пустыми и отбрасываются при разборе.
func (r *PointRepository) LoadRows(ctx context.Context) ([]models.RawRow, error) {
	query := `
		SELECT
			latitude,
			longitude,
			nap,
			subdivision,
			street,
			barangay,
			city
		FROM nap_points
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query nap points: %w", err)
	}
	defer rows.Close()

	result := make([]models.RawRow, 0)
	for rows.Next() {
		var (
			lat, lon                                *float64
			nap, subdivision, street, barangay, city string
		)
		if err := rows.Scan(&lat, &lon, &nap, &subdivision, &street, &barangay, &city); err != nil {
			return nil, fmt.Errorf("failed to scan nap point row: %w", err)
		}
		result = append(result, models.RawRow{
			models.ColumnLatitude:    formatNullable(lat),
			models.ColumnLongitude:   formatNullable(lon),
			models.ColumnNAP:         nap,
			models.ColumnSubdivision: subdivision,
			models.ColumnStreet:      street,
			models.ColumnBarangay:    barangay,
			models.ColumnCity:        city,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error nap points iteration: %w", err)
	}
	return result, nil
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

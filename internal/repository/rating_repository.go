package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godilite/windrose/internal/dataset"
)

// Schema is the table layout read by RatingRepository.
const Schema = `
	CREATE TABLE IF NOT EXISTS ratings (
		month          TEXT    NOT NULL,
		month_order    INTEGER NOT NULL,
		category       TEXT    NOT NULL,
		category_order INTEGER NOT NULL,
		score          INTEGER NOT NULL,
		PRIMARY KEY (month, category)
	);
`

type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Dataset reads every rating in month then category order.
func (r *RatingRepository) Dataset(ctx context.Context) (*dataset.Dataset, error) {
	const query = `
		SELECT month, category, score
		FROM ratings
		ORDER BY month_order, month, category_order, category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query Dataset: %w", err)
	}
	defer rows.Close()

	b := dataset.NewBuilder()
	for rows.Next() {
		var (
			month, category string
			score           int
		)
		if err := rows.Scan(&month, &category, &score); err != nil {
			return nil, fmt.Errorf("scan Dataset row: %w", err)
		}
		b.Add(month, category, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate Dataset: %w", err)
	}
	return b.Build(), nil
}

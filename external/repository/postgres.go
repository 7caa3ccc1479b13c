package repository

import (
	"context"

	"github.com/foxseedlab/honyakun/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) InsertTranslation(ctx context.Context, input repository.InsertTranslationInput) (*repository.Translation, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO translations (recorded_at, source_text, translated_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, recorded_at, source_text, translated_text, created_at`,
		input.RecordedAt, input.SourceText, input.TranslatedText)
	var t repository.Translation
	if err := row.Scan(&t.ID, &t.RecordedAt, &t.SourceText, &t.TranslatedText, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) ListTranslations(ctx context.Context) ([]repository.Translation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, recorded_at, source_text, translated_text, created_at
		 FROM translations ORDER BY recorded_at DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.Translation
	for rows.Next() {
		var t repository.Translation
		if err := rows.Scan(&t.ID, &t.RecordedAt, &t.SourceText, &t.TranslatedText, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) ClearTranslations(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM translations`)
	return err
}

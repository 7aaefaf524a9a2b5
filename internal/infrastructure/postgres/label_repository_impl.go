package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/pkg/sentinel"
)

type LabelRepository struct {
	pool *pgxpool.Pool
}

func NewLabelRepository(pool *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{pool: pool}
}

func (r *LabelRepository) Create(l *entity.Label) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO labels (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, l.Name)

	return translateRef(row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt))
}

func (r *LabelRepository) FindByID(id int64) (*entity.Label, error) {
	ctx := context.Background()
	l := &entity.Label{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM labels
		WHERE id = $1
	`, id)

	if err := row.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}

	return l, nil
}

// FindByIDIn returns the labels whose ids exist. Ids with no matching row are
// simply absent from the result.
func (r *LabelRepository) FindByIDIn(ids []int64) ([]*entity.Label, error) {
	if len(ids) == 0 {
		return []*entity.Label{}, nil
	}
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM labels
		WHERE id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Label, 0, len(ids))
	for rows.Next() {
		l := &entity.Label{}
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LabelRepository) FindAll() ([]*entity.Label, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM labels
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Label
	for rows.Next() {
		l := &entity.Label{}
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LabelRepository) Update(l *entity.Label) error {
	ctx := context.Background()
	l.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE labels
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, l.Name, l.UpdatedAt, l.ID)
	if err != nil {
		return translateRef(err)
	}

	if res.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}

	return nil
}

func (r *LabelRepository) Delete(id int64) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}

	if res.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}

	return nil
}

var _ repository.LabelRepository = (*LabelRepository)(nil)

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

type TaskStatusRepository struct {
	pool *pgxpool.Pool
}

func NewTaskStatusRepository(pool *pgxpool.Pool) *TaskStatusRepository {
	return &TaskStatusRepository{pool: pool}
}

func (r *TaskStatusRepository) Create(s *entity.TaskStatus) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO task_statuses (name, slug)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, s.Name, s.Slug)

	return translateRef(row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *TaskStatusRepository) FindByID(id int64) (*entity.TaskStatus, error) {
	return r.findOne(`WHERE id = $1`, id)
}

func (r *TaskStatusRepository) FindBySlug(slug string) (*entity.TaskStatus, error) {
	return r.findOne(`WHERE slug = $1`, slug)
}

func (r *TaskStatusRepository) findOne(where string, arg any) (*entity.TaskStatus, error) {
	ctx := context.Background()
	s := &entity.TaskStatus{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, slug, created_at, updated_at
		FROM task_statuses
	`+where, arg)

	if err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *TaskStatusRepository) FindAll() ([]*entity.TaskStatus, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug, created_at, updated_at
		FROM task_statuses
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.TaskStatus
	for rows.Next() {
		s := &entity.TaskStatus{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *TaskStatusRepository) Update(s *entity.TaskStatus) error {
	ctx := context.Background()
	s.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE task_statuses
		SET name = $1, slug = $2, updated_at = $3
		WHERE id = $4
	`, s.Name, s.Slug, s.UpdatedAt, s.ID)
	if err != nil {
		return translateRef(err)
	}

	if res.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}

	return nil
}

func (r *TaskStatusRepository) Delete(id int64) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM task_statuses WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}

	if res.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}

	return nil
}

var _ repository.TaskStatusRepository = (*TaskStatusRepository)(nil)

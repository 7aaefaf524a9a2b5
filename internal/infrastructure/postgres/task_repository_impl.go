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

// TaskRepository persists tasks plus their task_labels rows. Reads join
// task_statuses so the slug travels with the entity.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskSelect = `
	SELECT t.id, t.idx, t.assignee_id, t.title, t.description, t.status_id, s.slug,
	       COALESCE(array_agg(tl.label_id ORDER BY tl.label_id) FILTER (WHERE tl.label_id IS NOT NULL), '{}'),
	       t.created_at, t.updated_at
	FROM tasks t
	JOIN task_statuses s ON s.id = t.status_id
	LEFT JOIN task_labels tl ON tl.task_id = t.id
`

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	err := row.Scan(&t.ID, &t.Index, &t.AssigneeID, &t.Title, &t.Description,
		&t.StatusID, &t.StatusSlug, &t.LabelIDs, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Create(t *entity.Task) error {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO tasks (idx, assignee_id, title, description, status_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, t.Index, t.AssigneeID, t.Title, t.Description, t.StatusID)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return translateRef(err)
	}

	if err := replaceTaskLabels(ctx, tx, t.ID, t.LabelIDs); err != nil {
		return translateRef(err)
	}

	return tx.Commit(ctx)
}

func (r *TaskRepository) FindByID(id int64) (*entity.Task, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, taskSelect+`
		WHERE t.id = $1
		GROUP BY t.id, s.slug
	`, id)
	return scanTask(row)
}

func (r *TaskRepository) FindAll() ([]*entity.Task, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, taskSelect+`
		GROUP BY t.id, s.slug
		ORDER BY t.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) Update(t *entity.Task) error {
	ctx := context.Background()
	t.UpdatedAt = time.Now()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `
		UPDATE tasks
		SET idx = $1, assignee_id = $2, title = $3, description = $4, status_id = $5, updated_at = $6
		WHERE id = $7
	`, t.Index, t.AssigneeID, t.Title, t.Description, t.StatusID, t.UpdatedAt, t.ID)
	if err != nil {
		return translateRef(err)
	}
	if res.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM task_labels WHERE task_id = $1`, t.ID); err != nil {
		return err
	}
	if err := replaceTaskLabels(ctx, tx, t.ID, t.LabelIDs); err != nil {
		return translateRef(err)
	}

	return tx.Commit(ctx)
}

func (r *TaskRepository) Delete(id int64) error {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM task_labels WHERE task_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *TaskRepository) ExistsByAssigneeID(userID int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM tasks WHERE assignee_id = $1)`, userID)
}

func (r *TaskRepository) ExistsByStatusID(statusID int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM tasks WHERE status_id = $1)`, statusID)
}

func (r *TaskRepository) ExistsByLabelID(labelID int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM task_labels WHERE label_id = $1)`, labelID)
}

func (r *TaskRepository) exists(query string, arg int64) (bool, error) {
	ctx := context.Background()
	var found bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func replaceTaskLabels(ctx context.Context, tx pgx.Tx, taskID int64, labelIDs []int64) error {
	for _, labelID := range labelIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO task_labels (task_id, label_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, taskID, labelID); err != nil {
			return err
		}
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

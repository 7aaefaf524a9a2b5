package entity

import "time"

// Label tags tasks, many-to-many via the task_labels join table.
type Label struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

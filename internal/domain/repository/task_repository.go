package repository

import "taskboard/internal/domain/entity"

// TaskRepository defines the store contract for tasks. The ExistsBy* queries
// back the delete guards on users, statuses, and labels: deleting any of
// those is refused while a task still references them.
type TaskRepository interface {
	Create(t *entity.Task) error
	FindByID(id int64) (*entity.Task, error)
	FindAll() ([]*entity.Task, error)
	Update(t *entity.Task) error
	Delete(id int64) error

	ExistsByAssigneeID(userID int64) (bool, error)
	ExistsByStatusID(statusID int64) (bool, error)
	ExistsByLabelID(labelID int64) (bool, error)
}

package repository

import "taskboard/internal/domain/entity"

// TaskStatusRepository defines the store contract for workflow statuses.
// Slug is unique; FindBySlug backs status resolution in task payloads.
type TaskStatusRepository interface {
	Create(s *entity.TaskStatus) error
	FindByID(id int64) (*entity.TaskStatus, error)
	FindBySlug(slug string) (*entity.TaskStatus, error)
	FindAll() ([]*entity.TaskStatus, error)
	Update(s *entity.TaskStatus) error
	Delete(id int64) error
}

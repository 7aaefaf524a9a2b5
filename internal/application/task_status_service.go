package application

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/internal/mapper"
	"taskboard/pkg/sentinel"
)

// TaskStatusService orchestrates workflow status mutations. Any authenticated
// principal may act; the only non-trivial rule is the delete guard.
type TaskStatusService struct {
	Statuses repository.TaskStatusRepository
	Tasks    repository.TaskRepository
	Logger   *logrus.Logger
}

func NewTaskStatusService(statuses repository.TaskStatusRepository, tasks repository.TaskRepository, logger *logrus.Logger) *TaskStatusService {
	return &TaskStatusService{Statuses: statuses, Tasks: tasks, Logger: logger}
}

func (s *TaskStatusService) Create(dto mapper.TaskStatusCreateDTO) (*entity.TaskStatus, error) {
	status, err := mapper.StatusFromCreate(dto)
	if err != nil {
		return nil, err
	}
	if err := s.Statuses.Create(status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *TaskStatusService) Get(id int64) (*entity.TaskStatus, error) {
	return s.Statuses.FindByID(id)
}

func (s *TaskStatusService) List() ([]*entity.TaskStatus, error) {
	return s.Statuses.FindAll()
}

func (s *TaskStatusService) Update(id int64, dto mapper.TaskStatusUpdateDTO) (*entity.TaskStatus, error) {
	status, err := s.Statuses.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := mapper.ApplyStatusUpdate(dto, status); err != nil {
		return nil, err
	}
	if err := s.Statuses.Update(status); err != nil {
		return nil, err
	}
	return status, nil
}

// Delete refuses while any task references the status. The SQL RESTRICT
// constraint backs this check up against the check-then-delete race.
func (s *TaskStatusService) Delete(id int64) error {
	if _, err := s.Statuses.FindByID(id); err != nil {
		return err
	}
	inUse, err := s.Tasks.ExistsByStatusID(id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("task status %d is referenced by tasks: %w", id, sentinel.ErrResourceInUse)
	}
	return s.Statuses.Delete(id)
}

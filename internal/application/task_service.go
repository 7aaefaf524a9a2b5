package application

import (
	"github.com/sirupsen/logrus"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/internal/mapper"
)

// TaskService orchestrates task mutations. Tasks are leaf nodes: nothing
// references them, so delete needs no guard.
type TaskService struct {
	Tasks  repository.TaskRepository
	Mapper *mapper.TaskMapper
	Logger *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, m *mapper.TaskMapper, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Mapper: m, Logger: logger}
}

func (s *TaskService) Create(dto mapper.TaskCreateDTO) (*entity.Task, error) {
	task, err := s.Mapper.FromCreate(dto)
	if err != nil {
		return nil, err
	}
	if err := s.Tasks.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(id int64) (*entity.Task, error) {
	return s.Tasks.FindByID(id)
}

func (s *TaskService) List() ([]*entity.Task, error) {
	return s.Tasks.FindAll()
}

func (s *TaskService) Update(id int64, dto mapper.TaskUpdateDTO) (*entity.Task, error) {
	task, err := s.Tasks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Mapper.ApplyUpdate(dto, task); err != nil {
		return nil, err
	}
	if err := s.Tasks.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(id int64) error {
	if _, err := s.Tasks.FindByID(id); err != nil {
		return err
	}
	return s.Tasks.Delete(id)
}

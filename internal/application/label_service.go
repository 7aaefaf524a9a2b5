package application

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/internal/mapper"
	"taskboard/pkg/sentinel"
)

// LabelService orchestrates label mutations. The delete guard is explicit,
// symmetric with users and statuses, instead of leaning on the join table's
// RESTRICT constraint alone.
type LabelService struct {
	Labels repository.LabelRepository
	Tasks  repository.TaskRepository
	Logger *logrus.Logger
}

func NewLabelService(labels repository.LabelRepository, tasks repository.TaskRepository, logger *logrus.Logger) *LabelService {
	return &LabelService{Labels: labels, Tasks: tasks, Logger: logger}
}

func (s *LabelService) Create(dto mapper.LabelCreateDTO) (*entity.Label, error) {
	label, err := mapper.LabelFromCreate(dto)
	if err != nil {
		return nil, err
	}
	if err := s.Labels.Create(label); err != nil {
		return nil, err
	}
	return label, nil
}

func (s *LabelService) Get(id int64) (*entity.Label, error) {
	return s.Labels.FindByID(id)
}

func (s *LabelService) List() ([]*entity.Label, error) {
	return s.Labels.FindAll()
}

func (s *LabelService) Update(id int64, dto mapper.LabelUpdateDTO) (*entity.Label, error) {
	label, err := s.Labels.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := mapper.ApplyLabelUpdate(dto, label); err != nil {
		return nil, err
	}
	if err := s.Labels.Update(label); err != nil {
		return nil, err
	}
	return label, nil
}

func (s *LabelService) Delete(id int64) error {
	if _, err := s.Labels.FindByID(id); err != nil {
		return err
	}
	inUse, err := s.Tasks.ExistsByLabelID(id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("label %d is attached to tasks: %w", id, sentinel.ErrResourceInUse)
	}
	return s.Labels.Delete(id)
}

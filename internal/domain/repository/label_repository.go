package repository

import "taskboard/internal/domain/entity"

// LabelRepository defines the store contract for labels. FindByIDIn returns
// only the labels that exist; callers decide what missing ids mean.
type LabelRepository interface {
	Create(l *entity.Label) error
	FindByID(id int64) (*entity.Label, error)
	FindByIDIn(ids []int64) ([]*entity.Label, error)
	FindAll() ([]*entity.Label, error)
	Update(l *entity.Label) error
	Delete(id int64) error
}

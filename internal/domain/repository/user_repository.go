package repository

import "taskboard/internal/domain/entity"

// UserRepository defines the store contract for accounts. Implementations
// enforce the unique email constraint and return sentinel.ErrDuplicate on
// violation.
type UserRepository interface {
	Create(u *entity.User) error
	FindByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindAll() ([]*entity.User, error)
	Update(u *entity.User) error
	Delete(id int64) error
}

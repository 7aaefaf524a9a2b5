package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/internal/mapper"
	"taskboard/pkg/helpers"
	"taskboard/pkg/mailer"
	"taskboard/pkg/sentinel"
)

// UserService orchestrates account mutations. Update and Delete are gated by
// the ownership policy: only the account owner may change or remove it.
type UserService struct {
	Repo   repository.UserRepository
	Tasks  repository.TaskRepository
	Logger *logrus.Logger
	Rabbit *helpers.RabbitPublisher
}

func NewUserService(repo repository.UserRepository, tasks repository.TaskRepository, logger *logrus.Logger, rabbit *helpers.RabbitPublisher) *UserService {
	return &UserService{Repo: repo, Tasks: tasks, Logger: logger, Rabbit: rabbit}
}

// Register creates an account and queues the welcome email. Anyone may
// register; there is no ownership to check yet.
func (s *UserService) Register(ctx context.Context, dto mapper.UserCreateDTO) (*entity.User, error) {
	u, err := mapper.UserFromCreate(dto)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	if s.Rabbit != nil {
		job := mailer.WelcomeJob(u.Email, u.FirstName)
		if err := s.Rabbit.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email publish failed")
		}
	}
	return u, nil
}

func (s *UserService) Get(id int64) (*entity.User, error) {
	return s.Repo.FindByID(id)
}

func (s *UserService) List() ([]*entity.User, error) {
	return s.Repo.FindAll()
}

// Update merges the payload into the target account. The acting principal
// must own the account; the merge is all-or-nothing.
func (s *UserService) Update(actorEmail string, id int64, dto mapper.UserUpdateDTO) (*entity.User, error) {
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !s.mayMutate(actorEmail, u) {
		return nil, sentinel.ErrForbidden
	}
	if err := mapper.ApplyUserUpdate(dto, u); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the account unless a task still names it as assignee.
func (s *UserService) Delete(actorEmail string, id int64) error {
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if !s.mayMutate(actorEmail, u) {
		return sentinel.ErrForbidden
	}
	inUse, err := s.Tasks.ExistsByAssigneeID(id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("user %d is assigned to tasks: %w", id, sentinel.ErrResourceInUse)
	}
	return s.Repo.Delete(id)
}

// MayMutate reports whether the acting principal owns the target account.
// The comparison is an exact, case-sensitive match between the token's
// subject claim and the target's email.
func (s *UserService) MayMutate(actorEmail string, targetID int64) (bool, error) {
	u, err := s.Repo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.mayMutate(actorEmail, u), nil
}

func (s *UserService) mayMutate(actorEmail string, target *entity.User) bool {
	return actorEmail != "" && actorEmail == target.Email
}

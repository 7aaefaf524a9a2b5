package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	"taskboard/internal/infrastructure/memory"
	"taskboard/internal/mapper"
	"taskboard/pkg/helpers"
	"taskboard/pkg/nullable"
	"taskboard/pkg/sentinel"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type userFixture struct {
	svc      *UserService
	users    *memory.UserStore
	statuses *memory.TaskStatusStore
	tasks    *memory.TaskStore
}

func newUserFixture() *userFixture {
	users := memory.NewUserStore()
	statuses := memory.NewTaskStatusStore()
	tasks := memory.NewTaskStore(statuses)
	return &userFixture{
		svc:      NewUserService(users, tasks, quietLogger(), nil),
		users:    users,
		statuses: statuses,
		tasks:    tasks,
	}
}

func registered(t *testing.T, f *userFixture, email string) *entity.User {
	t.Helper()
	u, err := f.svc.Register(context.Background(), mapper.UserCreateDTO{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "secret",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterAndGet(t *testing.T) {
	f := newUserFixture()
	u := registered(t, f, "ada@example.com")

	got, err := f.svc.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.True(t, helpers.CompareHashAndPassword(got.PasswordHash, "secret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newUserFixture()
	registered(t, f, "ada@example.com")

	_, err := f.svc.Register(context.Background(), mapper.UserCreateDTO{
		Email:     "ada@example.com",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "secret",
	})
	assert.ErrorIs(t, err, sentinel.ErrDuplicate)
}

func TestUpdateRequiresOwnership(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")
	registered(t, f, "eve@example.com")

	_, err := f.svc.Update("eve@example.com", ada.ID, mapper.UserUpdateDTO{
		FirstName: nullable.Of("Hacked"),
	})
	assert.ErrorIs(t, err, sentinel.ErrForbidden)

	got, err := f.svc.Get(ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestUpdateByOwner(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")

	u, err := f.svc.Update("ada@example.com", ada.ID, mapper.UserUpdateDTO{
		FirstName: nullable.Of("Augusta"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", u.FirstName)
}

func TestOwnershipIsCaseSensitive(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")

	_, err := f.svc.Update("Ada@Example.com", ada.ID, mapper.UserUpdateDTO{
		FirstName: nullable.Of("Augusta"),
	})
	assert.ErrorIs(t, err, sentinel.ErrForbidden)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")

	assert.ErrorIs(t, f.svc.Delete("eve@example.com", ada.ID), sentinel.ErrForbidden)
	assert.ErrorIs(t, f.svc.Delete("", ada.ID), sentinel.ErrForbidden)
}

func TestDeleteBlockedWhileAssigned(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")

	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	require.NoError(t, f.statuses.Create(st))
	require.NoError(t, f.tasks.Create(&entity.Task{
		Title: "t", StatusID: st.ID, AssigneeID: &ada.ID,
	}))

	err := f.svc.Delete("ada@example.com", ada.ID)
	assert.ErrorIs(t, err, sentinel.ErrResourceInUse)

	_, err = f.svc.Get(ada.ID)
	assert.NoError(t, err)
}

func TestDeleteByOwner(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")

	require.NoError(t, f.svc.Delete("ada@example.com", ada.ID))
	_, err := f.svc.Get(ada.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestMayMutate(t *testing.T) {
	f := newUserFixture()
	ada := registered(t, f, "ada@example.com")

	ok, err := f.svc.MayMutate("ada@example.com", ada.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.MayMutate("eve@example.com", ada.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.MayMutate("ada@example.com", 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

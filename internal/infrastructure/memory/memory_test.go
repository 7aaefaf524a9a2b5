package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	"taskboard/pkg/sentinel"
)

func TestUserStoreUniqueEmail(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Create(&entity.User{Email: "a@example.com", PasswordHash: "x"}))
	assert.ErrorIs(t, s.Create(&entity.User{Email: "a@example.com", PasswordHash: "y"}), sentinel.ErrDuplicate)

	other := &entity.User{Email: "b@example.com", PasswordHash: "y"}
	require.NoError(t, s.Create(other))
	other.Email = "a@example.com"
	assert.ErrorIs(t, s.Update(other), sentinel.ErrDuplicate)
}

func TestUserStoreReadsReturnCopies(t *testing.T) {
	s := NewUserStore()
	u := &entity.User{Email: "a@example.com", FirstName: "Ada", PasswordHash: "x"}
	require.NoError(t, s.Create(u))

	got, err := s.FindByID(u.ID)
	require.NoError(t, err)
	got.FirstName = "Mutated"

	again, err := s.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.FirstName)
}

func TestUserStoreFindAllOrderedByID(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Create(&entity.User{Email: "a@example.com"}))
	require.NoError(t, s.Create(&entity.User{Email: "b@example.com"}))
	require.NoError(t, s.Create(&entity.User{Email: "c@example.com"}))

	all, err := s.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestStatusStoreUniqueSlugAndLookup(t *testing.T) {
	s := NewTaskStatusStore()
	require.NoError(t, s.Create(&entity.TaskStatus{Name: "Draft", Slug: "draft"}))
	assert.ErrorIs(t, s.Create(&entity.TaskStatus{Name: "Other", Slug: "draft"}), sentinel.ErrDuplicate)

	st, err := s.FindBySlug("draft")
	require.NoError(t, err)
	assert.Equal(t, "Draft", st.Name)

	_, err = s.FindBySlug("ghost")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestLabelStoreFindByIDInSkipsMissing(t *testing.T) {
	s := NewLabelStore()
	bug := &entity.Label{Name: "bug"}
	require.NoError(t, s.Create(bug))

	got, err := s.FindByIDIn([]int64{bug.ID, 404})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bug", got[0].Name)

	empty, err := s.FindByIDIn(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskStoreRefreshesSlugOnRead(t *testing.T) {
	statuses := NewTaskStatusStore()
	tasks := NewTaskStore(statuses)

	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	require.NoError(t, statuses.Create(st))
	task := &entity.Task{Title: "t", StatusID: st.ID, StatusSlug: "draft"}
	require.NoError(t, tasks.Create(task))

	st.Slug = "drafting"
	require.NoError(t, statuses.Update(st))

	got, err := tasks.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "drafting", got.StatusSlug)
}

func TestTaskStoreExistsQueries(t *testing.T) {
	statuses := NewTaskStatusStore()
	tasks := NewTaskStore(statuses)

	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	require.NoError(t, statuses.Create(st))
	assignee := int64(7)
	require.NoError(t, tasks.Create(&entity.Task{
		Title: "t", StatusID: st.ID, AssigneeID: &assignee, LabelIDs: []int64{3},
	}))

	ok, err := tasks.ExistsByAssigneeID(7)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = tasks.ExistsByAssigneeID(8)
	assert.False(t, ok)

	ok, _ = tasks.ExistsByStatusID(st.ID)
	assert.True(t, ok)
	ok, _ = tasks.ExistsByStatusID(99)
	assert.False(t, ok)

	ok, _ = tasks.ExistsByLabelID(3)
	assert.True(t, ok)
	ok, _ = tasks.ExistsByLabelID(4)
	assert.False(t, ok)
}

func TestTaskStoreUpdateKeepsCreatedAt(t *testing.T) {
	statuses := NewTaskStatusStore()
	tasks := NewTaskStore(statuses)
	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	require.NoError(t, statuses.Create(st))

	task := &entity.Task{Title: "t", StatusID: st.ID}
	require.NoError(t, tasks.Create(task))
	created := task.CreatedAt

	task.Title = "t2"
	require.NoError(t, tasks.Update(task))
	got, err := tasks.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Title)
	assert.Equal(t, created, got.CreatedAt)
}

func TestTaskStoreCloneIsolation(t *testing.T) {
	statuses := NewTaskStatusStore()
	tasks := NewTaskStore(statuses)
	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	require.NoError(t, statuses.Create(st))

	task := &entity.Task{Title: "t", StatusID: st.ID, LabelIDs: []int64{1, 2}}
	require.NoError(t, tasks.Create(task))

	got, err := tasks.FindByID(task.ID)
	require.NoError(t, err)
	got.LabelIDs[0] = 99

	again, err := tasks.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, again.LabelIDs)
}

func TestDeleteUnknownIsNotFound(t *testing.T) {
	assert.ErrorIs(t, NewUserStore().Delete(1), sentinel.ErrNotFound)
	assert.ErrorIs(t, NewTaskStatusStore().Delete(1), sentinel.ErrNotFound)
	assert.ErrorIs(t, NewLabelStore().Delete(1), sentinel.ErrNotFound)
	assert.ErrorIs(t, NewTaskStore(nil).Delete(1), sentinel.ErrNotFound)
}

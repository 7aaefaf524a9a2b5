// Package memory provides mutex-guarded map implementations of the
// repository contracts. They mirror the postgres constraints (unique email,
// slug, and label name; reference-existence queries) so services and tests
// behave identically against either backend.
package memory

import (
	"sort"
	"sync"
	"time"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/pkg/sentinel"
)

type UserStore struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]entity.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]entity.User)}
}

func (s *UserStore) Create(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return sentinel.ErrDuplicate
		}
	}
	s.seq++
	u.ID = s.seq
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) FindByID(id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *UserStore) FindByEmail(email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *UserStore) FindAll() ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *UserStore) Update(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.users[u.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	for id, existing := range s.users {
		if id != u.ID && existing.Email == u.Email {
			return sentinel.ErrDuplicate
		}
	}
	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type TaskStatusStore struct {
	mu       sync.RWMutex
	seq      int64
	statuses map[int64]entity.TaskStatus
}

func NewTaskStatusStore() *TaskStatusStore {
	return &TaskStatusStore{statuses: make(map[int64]entity.TaskStatus)}
}

func (s *TaskStatusStore) Create(status *entity.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.statuses {
		if existing.Slug == status.Slug {
			return sentinel.ErrDuplicate
		}
	}
	s.seq++
	status.ID = s.seq
	now := time.Now()
	status.CreatedAt = now
	status.UpdatedAt = now
	s.statuses[status.ID] = *status
	return nil
}

func (s *TaskStatusStore) FindByID(id int64) (*entity.TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.statuses[id]; ok {
		cp := st
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *TaskStatusStore) FindBySlug(slug string) (*entity.TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.statuses {
		if st.Slug == slug {
			cp := st
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *TaskStatusStore) FindAll() ([]*entity.TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.TaskStatus, 0, len(s.statuses))
	for _, st := range s.statuses {
		cp := st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *TaskStatusStore) Update(status *entity.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.statuses[status.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	for id, existing := range s.statuses {
		if id != status.ID && existing.Slug == status.Slug {
			return sentinel.ErrDuplicate
		}
	}
	status.CreatedAt = current.CreatedAt
	status.UpdatedAt = time.Now()
	s.statuses[status.ID] = *status
	return nil
}

func (s *TaskStatusStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.statuses[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.statuses, id)
	return nil
}

type LabelStore struct {
	mu     sync.RWMutex
	seq    int64
	labels map[int64]entity.Label
}

func NewLabelStore() *LabelStore {
	return &LabelStore{labels: make(map[int64]entity.Label)}
}

func (s *LabelStore) Create(l *entity.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.labels {
		if existing.Name == l.Name {
			return sentinel.ErrDuplicate
		}
	}
	s.seq++
	l.ID = s.seq
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	s.labels[l.ID] = *l
	return nil
}

func (s *LabelStore) FindByID(id int64) (*entity.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.labels[id]; ok {
		cp := l
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByIDIn returns only the labels that exist; missing ids are not an error.
func (s *LabelStore) FindByIDIn(ids []int64) ([]*entity.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Label, 0, len(ids))
	for _, id := range ids {
		if l, ok := s.labels[id]; ok {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *LabelStore) FindAll() ([]*entity.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Label, 0, len(s.labels))
	for _, l := range s.labels {
		cp := l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *LabelStore) Update(l *entity.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.labels[l.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	for id, existing := range s.labels {
		if id != l.ID && existing.Name == l.Name {
			return sentinel.ErrDuplicate
		}
	}
	l.CreatedAt = current.CreatedAt
	l.UpdatedAt = time.Now()
	s.labels[l.ID] = *l
	return nil
}

func (s *LabelStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.labels[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.labels, id)
	return nil
}

// TaskStore keeps the status slug fresh by resolving it from the status store
// on every read, the same way the postgres repository joins task_statuses.
type TaskStore struct {
	mu       sync.RWMutex
	seq      int64
	tasks    map[int64]entity.Task
	statuses *TaskStatusStore
}

func NewTaskStore(statuses *TaskStatusStore) *TaskStore {
	return &TaskStore{tasks: make(map[int64]entity.Task), statuses: statuses}
}

func (s *TaskStore) Create(t *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t.ID = s.seq
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tasks[t.ID] = cloneTask(*t)
	return nil
}

func (s *TaskStore) FindByID(id int64) (*entity.Task, error) {
	s.mu.RLock()
	t, ok := s.tasks[id]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := cloneTask(t)
	s.refreshSlug(&cp)
	return &cp, nil
}

func (s *TaskStore) FindAll() ([]*entity.Task, error) {
	s.mu.RLock()
	out := make([]*entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		cp := cloneTask(t)
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for _, t := range out {
		s.refreshSlug(t)
	}
	return out, nil
}

func (s *TaskStore) Update(t *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.tasks[t.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	t.CreatedAt = current.CreatedAt
	t.UpdatedAt = time.Now()
	s.tasks[t.ID] = cloneTask(*t)
	return nil
}

func (s *TaskStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *TaskStore) ExistsByAssigneeID(userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.AssigneeID != nil && *t.AssigneeID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *TaskStore) ExistsByStatusID(statusID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.StatusID == statusID {
			return true, nil
		}
	}
	return false, nil
}

func (s *TaskStore) ExistsByLabelID(labelID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		for _, id := range t.LabelIDs {
			if id == labelID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *TaskStore) refreshSlug(t *entity.Task) {
	if s.statuses == nil {
		return
	}
	if st, err := s.statuses.FindByID(t.StatusID); err == nil {
		t.StatusSlug = st.Slug
	}
}

var (
	_ repository.UserRepository       = (*UserStore)(nil)
	_ repository.TaskStatusRepository = (*TaskStatusStore)(nil)
	_ repository.LabelRepository      = (*LabelStore)(nil)
	_ repository.TaskRepository       = (*TaskStore)(nil)
)

func cloneTask(t entity.Task) entity.Task {
	if t.Index != nil {
		v := *t.Index
		t.Index = &v
	}
	if t.AssigneeID != nil {
		v := *t.AssigneeID
		t.AssigneeID = &v
	}
	if t.LabelIDs != nil {
		t.LabelIDs = append([]int64(nil), t.LabelIDs...)
	}
	return t
}

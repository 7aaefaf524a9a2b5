package mapper

import (
	"errors"
	"fmt"
	"sort"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/pkg/sentinel"
)

// TaskMapper converts task payloads to entities and back, resolving the
// cross-entity references: status slug, assignee id, label id set. It needs
// read access to the referenced stores but never writes.
type TaskMapper struct {
	Statuses repository.TaskStatusRepository
	Labels   repository.LabelRepository
	Users    repository.UserRepository
}

func NewTaskMapper(statuses repository.TaskStatusRepository, labels repository.LabelRepository, users repository.UserRepository) *TaskMapper {
	return &TaskMapper{Statuses: statuses, Labels: labels, Users: users}
}

// FromCreate validates the payload and resolves every reference. A status
// slug or assignee id that does not resolve fails the call; unresolved label
// ids are silently dropped (the set is narrowed to the labels that exist).
func (m *TaskMapper) FromCreate(dto TaskCreateDTO) (*entity.Task, error) {
	verr := sentinel.NewValidationError()
	if len(dto.Title) < 1 {
		verr.Add("title", "is required")
	}
	if dto.Status == "" {
		verr.Add("status", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	status, err := m.resolveStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	if dto.AssigneeID != nil {
		if err := m.resolveAssignee(*dto.AssigneeID); err != nil {
			return nil, err
		}
	}
	labelIDs, err := m.ResolveLabels(dto.TaskLabelIDs)
	if err != nil {
		return nil, err
	}

	return &entity.Task{
		Index:       dto.Index,
		AssigneeID:  dto.AssigneeID,
		Title:       dto.Title,
		Description: dto.Content,
		StatusID:    status.ID,
		StatusSlug:  status.Slug,
		LabelIDs:    labelIDs,
	}, nil
}

// ApplyUpdate merges present fields into t. All validation and reference
// resolution happens before the first assignment, so a failing payload leaves
// t untouched. Index, assignee, and content accept an explicit null (clear);
// title and status do not.
func (m *TaskMapper) ApplyUpdate(dto TaskUpdateDTO, t *entity.Task) error {
	verr := sentinel.NewValidationError()
	if dto.Title.Present && (!dto.Title.Valid || len(dto.Title.Value) < 1) {
		verr.Add("title", "must not be empty")
	}
	if dto.Status.Present && (!dto.Status.Valid || dto.Status.Value == "") {
		verr.Add("status", "must not be null")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	var status *entity.TaskStatus
	if dto.Status.Present {
		s, err := m.resolveStatus(dto.Status.Value)
		if err != nil {
			return err
		}
		status = s
	}
	if dto.AssigneeID.Present && dto.AssigneeID.Valid {
		if err := m.resolveAssignee(dto.AssigneeID.Value); err != nil {
			return err
		}
	}
	var labelIDs []int64
	if dto.TaskLabelIDs.Present {
		ids, err := m.ResolveLabels(dto.TaskLabelIDs.Value)
		if err != nil {
			return err
		}
		labelIDs = ids
	}

	if dto.Index.Present {
		if dto.Index.Valid {
			v := dto.Index.Value
			t.Index = &v
		} else {
			t.Index = nil
		}
	}
	if dto.AssigneeID.Present {
		if dto.AssigneeID.Valid {
			v := dto.AssigneeID.Value
			t.AssigneeID = &v
		} else {
			t.AssigneeID = nil
		}
	}
	if dto.Title.Present {
		t.Title = dto.Title.Value
	}
	if dto.Content.Present {
		if dto.Content.Valid {
			t.Description = dto.Content.Value
		} else {
			t.Description = ""
		}
	}
	if status != nil {
		t.StatusID = status.ID
		t.StatusSlug = status.Slug
	}
	if dto.TaskLabelIDs.Present {
		t.LabelIDs = labelIDs
	}
	return nil
}

func (m *TaskMapper) ToDTO(t *entity.Task) TaskDTO {
	ids := t.LabelIDs
	if ids == nil {
		ids = []int64{}
	}
	return TaskDTO{
		ID:           t.ID,
		Index:        t.Index,
		AssigneeID:   t.AssigneeID,
		Title:        t.Title,
		Content:      t.Description,
		Status:       t.StatusSlug,
		TaskLabelIDs: ids,
		CreatedAt:    Date(t.CreatedAt),
	}
}

func (m *TaskMapper) resolveStatus(slug string) (*entity.TaskStatus, error) {
	status, err := m.Statuses.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, fmt.Errorf("task status with slug %q: %w", slug, sentinel.ErrReferenceNotFound)
		}
		return nil, err
	}
	return status, nil
}

func (m *TaskMapper) resolveAssignee(id int64) error {
	if _, err := m.Users.FindByID(id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return fmt.Errorf("assignee %d: %w", id, sentinel.ErrReferenceNotFound)
		}
		return err
	}
	return nil
}

// ResolveLabels narrows ids to the labels that exist. Ids that resolve to
// nothing are dropped without error, matching the repository-side lookup the
// API has always exposed. The result is deduplicated and sorted.
func (m *TaskMapper) ResolveLabels(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	labels, err := m.Labels.FindByIDIn(ids)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(labels))
	out := make([]int64, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

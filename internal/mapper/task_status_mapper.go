package mapper

import (
	"taskboard/internal/domain/entity"
	"taskboard/pkg/sentinel"
)

// StatusFromCreate validates and builds a TaskStatus.
func StatusFromCreate(dto TaskStatusCreateDTO) (*entity.TaskStatus, error) {
	verr := sentinel.NewValidationError()
	if len(dto.Name) < 1 {
		verr.Add("name", "is required")
	}
	if len(dto.Slug) < 1 {
		verr.Add("slug", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.TaskStatus{Name: dto.Name, Slug: dto.Slug}, nil
}

// ApplyStatusUpdate merges present fields into s. Name and slug are required
// fields, so present-null or present-empty is rejected and nothing is merged.
func ApplyStatusUpdate(dto TaskStatusUpdateDTO, s *entity.TaskStatus) error {
	verr := sentinel.NewValidationError()
	if dto.Name.Present && (!dto.Name.Valid || len(dto.Name.Value) < 1) {
		verr.Add("name", "must not be empty")
	}
	if dto.Slug.Present && (!dto.Slug.Valid || len(dto.Slug.Value) < 1) {
		verr.Add("slug", "must not be empty")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if dto.Name.Present {
		s.Name = dto.Name.Value
	}
	if dto.Slug.Present {
		s.Slug = dto.Slug.Value
	}
	return nil
}

func StatusToDTO(s *entity.TaskStatus) TaskStatusDTO {
	return TaskStatusDTO{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		CreatedAt: Date(s.CreatedAt),
	}
}

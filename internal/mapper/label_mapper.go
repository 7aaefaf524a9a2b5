package mapper

import (
	"taskboard/internal/domain/entity"
	"taskboard/pkg/sentinel"
)

// LabelFromCreate validates and builds a Label.
func LabelFromCreate(dto LabelCreateDTO) (*entity.Label, error) {
	if err := checkLabelName(dto.Name); err != nil {
		return nil, err
	}
	return &entity.Label{Name: dto.Name}, nil
}

// ApplyLabelUpdate merges a present name into l. Name is required, so
// present-null is rejected.
func ApplyLabelUpdate(dto LabelUpdateDTO, l *entity.Label) error {
	if !dto.Name.Present {
		return nil
	}
	if !dto.Name.Valid {
		verr := sentinel.NewValidationError()
		verr.Add("name", "must not be null")
		return verr
	}
	if err := checkLabelName(dto.Name.Value); err != nil {
		return err
	}
	l.Name = dto.Name.Value
	return nil
}

func LabelToDTO(l *entity.Label) LabelDTO {
	return LabelDTO{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: Date(l.CreatedAt),
	}
}

func checkLabelName(name string) error {
	if len(name) < 3 || len(name) > 1000 {
		verr := sentinel.NewValidationError()
		verr.Add("name", "must be between 3 and 1000 characters long")
		return verr
	}
	return nil
}

package mapper

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"taskboard/internal/domain/entity"
	"taskboard/pkg/helpers"
	"taskboard/pkg/sentinel"
)

var validate = validator.New()

// UserFromCreate validates the payload and builds a User with the password
// hashed exactly once. No persistence happens here.
func UserFromCreate(dto UserCreateDTO) (*entity.User, error) {
	verr := sentinel.NewValidationError()
	checkEmail(verr, dto.Email)
	checkNonBlank(verr, "firstName", dto.FirstName)
	checkNonBlank(verr, "lastName", dto.LastName)
	checkPassword(verr, dto.Password)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := helpers.HashPassword(dto.Password)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		Email:        dto.Email,
		PasswordHash: hash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
	}, nil
}

// ApplyUserUpdate merges present fields into u. Every present field is
// validated before anything is assigned, so a failing payload leaves u
// untouched. A present password is hashed before overwrite; none of the user
// fields accept an explicit null.
func ApplyUserUpdate(dto UserUpdateDTO, u *entity.User) error {
	verr := sentinel.NewValidationError()
	if dto.Email.Present {
		if !dto.Email.Valid {
			verr.Add("email", "must not be null")
		} else {
			checkEmail(verr, dto.Email.Value)
		}
	}
	if dto.FirstName.Present {
		if !dto.FirstName.Valid {
			verr.Add("firstName", "must not be null")
		} else {
			checkNonBlank(verr, "firstName", dto.FirstName.Value)
		}
	}
	if dto.LastName.Present {
		if !dto.LastName.Valid {
			verr.Add("lastName", "must not be null")
		} else {
			checkNonBlank(verr, "lastName", dto.LastName.Value)
		}
	}
	var hash string
	if dto.Password.Present {
		if !dto.Password.Valid {
			verr.Add("password", "must not be null")
		} else {
			checkPassword(verr, dto.Password.Value)
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	if dto.Password.Present {
		h, err := helpers.HashPassword(dto.Password.Value)
		if err != nil {
			return err
		}
		hash = h
	}

	if dto.Email.Present {
		u.Email = dto.Email.Value
	}
	if dto.FirstName.Present {
		u.FirstName = dto.FirstName.Value
	}
	if dto.LastName.Present {
		u.LastName = dto.LastName.Value
	}
	if dto.Password.Present {
		u.PasswordHash = hash
	}
	return nil
}

// UserToDTO projects a user to its read model; the password hash is dropped.
func UserToDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: Date(u.CreatedAt),
	}
}

func checkEmail(verr *sentinel.ValidationError, email string) {
	if email == "" {
		verr.Add("email", "is required")
		return
	}
	if validate.Var(email, "email") != nil {
		verr.Add("email", "must be a valid email")
	}
}

func checkNonBlank(verr *sentinel.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, "is required")
	}
}

func checkPassword(verr *sentinel.ValidationError, password string) {
	if len(password) < 3 {
		verr.Add("password", "must be at least 3 characters long")
	}
}

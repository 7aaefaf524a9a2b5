package mapper

import (
	"time"

	"taskboard/pkg/nullable"
)

// Wire representations. Create DTOs carry gin binding tags so malformed
// payloads are rejected at the transport edge; the mappers re-check the same
// constraints so the core holds even when invoked outside HTTP (seed, tests).
// Update DTOs use nullable.Field: absent leaves the entity field unchanged,
// present overwrites, present-null clears where the model allows it.

// Date serializes as yyyy-MM-dd, the format the read models expose.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(data))
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

type UserCreateDTO struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required,pwd"`
}

type UserUpdateDTO struct {
	Email     nullable.Field[string] `json:"email"`
	FirstName nullable.Field[string] `json:"firstName"`
	LastName  nullable.Field[string] `json:"lastName"`
	Password  nullable.Field[string] `json:"password"`
}

// UserDTO never carries the password in any form.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt Date   `json:"createdAt"`
}

type TaskStatusCreateDTO struct {
	Name string `json:"name" binding:"required,min=1"`
	Slug string `json:"slug" binding:"required,min=1"`
}

type TaskStatusUpdateDTO struct {
	Name nullable.Field[string] `json:"name"`
	Slug nullable.Field[string] `json:"slug"`
}

type TaskStatusDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt Date   `json:"createdAt"`
}

type LabelCreateDTO struct {
	Name string `json:"name" binding:"required,min=3,max=1000"`
}

type LabelUpdateDTO struct {
	Name nullable.Field[string] `json:"name"`
}

type LabelDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt Date   `json:"createdAt"`
}

type TaskCreateDTO struct {
	Index        *int    `json:"index"`
	AssigneeID   *int64  `json:"assignee_id"`
	Title        string  `json:"title" binding:"required,min=1"`
	Content      string  `json:"content"`
	Status       string  `json:"status" binding:"required"`
	TaskLabelIDs []int64 `json:"taskLabelIds"`
}

type TaskUpdateDTO struct {
	Index        nullable.Field[int]     `json:"index"`
	AssigneeID   nullable.Field[int64]   `json:"assignee_id"`
	Title        nullable.Field[string]  `json:"title"`
	Content      nullable.Field[string]  `json:"content"`
	Status       nullable.Field[string]  `json:"status"`
	TaskLabelIDs nullable.Field[[]int64] `json:"taskLabelIds"`
}

// TaskDTO projects references as external identifiers: the status by slug,
// the assignee by id, labels by id set.
type TaskDTO struct {
	ID           int64   `json:"id"`
	Index        *int    `json:"index"`
	AssigneeID   *int64  `json:"assignee_id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Status       string  `json:"status"`
	TaskLabelIDs []int64 `json:"taskLabelIds"`
	CreatedAt    Date    `json:"createdAt"`
}

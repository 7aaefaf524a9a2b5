package nullable

import (
	"bytes"
	"encoding/json"
)

// Field distinguishes the three states a partial-update payload field can be
// in: absent from the JSON body, present with a value, or present with an
// explicit null. A plain pointer cannot tell the last two apart, and some
// fields (task assignee, index, description) must support a null overwrite
// that is different from omission.
//
// The zero value is the absent state, so update DTOs need no constructor.
type Field[T any] struct {
	Present bool
	Valid   bool // false when the payload carried an explicit null
	Value   T
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Present: true, Valid: true, Value: v}
}

// Null returns a present field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

var nullLiteral = []byte("null")

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(data, nullLiteral) {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return nullLiteral, nil
	}
	return json.Marshal(f.Value)
}

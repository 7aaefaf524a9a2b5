package sentinel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared by repositories, mappers, and services. Stores return
// these (optionally wrapped) so the service layer can translate them into HTTP
// outcomes without knowing which backend produced them.
var (
	// ErrNotFound: the operation's target entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound: a payload referenced another entity (status slug,
	// assignee id) that does not exist.
	ErrReferenceNotFound = errors.New("referenced resource not found")
	// ErrDuplicate: a uniqueness constraint (email, slug, label name) was hit.
	ErrDuplicate = errors.New("duplicate value")
	// ErrResourceInUse: delete refused because another entity still references
	// the target.
	ErrResourceInUse = errors.New("resource is in use")
	// ErrForbidden: the ownership policy denied the mutation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials: login failed; deliberately indistinguishable
	// between unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries per-field messages for payloads that fail a declared
// constraint. It is a hard rejection: no partial merge is applied.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns nil when no field failed, so callers can
// `return sentinel-style` without checking Empty themselves.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

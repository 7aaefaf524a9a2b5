package entity

import "time"

// TaskStatus is a workflow column. Slug is the stable external identifier
// used by task payloads; the numeric ID stays internal.
type TaskStatus struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

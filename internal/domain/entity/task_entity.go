package entity

import "time"

// Task references a mandatory status by ID, an optional assignee, and any
// number of labels. StatusSlug is kept alongside StatusID by the repositories
// (joined on read) so read models never need a second lookup.
//
// Index and AssigneeID are pointers because both can be cleared by an update;
// Description clears to the empty string.
type Task struct {
	ID          int64
	Index       *int
	AssigneeID  *int64
	Title       string
	Description string
	StatusID    int64
	StatusSlug  string
	LabelIDs    []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

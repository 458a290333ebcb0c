package model

import (
	"time"

	"github.com/nhle/gorev-takip/internal/datefmt"
)

// TaskPatch is a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title          *string
	Description    *string
	PersonFullName *string
	Status         *TaskStatus
	Priority       *Priority
	DateText       *string
	DueISO         *string
	Location       *string
	Team           *string
	Category       *Category
}

// Apply returns t with every set field of p written over it.
// The id is never patched.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.PersonFullName != nil {
		t.PersonFullName = *p.PersonFullName
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DateText != nil {
		t.DateText = *p.DateText
	}
	if p.DueISO != nil {
		t.DueISO = *p.DueISO
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Team != nil {
		t.Team = *p.Team
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}

// IsEmpty reports whether the patch sets no field.
func (p TaskPatch) IsEmpty() bool {
	return p == TaskPatch{}
}

// SetDueDate sets both DueISO and DateText from d so the two stay
// consistent.
func (p *TaskPatch) SetDueDate(d time.Time) {
	iso := datefmt.ToISODate(d)
	short := datefmt.FormatShortTR(d)
	p.DueISO = &iso
	p.DateText = &short
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}

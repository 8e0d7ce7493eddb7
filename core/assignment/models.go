package assignment

import (
	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Assignment is graded coursework scoped to a course. Availability and due
// dates are kept as the date strings clients submit.
type Assignment struct {
	ID            string  `json:"_id" bson:"_id,omitempty"`
	Title         string  `json:"title" bson:"title"`
	Description   string  `json:"description" bson:"description"`
	Points        float64 `json:"points" bson:"points"`
	AvailableFrom string  `json:"availableFrom" bson:"availableFrom"`
	DueDate       string  `json:"dueDate" bson:"dueDate"`
	Course        string  `json:"course" bson:"course"`
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	Points        float64 `json:"points" validate:"gte=0"`
	AvailableFrom string  `json:"availableFrom"`
	DueDate       string  `json:"dueDate"`
	Course        string  `json:"course" validate:"required"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	return core.Validate.Struct(na)
}

// UpdateAssignment defines what information may be provided to modify an
// existing Assignment. Zero-valued fields are left untouched.
type UpdateAssignment struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Points        float64 `json:"points" validate:"gte=0"`
	AvailableFrom string  `json:"availableFrom"`
	DueDate       string  `json:"dueDate"`
}

func (ua *UpdateAssignment) Validate() error {
	ua.Title = core.CleanString(ua.Title)
	return core.Validate.Struct(ua)
}

package enrollment

import (
	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Enrollment links a user to a course. Duplicate enrollments are allowed;
// unenrolling removes one link at a time.
type Enrollment struct {
	ID     string `json:"_id" bson:"_id,omitempty"`
	User   string `json:"user" bson:"user"`
	Course string `json:"course" bson:"course"`
}

// NewEnrollment contains information needed to enroll a user in a course.
type NewEnrollment struct {
	User   string `json:"user" validate:"required"`
	Course string `json:"course" validate:"required"`
}

func (ne *NewEnrollment) Validate() error {
	return core.Validate.Struct(ne)
}

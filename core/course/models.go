package course

import (
	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Course is a catalog entry that users enroll in. Modules and assignments
// hang off courses by id.
type Course struct {
	ID          string `json:"_id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Number      string `json:"number" bson:"number"`
	StartDate   string `json:"startDate" bson:"startDate"`
	EndDate     string `json:"endDate" bson:"endDate"`
	Department  string `json:"department" bson:"department"`
	Credits     int    `json:"credits" bson:"credits"`
	Description string `json:"description" bson:"description"`
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name        string `json:"name" validate:"required"`
	Number      string `json:"number"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Department  string `json:"department"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing
// Course. Zero-valued fields are left untouched.
type UpdateCourse struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Department  string `json:"department"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
}

// Lesson is a unit of content within a Module.
type Lesson struct {
	ID          string `json:"_id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Module groups lessons within a course.
type Module struct {
	ID          string   `json:"_id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Course      string   `json:"course" bson:"course"`
	Lessons     []Lesson `json:"lessons" bson:"lessons"`
}

// NewModule contains information needed to create a new Module.
type NewModule struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Course      string   `json:"course" validate:"required"`
	Lessons     []Lesson `json:"lessons"`
}

func (nm *NewModule) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	return core.Validate.Struct(nm)
}

// UpdateModule defines what information may be provided to modify an existing
// Module. Zero-valued fields are left untouched.
type UpdateModule struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

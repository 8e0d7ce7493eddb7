package answer

import (
	"time"

	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Answer is the collective student answer or the instructor answer to a Post.
// A post holds at most one of each; the store enforces this with a unique
// compound index on (post, isInstructorAnswer).
type Answer struct {
	ID                 string     `json:"_id" bson:"_id,omitempty"`
	Post               string     `json:"post" bson:"post"`
	Text               string     `json:"text" bson:"text"`
	Author             string     `json:"author" bson:"author"`
	Date               time.Time  `json:"date" bson:"date"`
	IsInstructorAnswer bool       `json:"isInstructorAnswer" bson:"isInstructorAnswer"`
	IsEdited           bool       `json:"isEdited" bson:"isEdited"`
	EditDate           *time.Time `json:"editDate,omitempty" bson:"editDate,omitempty"`
	EditBy             string     `json:"editBy,omitempty" bson:"editBy,omitempty"`
}

// NewAnswer contains information needed to create a new Answer.
type NewAnswer struct {
	Post               string `json:"post" validate:"required"`
	Text               string `json:"text" validate:"required"`
	Author             string `json:"author" validate:"required"`
	IsInstructorAnswer bool   `json:"isInstructorAnswer"`
}

func (na *NewAnswer) Validate() error {
	na.Text = core.CleanString(na.Text)
	return core.Validate.Struct(na)
}

// UpdateAnswer defines what information may be provided to modify an existing
// Answer. Edits are stamped with the editor and edit time.
type UpdateAnswer struct {
	Text   string `json:"text" validate:"required"`
	EditBy string `json:"editBy" validate:"required"`
}

func (ua *UpdateAnswer) Validate() error {
	ua.Text = core.CleanString(ua.Text)
	return core.Validate.Struct(ua)
}

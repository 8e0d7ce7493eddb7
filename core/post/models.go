package post

import (
	"time"

	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Post types
const (
	TypeQuestion = "question"
	TypeNote     = "note"
)

// Post audiences
const (
	ToCourse     = "course"
	ToIndividual = "individual"
)

// Post is a top-level question or note scoped to a course.
type Post struct {
	ID                   string    `json:"_id" bson:"_id,omitempty"`
	PostType             string    `json:"postType" bson:"postType"`
	PostTo               string    `json:"postTo" bson:"postTo"`
	Title                string    `json:"title" bson:"title"`
	Text                 string    `json:"text" bson:"text"`
	PostBy               string    `json:"postBy" bson:"postBy"`
	Date                 time.Time `json:"date" bson:"date"`
	Course               string    `json:"course" bson:"course"`
	Folders              []string  `json:"folders" bson:"folders"`
	IndividualRecipients []string  `json:"individualRecipients" bson:"individualRecipients"`
	ViewedBy             []string  `json:"viewedBy" bson:"viewedBy"`
	IsResolved           bool      `json:"isResolved" bson:"isResolved"`
	IsPinned             bool      `json:"isPinned" bson:"isPinned"`
	IsRead               bool      `json:"isRead" bson:"isRead"`
}

// NewPost contains information needed to create a new Post.
// Folders carries folder names; they are resolved to folder ids on create.
type NewPost struct {
	PostType             string   `json:"postType" validate:"omitempty,oneof=question note"`
	PostTo               string   `json:"postTo" validate:"omitempty,oneof=course individual"`
	Title                string   `json:"title" validate:"required"`
	Text                 string   `json:"text" validate:"required"`
	PostBy               string   `json:"postBy" validate:"required"`
	Course               string   `json:"course" validate:"required"`
	Folders              []string `json:"folders" validate:"required,min=1,dive,required"`
	IndividualRecipients []string `json:"individualRecipients"`
}

func (np *NewPost) Validate() error {
	np.Title = core.CleanString(np.Title)
	np.Text = core.CleanString(np.Text)
	if np.PostType == "" {
		np.PostType = TypeQuestion
	}
	if np.PostTo == "" {
		np.PostTo = ToCourse
	}

	if err := core.Validate.Struct(np); err != nil {
		return err
	}
	if np.PostTo == ToIndividual && len(np.IndividualRecipients) == 0 {
		return core.NewValidationError(nil, core.FieldError{
			Field: "individualRecipients",
			Error: "individual posts require at least one recipient",
		})
	}
	return nil
}

// UpdatePost defines what information may be provided to modify an existing Post.
// Zero-valued fields are left untouched.
type UpdatePost struct {
	PostType             string   `json:"postType" validate:"omitempty,oneof=question note"`
	PostTo               string   `json:"postTo" validate:"omitempty,oneof=course individual"`
	Title                string   `json:"title"`
	Text                 string   `json:"text"`
	Folders              []string `json:"folders"`
	IndividualRecipients []string `json:"individualRecipients"`
}

func (up *UpdatePost) Validate() error {
	up.Title = core.CleanString(up.Title)
	up.Text = core.CleanString(up.Text)
	return core.Validate.Struct(up)
}

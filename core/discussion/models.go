package discussion

import (
	"time"

	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Discussion is a follow-up thread under a Post. Top-level discussions have
// no parent; nested entries reference their parent discussion or reply.
type Discussion struct {
	ID               string     `json:"_id" bson:"_id,omitempty"`
	Post             string     `json:"post" bson:"post"`
	Text             string     `json:"text" bson:"text"`
	Author           string     `json:"author" bson:"author"`
	Date             time.Time  `json:"date" bson:"date"`
	IsResolved       bool       `json:"isResolved" bson:"isResolved"`
	IsEdited         bool       `json:"isEdited" bson:"isEdited"`
	EditDate         *time.Time `json:"editDate,omitempty" bson:"editDate,omitempty"`
	EditBy           string     `json:"editBy,omitempty" bson:"editBy,omitempty"`
	ParentDiscussion string     `json:"parentDiscussion,omitempty" bson:"parentDiscussion,omitempty"`
	ParentReply      string     `json:"parentReply,omitempty" bson:"parentReply,omitempty"`
}

// NewDiscussion contains information needed to create a new Discussion.
type NewDiscussion struct {
	Post             string `json:"post" validate:"required"`
	Text             string `json:"text" validate:"required"`
	Author           string `json:"author" validate:"required"`
	ParentDiscussion string `json:"parentDiscussion"`
	ParentReply      string `json:"parentReply"`
}

func (nd *NewDiscussion) Validate() error {
	nd.Text = core.CleanString(nd.Text)
	return core.Validate.Struct(nd)
}

// UpdateDiscussion defines what information may be provided to modify an
// existing Discussion.
type UpdateDiscussion struct {
	Text   string `json:"text" validate:"required"`
	EditBy string `json:"editBy" validate:"required"`
}

func (ud *UpdateDiscussion) Validate() error {
	ud.Text = core.CleanString(ud.Text)
	return core.Validate.Struct(ud)
}

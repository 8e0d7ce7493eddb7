package reply

import (
	"time"

	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Reply is a response within a Discussion thread. Nested replies reference
// their parent reply.
type Reply struct {
	ID          string     `json:"_id" bson:"_id,omitempty"`
	Discussion  string     `json:"discussion" bson:"discussion"`
	Text        string     `json:"text" bson:"text"`
	Author      string     `json:"author" bson:"author"`
	Date        time.Time  `json:"date" bson:"date"`
	IsEdited    bool       `json:"isEdited" bson:"isEdited"`
	EditDate    *time.Time `json:"editDate,omitempty" bson:"editDate,omitempty"`
	EditBy      string     `json:"editBy,omitempty" bson:"editBy,omitempty"`
	ParentReply string     `json:"parentReply,omitempty" bson:"parentReply,omitempty"`
}

// NewReply contains information needed to create a new Reply.
type NewReply struct {
	Discussion  string `json:"discussion" validate:"required"`
	Text        string `json:"text" validate:"required"`
	Author      string `json:"author" validate:"required"`
	ParentReply string `json:"parentReply"`
}

func (nr *NewReply) Validate() error {
	nr.Text = core.CleanString(nr.Text)
	return core.Validate.Struct(nr)
}

// UpdateReply defines what information may be provided to modify an existing Reply.
type UpdateReply struct {
	Text   string `json:"text" validate:"required"`
	EditBy string `json:"editBy" validate:"required"`
}

func (ur *UpdateReply) Validate() error {
	ur.Text = core.CleanString(ur.Text)
	return core.Validate.Struct(ur)
}

package folder

import (
	"github.com/killua-y/kanbas-fullstack-app/core"
)

// Folder is a named grouping of posts within a course. Folder names are
// unique per course; posts reference folders by id.
type Folder struct {
	ID     string `json:"_id" bson:"_id,omitempty"`
	Name   string `json:"name" bson:"name"`
	Author string `json:"author" bson:"author"`
	Course string `json:"course" bson:"course"`
	Post   string `json:"post,omitempty" bson:"post,omitempty"`
	EditBy string `json:"editBy,omitempty" bson:"editBy,omitempty"`
}

// NewFolder contains information needed to create a new Folder.
type NewFolder struct {
	Name   string `json:"name" validate:"required"`
	Author string `json:"author" validate:"required"`
	Course string `json:"course" validate:"required"`
	Post   string `json:"post"`
}

func (nf *NewFolder) Validate() error {
	nf.Name = core.CleanString(nf.Name)
	return core.Validate.Struct(nf)
}

// UpdateFolder defines what information may be provided to modify an existing Folder.
type UpdateFolder struct {
	Name   string `json:"name" validate:"required"`
	EditBy string `json:"editBy" validate:"required"`
}

func (uf *UpdateFolder) Validate() error {
	uf.Name = core.CleanString(uf.Name)
	return core.Validate.Struct(uf)
}

// Package inmemdb provides in-memory repository implementations used as
// test doubles in service and handler tests.
package inmemdb

import (
	"sync"

	"github.com/killua-y/kanbas-fullstack-app/core/answer"
	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/reply"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

type DB struct {
	mutex sync.RWMutex

	users       map[string]*user.User
	courses     map[string]*course.Course
	modules     map[string]*course.Module
	assignments map[string]*assignment.Assignment
	posts       map[string]*post.Post
	answers     map[string]*answer.Answer
	discussions map[string]*discussion.Discussion
	replies     map[string]*reply.Reply
	folders     map[string]*folder.Folder

	// insertion order matters for unenrollment
	enrollments []*enrollment.Enrollment
}

func NewDB() *DB {
	return &DB{
		users:       make(map[string]*user.User),
		courses:     make(map[string]*course.Course),
		modules:     make(map[string]*course.Module),
		assignments: make(map[string]*assignment.Assignment),
		posts:       make(map[string]*post.Post),
		answers:     make(map[string]*answer.Answer),
		discussions: make(map[string]*discussion.Discussion),
		replies:     make(map[string]*reply.Reply),
		folders:     make(map[string]*folder.Folder),
	}
}

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, pwd string,
	roles []string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Username:  uname,
		Email:     email,
		Roles:     roles,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(t *testing.T, repo course.Repository, name, number string) course.Course {
	t.Helper()
	crs, err := repo.CreateCourse(context.Background(), course.Course{Name: name, Number: number})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateFolder(t *testing.T, repo folder.Repository, name, authorID, courseID string) folder.Folder {
	t.Helper()
	f, err := repo.CreateFolder(context.Background(), folder.Folder{Name: name, Author: authorID, Course: courseID})
	if err != nil {
		t.Fatalf("CreateFolder() failed: %v", err)
	}
	return f
}

func CreatePost(t *testing.T, repo post.Repository, p post.Post, date ...time.Time) post.Post {
	t.Helper()
	p.Date = time.Now().UTC()
	if len(date) > 0 {
		p.Date = date[0].UTC()
	}
	if p.PostType == "" {
		p.PostType = "question"
	}
	if p.PostTo == "" {
		p.PostTo = "course"
	}
	p, err := repo.CreatePost(context.Background(), p)
	if err != nil {
		t.Fatalf("CreatePost() failed: %v", err)
	}
	return p
}

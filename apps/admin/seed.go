package main

import (
	"context"
	"time"

	"github.com/killua-y/kanbas-fullstack-app/core/answer"
	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/mongo"
)

const seedPassword = "kanbas123"

// seed loads a small demo dataset: a few users, a course with a module and
// an assignment, enrollments, folders and an answered post. Existing data
// is left untouched; running seed twice duplicates courses and posts.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	courseRepo := mongorepos.NewCourseRepository(cli.db)
	moduleRepo := mongorepos.NewModuleRepository(cli.db)
	assignmentRepo := mongorepos.NewAssignmentRepository(cli.db)
	enrollmentRepo := mongorepos.NewEnrollmentRepository(cli.db)
	folderRepo := mongorepos.NewFolderRepository(cli.db)
	postRepo := mongorepos.NewPostRepository(cli.db)
	answerRepo := mongorepos.NewAnswerRepository(cli.db)

	seedUser := func(name, uname, email string, roles []string) (user.User, error) {
		usr := user.User{
			Name:     name,
			Username: uname,
			Email:    email,
			IsActive: true,
			Roles:    roles,
		}
		if err := usr.SetPassword(seedPassword); err != nil {
			return user.User{}, err
		}
		return cli.usrRepo.UpdateOrCreateUser(ctx, usr)
	}

	prof, err := seedUser("Ada Lovelace", "ada_prof", "ada@kanbas.test", user.TeacherRoles)
	if err != nil {
		return err
	}
	alice, err := seedUser("Alice Wonder", "alice1", "alice@kanbas.test", user.StudentRoles)
	if err != nil {
		return err
	}
	bob, err := seedUser("Bob Builder", "bob123", "bob@kanbas.test", user.StudentRoles)
	if err != nil {
		return err
	}

	crs, err := courseRepo.CreateCourse(ctx, course.Course{
		Name:        "Web Development",
		Number:      "CS5610",
		StartDate:   "2026-01-10",
		EndDate:     "2026-05-15",
		Department:  "Computer Science",
		Credits:     4,
		Description: "Full stack web development with Go and React.",
	})
	if err != nil {
		return err
	}

	if _, err = moduleRepo.CreateModule(ctx, course.Module{
		Name:        "Week 1 - Introduction",
		Description: "Course overview and tooling",
		Course:      crs.ID,
		Lessons: []course.Lesson{
			{Name: "Syllabus", Description: "What we will cover"},
			{Name: "Environment setup", Description: "Editors, Git and the toolchain"},
		},
	}); err != nil {
		return err
	}

	if _, err = assignmentRepo.CreateAssignment(ctx, assignment.Assignment{
		Title:         "A1 - HTML & CSS",
		Description:   "Build a static landing page.",
		Points:        100,
		AvailableFrom: "2026-01-12",
		DueDate:       "2026-01-26",
		Course:        crs.ID,
	}); err != nil {
		return err
	}

	for _, usr := range []user.User{prof, alice, bob} {
		if _, err = enrollmentRepo.CreateEnrollment(ctx, enrollment.Enrollment{User: usr.ID, Course: crs.ID}); err != nil {
			return err
		}
	}

	hw1, err := folderRepo.CreateFolder(ctx, folder.Folder{Name: "hw1", Author: prof.ID, Course: crs.ID})
	if err != nil {
		return err
	}
	if _, err = folderRepo.CreateFolder(ctx, folder.Folder{Name: "logistics", Author: prof.ID, Course: crs.ID}); err != nil {
		return err
	}

	now := time.Now().UTC()
	q1, err := postRepo.CreatePost(ctx, post.Post{
		PostType: "question",
		PostTo:   "course",
		Title:    "Q1 due date",
		Text:     "Is hw1 due Friday or Sunday?",
		PostBy:   alice.ID,
		Date:     now,
		Course:   crs.ID,
		Folders:  []string{hw1.ID},
	})
	if err != nil {
		return err
	}

	if _, err = answerRepo.CreateAnswer(ctx, answer.Answer{
		Post:               q1.ID,
		Text:               "Sunday at midnight.",
		Author:             prof.ID,
		Date:               now,
		IsInstructorAnswer: true,
	}); err != nil {
		return err
	}
	if _, err = postRepo.SetResolved(ctx, q1.ID, true); err != nil {
		return err
	}

	logger.Printf("seeded course %s with %d users", crs.Name, 3)
	return nil
}

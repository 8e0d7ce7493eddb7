package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
	"github.com/killua-y/kanbas-fullstack-app/services/email"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/inmem"
	"github.com/killua-y/kanbas-fullstack-app/tests"
)

func setup(t *testing.T) (*course.Service, *enrollment.Service, *inmemdb.DB) {
	t.Helper()
	db := inmemdb.NewDB()
	enrollSvc := enrollment.NewService(inmemdb.NewEnrollmentRepository(db))
	usrSvc := user.NewService(inmemdb.NewUserRepository(db), emailsvc.NewConsoleServiceMock())
	svc := course.NewService(
		inmemdb.NewCourseRepository(db),
		inmemdb.NewModuleRepository(db),
		enrollSvc,
		usrSvc,
	)
	return svc, enrollSvc, db
}

func TestService_People(t *testing.T) {
	svc, enrollSvc, db := setup(t)
	ctx := context.Background()
	usrRepo := inmemdb.NewUserRepository(db)

	crs := testutil.CreateCourse(t, inmemdb.NewCourseRepository(db), "Web Dev", "CS5610")
	alice := testutil.CreateUser(t, usrRepo, "Alice", "alice1", "alice@test.cd", "", user.StudentRoles, true)
	bob := testutil.CreateUser(t, usrRepo, "Bob", "bob123", "bob@test.cd", "", user.StudentRoles, true)

	// alice enrolled twice, bob once, plus a dangling enrollment
	for _, uid := range []string{alice.ID, alice.ID, bob.ID, "ghost"} {
		if _, err := enrollSvc.Enroll(ctx, uid, crs.ID); err != nil {
			t.Fatalf("Enroll() failed: %v", err)
		}
	}

	people, err := svc.People(ctx, crs.ID)
	assert.NoError(t, err)

	ids := make([]string, 0, len(people))
	for _, usr := range people {
		ids = append(ids, usr.ID)
	}
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, ids)
}

func TestService_Delete_leavesChildren(t *testing.T) {
	svc, enrollSvc, db := setup(t)
	ctx := context.Background()

	crs := testutil.CreateCourse(t, inmemdb.NewCourseRepository(db), "Web Dev", "CS5610")
	mod, err := svc.CreateModule(ctx, course.NewModule{Name: "Week 1", Course: crs.ID})
	assert.NoError(t, err)
	if _, err := enrollSvc.Enroll(ctx, "u1", crs.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	assert.NoError(t, svc.Delete(ctx, crs.ID))

	_, err = svc.Get(ctx, crs.ID)
	assert.Equal(t, course.ErrNotFound, err)

	// modules and enrollments survive the course
	got, err := svc.GetModule(ctx, mod.ID)
	assert.NoError(t, err)
	assert.Equal(t, crs.ID, got.Course)

	ee, err := enrollSvc.ByCourse(ctx, crs.ID)
	assert.NoError(t, err)
	assert.Len(t, ee, 1)
}

func TestService_Modules(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()

	crs := testutil.CreateCourse(t, inmemdb.NewCourseRepository(db), "Web Dev", "CS5610")

	mod, err := svc.CreateModule(ctx, course.NewModule{
		Name:    "Week 1",
		Course:  crs.ID,
		Lessons: []course.Lesson{{Name: "Syllabus"}},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, mod.ID)

	mods, err := svc.ModulesByCourse(ctx, crs.ID)
	assert.NoError(t, err)
	assert.Len(t, mods, 1)

	updated, err := svc.UpdateModule(ctx, mod.ID, course.UpdateModule{Name: "Week 1 - Intro"})
	assert.NoError(t, err)
	assert.Equal(t, "Week 1 - Intro", updated.Name)

	assert.NoError(t, svc.DeleteModule(ctx, mod.ID))
	_, err = svc.GetModule(ctx, mod.ID)
	assert.Equal(t, course.ErrModuleNotFound, err)
}

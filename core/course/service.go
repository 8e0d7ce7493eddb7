package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

var (
	// errors
	ErrNotFound       = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, c Course) (Course, error)
		GetCourse(ctx context.Context, id string) (Course, error)
		FindAllCourses(ctx context.Context) ([]Course, error)
		UpdateCourse(ctx context.Context, id string, uc UpdateCourse) (Course, error)
		DeleteCourse(ctx context.Context, id string) error
	}

	ModuleRepository interface {
		CreateModule(ctx context.Context, m Module) (Module, error)
		GetModule(ctx context.Context, id string) (Module, error)
		FindModulesByCourse(ctx context.Context, courseID string) ([]Module, error)
		UpdateModule(ctx context.Context, id string, um UpdateModule) (Module, error)
		DeleteModule(ctx context.Context, id string) error
	}

	Service struct {
		repo        Repository
		modRepo     ModuleRepository
		enrollments *enrollment.Service
		users       *user.Service
	}
)

func NewService(repo Repository, modRepo ModuleRepository, enrollments *enrollment.Service, users *user.Service) *Service {
	return &Service{repo: repo, modRepo: modRepo, enrollments: enrollments, users: users}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	c := Course{
		Name:        nc.Name,
		Number:      nc.Number,
		StartDate:   nc.StartDate,
		EndDate:     nc.EndDate,
		Department:  nc.Department,
		Credits:     nc.Credits,
		Description: nc.Description,
	}
	return svc.repo.CreateCourse(ctx, c)
}

func (svc *Service) Get(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourse(ctx, id)
}

func (svc *Service) All(ctx context.Context) ([]Course, error) {
	return svc.repo.FindAllCourses(ctx)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCourse) (Course, error) {
	return svc.repo.UpdateCourse(ctx, id, uc)
}

// Delete removes the course only. Modules, assignments, folders, posts and
// enrollments referencing it are left in place.
func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteCourse(ctx, id)
}

// People returns the users enrolled in the course. Duplicate enrollments
// yield a single entry; dangling enrollments are skipped.
func (svc *Service) People(ctx context.Context, courseID string) ([]user.User, error) {
	ee, err := svc.enrollments.ByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "listing enrollments")
	}

	seen := make(map[string]bool, len(ee))
	usrs := make([]user.User, 0, len(ee))
	for _, e := range ee {
		if seen[e.User] {
			continue
		}
		seen[e.User] = true

		usr, err := svc.users.GetByID(ctx, e.User)
		switch errors.Cause(err) {
		case nil:
			usrs = append(usrs, usr)
		case user.ErrNotFound:
		default:
			return nil, err
		}
	}
	return usrs, nil
}

// Modules

func (svc *Service) CreateModule(ctx context.Context, nm NewModule) (Module, error) {
	m := Module{
		Name:        nm.Name,
		Description: nm.Description,
		Course:      nm.Course,
		Lessons:     nm.Lessons,
	}
	return svc.modRepo.CreateModule(ctx, m)
}

func (svc *Service) GetModule(ctx context.Context, id string) (Module, error) {
	return svc.modRepo.GetModule(ctx, id)
}

func (svc *Service) ModulesByCourse(ctx context.Context, courseID string) ([]Module, error) {
	return svc.modRepo.FindModulesByCourse(ctx, courseID)
}

func (svc *Service) UpdateModule(ctx context.Context, id string, um UpdateModule) (Module, error) {
	return svc.modRepo.UpdateModule(ctx, id, um)
}

func (svc *Service) DeleteModule(ctx context.Context, id string) error {
	return svc.modRepo.DeleteModule(ctx, id)
}

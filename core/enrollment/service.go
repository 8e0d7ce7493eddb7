package enrollment

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("enrollment not found")

type (
	Repository interface {
		CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error)
		// DeleteEnrollmentByUserCourse removes one matching enrollment;
		// ErrNotFound when none match.
		DeleteEnrollmentByUserCourse(ctx context.Context, userID, courseID string) (Enrollment, error)
		FindAllEnrollments(ctx context.Context) ([]Enrollment, error)
		FindEnrollmentsByUser(ctx context.Context, userID string) ([]Enrollment, error)
		FindEnrollmentsByCourse(ctx context.Context, courseID string) ([]Enrollment, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Enroll(ctx context.Context, userID, courseID string) (Enrollment, error) {
	return svc.repo.CreateEnrollment(ctx, Enrollment{User: userID, Course: courseID})
}

func (svc *Service) Unenroll(ctx context.Context, userID, courseID string) (Enrollment, error) {
	return svc.repo.DeleteEnrollmentByUserCourse(ctx, userID, courseID)
}

func (svc *Service) All(ctx context.Context) ([]Enrollment, error) {
	return svc.repo.FindAllEnrollments(ctx)
}

func (svc *Service) ByUser(ctx context.Context, userID string) ([]Enrollment, error) {
	return svc.repo.FindEnrollmentsByUser(ctx, userID)
}

func (svc *Service) ByCourse(ctx context.Context, courseID string) ([]Enrollment, error) {
	return svc.repo.FindEnrollmentsByCourse(ctx, courseID)
}

// IsEnrolled reports whether userID has at least one enrollment in courseID.
func (svc *Service) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	ee, err := svc.repo.FindEnrollmentsByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, e := range ee {
		if e.Course == courseID {
			return true, nil
		}
	}
	return false, nil
}

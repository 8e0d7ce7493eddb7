package assignment

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
		GetAssignment(ctx context.Context, id string) (Assignment, error)
		FindAssignmentsByCourse(ctx context.Context, courseID string) ([]Assignment, error)
		UpdateAssignment(ctx context.Context, id string, ua UpdateAssignment) (Assignment, error)
		DeleteAssignment(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	a := Assignment{
		Title:         na.Title,
		Description:   na.Description,
		Points:        na.Points,
		AvailableFrom: na.AvailableFrom,
		DueDate:       na.DueDate,
		Course:        na.Course,
	}
	return svc.repo.CreateAssignment(ctx, a)
}

func (svc *Service) Get(ctx context.Context, id string) (Assignment, error) {
	return svc.repo.GetAssignment(ctx, id)
}

func (svc *Service) ByCourse(ctx context.Context, courseID string) ([]Assignment, error) {
	return svc.repo.FindAssignmentsByCourse(ctx, courseID)
}

func (svc *Service) Update(ctx context.Context, id string, ua UpdateAssignment) (Assignment, error) {
	return svc.repo.UpdateAssignment(ctx, id, ua)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteAssignment(ctx, id)
}

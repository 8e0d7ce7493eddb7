package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(_ context.Context, c course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	repo.db.courses[c.ID] = &c
	return c, nil
}

func (repo *courseRepository) GetCourse(_ context.Context, id string) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.courses[id]; ok {
		return *c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FindAllCourses(_ context.Context) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		courses = append(courses, *c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Name < courses[j].Name })
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(_ context.Context, id string, uc course.UpdateCourse) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	c, ok := repo.db.courses[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	if uc.Name != "" {
		c.Name = uc.Name
	}
	if uc.Number != "" {
		c.Number = uc.Number
	}
	if uc.StartDate != "" {
		c.StartDate = uc.StartDate
	}
	if uc.EndDate != "" {
		c.EndDate = uc.EndDate
	}
	if uc.Department != "" {
		c.Department = uc.Department
	}
	if uc.Credits != 0 {
		c.Credits = uc.Credits
	}
	if uc.Description != "" {
		c.Description = uc.Description
	}
	return *c, nil
}

func (repo *courseRepository) DeleteCourse(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[id]; !ok {
		return course.ErrNotFound
	}
	delete(repo.db.courses, id)
	return nil
}

type moduleRepository struct {
	db *DB
}

var _ course.ModuleRepository = (*moduleRepository)(nil) // interface compliance check

func NewModuleRepository(db *DB) *moduleRepository {
	return &moduleRepository{db: db}
}

func (repo *moduleRepository) CreateModule(_ context.Context, m course.Module) (course.Module, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	repo.db.modules[m.ID] = &m
	return m, nil
}

func (repo *moduleRepository) GetModule(_ context.Context, id string) (course.Module, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if m, ok := repo.db.modules[id]; ok {
		return *m, nil
	}
	return course.Module{}, course.ErrModuleNotFound
}

func (repo *moduleRepository) FindModulesByCourse(_ context.Context, courseID string) ([]course.Module, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	modules := make([]course.Module, 0)
	for _, m := range repo.db.modules {
		if m.Course == courseID {
			modules = append(modules, *m)
		}
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	return modules, nil
}

func (repo *moduleRepository) UpdateModule(_ context.Context, id string, um course.UpdateModule) (course.Module, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	m, ok := repo.db.modules[id]
	if !ok {
		return course.Module{}, course.ErrModuleNotFound
	}
	if um.Name != "" {
		m.Name = um.Name
	}
	if um.Description != "" {
		m.Description = um.Description
	}
	if um.Lessons != nil {
		m.Lessons = um.Lessons
	}
	return *m, nil
}

func (repo *moduleRepository) DeleteModule(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.modules[id]; !ok {
		return course.ErrModuleNotFound
	}
	delete(repo.db.modules, id)
	return nil
}

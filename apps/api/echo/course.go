package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
	"github.com/killua-y/kanbas-fullstack-app/core/course"
)

type courseApi struct {
	svc           *course.Service
	assignmentSvc *assignment.Service
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *course.Service, assignmentSvc *assignment.Service) {
	api := courseApi{svc: svc, assignmentSvc: assignmentSvc}

	cg := g.Group("/courses", jwt)
	cg.POST("", api.create, facultyMiddleware())
	cg.GET("", api.query)
	cg.GET("/:courseId", api.retrieve)
	cg.PUT("/:courseId", api.update, facultyMiddleware())
	cg.DELETE("/:courseId", api.destroy, facultyMiddleware())

	cg.GET("/:courseId/people", api.people)

	cg.POST("/:courseId/modules", api.createModule, facultyMiddleware())
	cg.GET("/:courseId/modules", api.queryModules)

	cg.POST("/:courseId/assignments", api.createAssignment, facultyMiddleware())
	cg.GET("/:courseId/assignments", api.queryAssignments)

	mg := g.Group("/modules", jwt)
	mg.GET("/:moduleId", api.retrieveModule)
	mg.PUT("/:moduleId", api.updateModule, facultyMiddleware())
	mg.DELETE("/:moduleId", api.destroyModule, facultyMiddleware())
}

// Handlers

func (api *courseApi) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	c, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	c, err := api.svc.Get(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseApi) update(ctx echo.Context) error {
	var data course.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}

	c, err := api.svc.Update(ctx.Request().Context(), ctx.Param("courseId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("courseId")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) people(ctx echo.Context) error {
	users, err := api.svc.People(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying course people")
	}
	return ctx.JSON(http.StatusOK, users)
}

// Modules

func (api *courseApi) createModule(ctx echo.Context) error {
	var data course.NewModule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewModule")
	}
	data.Course = ctx.Param("courseId")
	if err := data.Validate(); err != nil {
		return err
	}

	m, err := api.svc.CreateModule(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating module")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *courseApi) queryModules(ctx echo.Context) error {
	modules, err := api.svc.ModulesByCourse(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying modules")
	}
	return ctx.JSON(http.StatusOK, modules)
}

func (api *courseApi) retrieveModule(ctx echo.Context) error {
	m, err := api.svc.GetModule(ctx.Request().Context(), ctx.Param("moduleId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *courseApi) updateModule(ctx echo.Context) error {
	var data course.UpdateModule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateModule")
	}

	m, err := api.svc.UpdateModule(ctx.Request().Context(), ctx.Param("moduleId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *courseApi) destroyModule(ctx echo.Context) error {
	if err := api.svc.DeleteModule(ctx.Request().Context(), ctx.Param("moduleId")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Assignments (course-scoped)

func (api *courseApi) createAssignment(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	data.Course = ctx.Param("courseId")
	if err := data.Validate(); err != nil {
		return err
	}

	a, err := api.assignmentSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *courseApi) queryAssignments(ctx echo.Context) error {
	assignments, err := api.assignmentSvc.ByCourse(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, assignments)
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
)

type enrollmentApi struct {
	svc *enrollment.Service
}

func registerEnrollmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *enrollment.Service) {
	api := enrollmentApi{svc: svc}

	eg := g.Group("/enrollments", jwt)
	eg.GET("", api.query, adminMiddleware())
	eg.GET("/mine", api.queryMine)
	eg.GET("/course/:courseId", api.queryByCourse)
	eg.POST("/:courseId", api.enroll)
	eg.DELETE("/:courseId", api.unenroll)
}

// Handlers

// enroll enrolls the session user in a course. Enrolling twice creates a
// second record.
func (api *enrollmentApi) enroll(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if _, err := api.svc.Enroll(ctx.Request().Context(), claims.Subject, ctx.Param("courseId")); err != nil {
		return errors.Wrap(err, "enrolling user")
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

func (api *enrollmentApi) unenroll(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if _, err := api.svc.Unenroll(ctx.Request().Context(), claims.Subject, ctx.Param("courseId")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

func (api *enrollmentApi) query(ctx echo.Context) error {
	enrollments, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	return ctx.JSON(http.StatusOK, enrollments)
}

func (api *enrollmentApi) queryMine(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	enrollments, err := api.svc.ByUser(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	return ctx.JSON(http.StatusOK, enrollments)
}

func (api *enrollmentApi) queryByCourse(ctx echo.Context) error {
	enrollments, err := api.svc.ByCourse(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	return ctx.JSON(http.StatusOK, enrollments)
}

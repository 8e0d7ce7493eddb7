package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
)

type discussionApi struct {
	svc *discussion.Service
}

func registerDiscussionAPI(g *echo.Group, svc *discussion.Service) {
	api := discussionApi{svc: svc}

	dg := g.Group("/discussions")
	dg.POST("", api.create)
	dg.GET("/post/:postId", api.queryByPost)
	dg.GET("/nested/:discussionId", api.queryNested)
	dg.GET("/:discussionId", api.retrieve)
	dg.PUT("/:discussionId", api.update)
	dg.PUT("/:discussionId/resolved", api.toggleResolved)
	dg.DELETE("/:discussionId", api.destroy)
}

// Handlers

func (api *discussionApi) create(ctx echo.Context) error {
	var data discussion.NewDiscussion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDiscussion")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	d, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, d)
}

func (api *discussionApi) retrieve(ctx echo.Context) error {
	d, err := api.svc.Get(ctx.Request().Context(), ctx.Param("discussionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *discussionApi) queryByPost(ctx echo.Context) error {
	discussions, err := api.svc.ByPost(ctx.Request().Context(), ctx.Param("postId"))
	if err != nil {
		return errors.Wrap(err, "querying discussions")
	}
	return ctx.JSON(http.StatusOK, discussions)
}

func (api *discussionApi) queryNested(ctx echo.Context) error {
	discussions, err := api.svc.Nested(ctx.Request().Context(), ctx.Param("discussionId"))
	if err != nil {
		return errors.Wrap(err, "querying nested discussions")
	}
	return ctx.JSON(http.StatusOK, discussions)
}

func (api *discussionApi) update(ctx echo.Context) error {
	var data discussion.UpdateDiscussion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDiscussion")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	d, err := api.svc.Update(ctx.Request().Context(), ctx.Param("discussionId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *discussionApi) toggleResolved(ctx echo.Context) error {
	d, err := api.svc.ToggleResolved(ctx.Request().Context(), ctx.Param("discussionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *discussionApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("discussionId")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Discussion deleted successfully"})
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/reply"
)

type replyApi struct {
	svc *reply.Service
}

func registerReplyAPI(g *echo.Group, svc *reply.Service) {
	api := replyApi{svc: svc}

	rg := g.Group("/replies")
	rg.POST("", api.create)
	rg.GET("/discussion/:discussionId", api.queryByDiscussion)
	rg.GET("/parent/:replyId", api.queryByParent)
	rg.GET("/:replyId", api.retrieve)
	rg.PUT("/:replyId", api.update)
	rg.DELETE("/:replyId", api.destroy)
}

// Handlers

func (api *replyApi) create(ctx echo.Context) error {
	var data reply.NewReply
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReply")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	r, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *replyApi) retrieve(ctx echo.Context) error {
	r, err := api.svc.Get(ctx.Request().Context(), ctx.Param("replyId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *replyApi) queryByDiscussion(ctx echo.Context) error {
	replies, err := api.svc.ByDiscussion(ctx.Request().Context(), ctx.Param("discussionId"))
	if err != nil {
		return errors.Wrap(err, "querying replies")
	}
	return ctx.JSON(http.StatusOK, replies)
}

func (api *replyApi) queryByParent(ctx echo.Context) error {
	replies, err := api.svc.ByParent(ctx.Request().Context(), ctx.Param("replyId"))
	if err != nil {
		return errors.Wrap(err, "querying nested replies")
	}
	return ctx.JSON(http.StatusOK, replies)
}

func (api *replyApi) update(ctx echo.Context) error {
	var data reply.UpdateReply
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateReply")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	r, err := api.svc.Update(ctx.Request().Context(), ctx.Param("replyId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *replyApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("replyId")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Reply deleted successfully"})
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/answer"
)

type answerApi struct {
	svc *answer.Service
}

func registerAnswerAPI(g *echo.Group, svc *answer.Service) {
	api := answerApi{svc: svc}

	ag := g.Group("/answers")
	ag.POST("", api.create)
	ag.GET("/post/:postId", api.queryByPost)
	ag.GET("/:answerId", api.retrieve)
	ag.PUT("/:answerId", api.update)
	ag.DELETE("/:answerId", api.destroy)
}

// Handlers

func (api *answerApi) create(ctx echo.Context) error {
	var data answer.NewAnswer
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnswer")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ans, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ans)
}

func (api *answerApi) retrieve(ctx echo.Context) error {
	ans, err := api.svc.Get(ctx.Request().Context(), ctx.Param("answerId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ans)
}

func (api *answerApi) queryByPost(ctx echo.Context) error {
	answers, err := api.svc.ByPost(ctx.Request().Context(), ctx.Param("postId"))
	if err != nil {
		return errors.Wrap(err, "querying answers")
	}
	return ctx.JSON(http.StatusOK, answers)
}

func (api *answerApi) update(ctx echo.Context) error {
	var data answer.UpdateAnswer
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAnswer")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ans, err := api.svc.Update(ctx.Request().Context(), ctx.Param("answerId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ans)
}

func (api *answerApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("answerId")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Answer deleted successfully"})
}

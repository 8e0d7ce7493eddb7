package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
)

var errUserIDRequired = echo.NewHTTPError(http.StatusBadRequest, "userId query parameter is required")

type postApi struct {
	svc *post.Service
}

func registerPostAPI(g *echo.Group, svc *post.Service) {
	api := postApi{svc: svc}

	pg := g.Group("/posts")
	pg.POST("", api.create)
	pg.GET("/course/:courseId", api.queryByCourse)
	pg.GET("/folder/:folderId", api.queryByFolder)
	pg.GET("/user/:userId", api.queryByUser)
	pg.GET("/visible/:userId/:courseId", api.queryVisibleToUser)
	pg.GET("/:postId", api.retrieve)
	pg.PUT("/:postId", api.update)
	pg.DELETE("/:postId", api.destroy)
	pg.PUT("/:postId/read", api.markRead)
	pg.PUT("/:postId/resolved", api.toggleResolved)
	pg.PUT("/:postId/pinned", api.togglePinned)
}

// Handlers

func (api *postApi) create(ctx echo.Context) error {
	var data post.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, p)
}

// retrieve fetches a post and records the requesting user as a viewer.
func (api *postApi) retrieve(ctx echo.Context) error {
	userID := core.CleanString(ctx.QueryParam("userId"))
	if userID == "" {
		return errUserIDRequired
	}

	p, err := api.svc.View(ctx.Request().Context(), ctx.Param("postId"), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *postApi) queryByCourse(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	posts, err := api.svc.ByCourse(rctx, ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}

	// optional search expression; see ParseFolders and ParseKeywords
	if search := ctx.QueryParam("search"); search != "" {
		if posts, err = api.svc.Search(rctx, posts, search); err != nil {
			return errors.Wrap(err, "searching posts")
		}
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *postApi) queryByFolder(ctx echo.Context) error {
	posts, err := api.svc.ByFolder(ctx.Request().Context(), ctx.Param("folderId"))
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *postApi) queryByUser(ctx echo.Context) error {
	posts, err := api.svc.ByUser(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *postApi) queryVisibleToUser(ctx echo.Context) error {
	posts, err := api.svc.VisibleToUser(ctx.Request().Context(), ctx.Param("userId"), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *postApi) update(ctx echo.Context) error {
	var data post.UpdatePost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePost")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Update(ctx.Request().Context(), ctx.Param("postId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *postApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("postId")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

func (api *postApi) markRead(ctx echo.Context) error {
	p, err := api.svc.MarkRead(ctx.Request().Context(), ctx.Param("postId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *postApi) toggleResolved(ctx echo.Context) error {
	p, err := api.svc.ToggleResolved(ctx.Request().Context(), ctx.Param("postId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *postApi) togglePinned(ctx echo.Context) error {
	p, err := api.svc.TogglePinned(ctx.Request().Context(), ctx.Param("postId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

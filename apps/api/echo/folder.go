package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core/folder"
)

type folderApi struct {
	svc *folder.Service
}

func registerFolderAPI(g *echo.Group, svc *folder.Service) {
	api := folderApi{svc: svc}

	fg := g.Group("/folders")
	fg.POST("", api.create)
	fg.GET("", api.query)
	fg.GET("/course/:courseId", api.queryByCourse)
	fg.GET("/post/:postId", api.queryByPost)
	fg.GET("/author/:authorId", api.queryByAuthor)
	fg.GET("/:folderId", api.retrieve)
	fg.PUT("/:folderId", api.update)
	fg.DELETE("/:folderId", api.destroy)
}

// Handlers

func (api *folderApi) create(ctx echo.Context) error {
	var data folder.NewFolder
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFolder")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	f, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating folder")
	}
	return ctx.JSON(http.StatusCreated, f)
}

func (api *folderApi) retrieve(ctx echo.Context) error {
	f, err := api.svc.Get(ctx.Request().Context(), ctx.Param("folderId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *folderApi) query(ctx echo.Context) error {
	folders, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying folders")
	}
	return ctx.JSON(http.StatusOK, folders)
}

func (api *folderApi) queryByCourse(ctx echo.Context) error {
	folders, err := api.svc.ByCourse(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "querying folders")
	}
	return ctx.JSON(http.StatusOK, folders)
}

func (api *folderApi) queryByPost(ctx echo.Context) error {
	folders, err := api.svc.ByPost(ctx.Request().Context(), ctx.Param("postId"))
	if err != nil {
		return errors.Wrap(err, "querying folders")
	}
	return ctx.JSON(http.StatusOK, folders)
}

func (api *folderApi) queryByAuthor(ctx echo.Context) error {
	folders, err := api.svc.ByAuthor(ctx.Request().Context(), ctx.Param("authorId"))
	if err != nil {
		return errors.Wrap(err, "querying folders")
	}
	return ctx.JSON(http.StatusOK, folders)
}

func (api *folderApi) update(ctx echo.Context) error {
	var data folder.UpdateFolder
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFolder")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	f, err := api.svc.Update(ctx.Request().Context(), ctx.Param("folderId"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *folderApi) destroy(ctx echo.Context) error {
	// deleting a folder leaves posts referencing it untouched
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("folderId")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Folder deleted successfully"})
}

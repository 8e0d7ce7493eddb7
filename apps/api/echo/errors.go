package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/answer"
	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/reply"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	errAccountDeactivated   = echo.NewHTTPError(http.StatusForbidden, "account deactivated")
	errRefreshExpired       = echo.NewHTTPError(http.StatusForbidden, "refresh has expired")
	errHttpForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// isNotFoundErr reports whether err is one of the entity not-found sentinels.
func isNotFoundErr(err error) bool {
	switch err {
	case user.ErrNotFound,
		course.ErrNotFound,
		course.ErrModuleNotFound,
		assignment.ErrNotFound,
		enrollment.ErrNotFound,
		post.ErrNotFound,
		answer.ErrNotFound,
		discussion.ErrNotFound,
		reply.ErrNotFound,
		folder.ErrNotFound:
		return true
	}
	return false
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// Every error response is a JSON object with a "message" field.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := errors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				message = origErr.Message
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *core.PolicyError:
			code = http.StatusForbidden
			message = origErr.Error()
		default:
			switch {
			case isNotFoundErr(cause):
				code = http.StatusNotFound
				message = cause.Error()
			case cause == answer.ErrAnswerExists:
				code = http.StatusBadRequest
				message = cause.Error()
			default: // any other error is a server error
				code = http.StatusInternalServerError
				message = cause.Error()

				var usr user.User
				if claims, cErr := getContextClaims(ctx); cErr == nil {
					usr.ID = claims.Subject
					usr.Username = claims.Username
					usr.Email = claims.Email
				}
				if logger != nil {
					logger.Error(http.StatusText(code), err, usr)
				}

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, echo.Map{"message": message})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

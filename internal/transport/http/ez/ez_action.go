// Package ez registers gin routes whose handlers return domain results.
// Binding failures and results are turned into responses in one place.
package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"user-service/internal/domain"
	resp "user-service/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // handler reads c.Param itself
)

// Action answers 200 with its value on success.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Handler func(c *gin.Context, in *I) domain.ResultOf[O]
}

// Command answers 204 on success.
type Command[I any] struct {
	Method  string
	Path    string
	Binder  Binder
	Handler func(c *gin.Context, in *I) domain.Result
}

func RegisterAction[I any, O any](g gin.IRoutes, a Action[I, O]) {
	handle(g, a.Method, a.Path, func(c *gin.Context) {
		var in I
		if !bind(c, a.Binder, &in) {
			return
		}
		resp.Value(c, a.Handler(c, &in))
	})
}

func RegisterCommand[I any](g gin.IRoutes, a Command[I]) {
	handle(g, a.Method, a.Path, func(c *gin.Context) {
		var in I
		if !bind(c, a.Binder, &in) {
			return
		}
		resp.Result(c, a.Handler(c, &in))
	})
}

// ParamID parses a uuid path parameter.
func ParamID(c *gin.Context, name string) (uuid.UUID, *domain.Error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domain.ErrRequestInvalidID
	}
	return id, nil
}

func bind(c *gin.Context, b Binder, in any) bool {
	var err error
	var failure *domain.Error
	switch b {
	case BindJSON:
		err = c.ShouldBindJSON(in)
		failure = domain.ErrRequestMalformedBody
	case BindQuery:
		err = c.ShouldBindQuery(in)
		failure = domain.ErrRequestMalformedQuery
	}
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		resp.Abort(c, http.StatusRequestEntityTooLarge, resp.CodeBodyTooLarge, "Request body is too large.")
		return false
	}
	_ = c.Error(err) // surfaces in the access log
	resp.Fail(c, failure)
	return false
}

func handle(g gin.IRoutes, method, path string, h gin.HandlerFunc) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		g.GET(path, h)
	case http.MethodPut:
		g.PUT(path, h)
	case http.MethodDelete:
		g.DELETE(path, h)
	case http.MethodPatch:
		g.PATCH(path, h)
	default:
		g.POST(path, h)
	}
}

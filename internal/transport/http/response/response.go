package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-service/internal/domain"
)

const ContentTypeProblem = "application/problem+json"

// Problem is an RFC 7807 body with the catalog code and the request id.
type Problem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

func NewProblem(status int, code, detail string) Problem {
	title := http.StatusText(status)
	return Problem{
		Type:   strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Title:  title,
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

// Abort writes a problem and stops the handler chain.
func Abort(c *gin.Context, status int, code, detail string) {
	p := NewProblem(status, code, detail)
	p.TraceID = c.GetString(KeyRequestID)
	c.Header("Content-Type", ContentTypeProblem)
	c.AbortWithStatusJSON(status, p)
}

// Fail writes the problem for a catalog error.
func Fail(c *gin.Context, err *domain.Error) {
	Abort(c, StatusOf(err.Type()), err.Code(), err.Message())
}

// Result answers 204 on success.
func Result(c *gin.Context, r domain.Result) {
	if r.IsFailure() {
		Fail(c, r.Err())
		return
	}
	c.Status(http.StatusNoContent)
}

// Value answers 200 with the serialized value on success.
func Value[T any](c *gin.Context, r domain.ResultOf[T]) {
	if r.IsFailure() {
		Fail(c, r.Err())
		return
	}
	c.JSON(http.StatusOK, r.Value())
}

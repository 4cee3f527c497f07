package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

// ErrorBody is the JSON shape of every failure response.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// APIError is the single terminal error handler: it maps the failure
// taxonomy to a status code and JSON body. Store internals never reach the
// client outside gin debug mode.
func APIError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	if appErr.Kind == apperror.KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}

	message := appErr.Message
	if appErr.Kind == apperror.KindInternal && gin.Mode() != gin.DebugMode {
		message = "internal server error"
	}

	c.AbortWithStatusJSON(apperror.Status(appErr), ErrorBody{
		Code:    apperror.Code(appErr),
		Message: message,
		Errors:  appErr.Fields,
	})
}

// APISuccess writes a success payload, defaulting to 204 when there is no body.
func APISuccess(c *gin.Context, status int, body interface{}) {
	if body == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(status, body)
}

// BindJSON binds and validates a JSON body, converting gin's binding
// failures into the validation taxonomy with per-field messages.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindError(err)
	}
	return nil
}

// BindQuery does the same for query parameters.
func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = fieldMessage(fe)
		}
		return apperror.Validation("invalid request parameters", fields)
	}
	return apperror.Validation(err.Error(), nil)
}

func fieldName(fe validator.FieldError) string {
	// Struct fields carry json tags matching their API names; validator
	// reports the Go field name, so lower it the way the tags are written.
	return toSnake(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

func toSnake(s string) string {
	out := make([]rune, 0, len(s)+4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

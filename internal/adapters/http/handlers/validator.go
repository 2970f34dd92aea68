package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/Haleralex/ftwallet/internal/adapters/http/common"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupOnce sync.Once

// SetupValidator makes binding errors report json field names instead of Go
// struct fields.
func SetupValidator() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// BindJSON binds the JSON body. On failure it writes a flat 400 and returns
// false; the handler must return immediately.
func BindJSON[T any](c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		common.BadRequest(c, bindingMessage(err))
		return false
	}
	return true
}

// bindingMessage renders a validation failure as one human sentence.
func bindingMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Invalid request body: " + err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		parts = append(parts, fe.Field()+": "+validationMessage(fe))
	}
	return "Request validation failed: " + strings.Join(parts, "; ")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "value must be greater than " + fe.Param()
	default:
		return "invalid value"
	}
}

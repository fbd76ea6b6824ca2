package handler

import (
	"sync"

	"linkgate/internal/codegen"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the error API response
type ErrorResponse struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

var registerOnce sync.Once

// RegisterValidators installs the custom binding validators used by the
// request models. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn().Msg("Binding engine is not validator/v10, custom validators skipped")
			return
		}
		if err := v.RegisterValidation("shortcode", func(fl validator.FieldLevel) bool {
			return codegen.IsValid(fl.Field().String())
		}); err != nil {
			log.Error().Err(err).Msg("Failed to register shortcode validator")
		}
	})
}

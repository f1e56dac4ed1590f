package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/todoweb/internal/flash"
	"github.com/Kerhoff/todoweb/internal/validation"
)

// DescriptionKey is the gin context key holding the validated description
const DescriptionKey = "description"

// ValidateTodoRequest checks the posted description before the todo handler
// runs. Invalid input is reported through an error flash and the request is
// redirected home without reaching the store.
func ValidateTodoRequest(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, _ := c.GetPostFormArray(validation.DescriptionField)

		description, err := validation.DescriptionValues(values)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path,
				"error": err,
			}).Debug("Rejected todo request")

			message := "Input validation failed"
			if ve, ok := validation.AsValidationError(err); ok {
				message = ve.Message()
			}
			if ferr := flash.Error(c, message); ferr != nil {
				logger.WithError(ferr).Error("failed to store error message")
			}
			c.Redirect(http.StatusSeeOther, HomePath)
			c.Abort()
			return
		}

		c.Set(DescriptionKey, description)
		c.Next()
	}
}

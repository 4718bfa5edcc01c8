package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"wordgrid/internal/domain/geoerr"
	"wordgrid/internal/services"
)

// writeError maps an error to a status code and a {"detail": ...} body.
// Client mistakes get their own message back; anything unexpected becomes a
// generic 500 and is attached to the gin context for the request logger.
//
// Go Learning Note — errors.As:
// errors.As walks the %w chain looking for a value of the target's type, so
// a *geoerr.UnknownWordError wrapped by any layer still maps to 400.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *geoerr.ValidationError
		unknownErr    *geoerr.UnknownWordError
		rangeErr      *geoerr.OutOfRangeError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &unknownErr), errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrHistoryDisabled):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// writeBindError reports a request body that failed to parse or validate.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": bindDetail(err)})
}

func bindDetail(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "malformed request body: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be < %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

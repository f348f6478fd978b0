package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase"
	"sales_engine/pkg"

	"github.com/gin-gonic/gin"
)

const defaultTopN = 20

var (
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	errInvalidLimit   = pkg.NewDomainErrorSimple("INVALID_LIMIT", "n must be a positive integer", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
	errInvalidYear    = pkg.NewDomainErrorSimple("INVALID_YEAR", "year must be a four digit year", http.StatusBadRequest)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := entities.ParseID(c.Param("id"))
	if err != nil || id <= 0 {
		writeError(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// parseLimit reads ?n=, defaulting to 20.
func parseLimit(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("n"))
	if raw == "" {
		return defaultTopN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(c, errInvalidLimit)
		return 0, false
	}
	return n, true
}

func parseDateParam(c *gin.Context) (time.Time, bool) {
	d, err := entities.ParseTime(c.Param("date"))
	if err != nil {
		writeError(c, errInvalidDate)
		return time.Time{}, false
	}
	return d, true
}

func mapStatsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInsufficientSample):
		return pkg.NewDomainError("INSUFFICIENT_SAMPLE", "Not enough data to compute this statistic", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

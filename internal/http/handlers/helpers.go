package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/http/response"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
)

// Record dates arrive as plain "2006-01-02" strings; RFC 3339 is
// accepted too for clients that send full timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// respondServiceError maps the service sentinels onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

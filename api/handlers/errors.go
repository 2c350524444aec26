package handlers

import (
	"errors"
	matchservice "leaguedash/api/services/match"
	spectatorfetcher "leaguedash/fetcher/data/spectator"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/performance"
	"leaguedash/pkg/timeline"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError translates the known failure conditions to status codes.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

// statusFromError maps the service sentinels to HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, requests.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, matchservice.ErrPlayerNotFound),
		errors.Is(err, timeline.ErrParticipantNotFound),
		errors.Is(err, spectatorfetcher.ErrNotInGame):
		return http.StatusNotFound
	case errors.Is(err, performance.ErrInvalidGameDuration):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

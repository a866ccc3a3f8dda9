// Package api exposes the sonnet search engine over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/sonnetlab/sonnet-search-engine/internal/errors"
	"github.com/sonnetlab/sonnet-search-engine/services"
)

// defaultTopTerms bounds the term list returned by the stats endpoint.
const defaultTopTerms = 10

// API holds dependencies for API handlers, primarily the search service.
type API struct {
	service services.SearchService
}

// NewAPI creates a new API handler structure.
func NewAPI(service services.SearchService) *API {
	return &API{service: service}
}

// SetupRoutes defines all the API routes for the sonnet search engine.
func SetupRoutes(router *gin.Engine, service services.SearchService) {
	apiHandler := NewAPI(service)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/search", apiHandler.SearchHandler)
	router.GET("/stats", apiHandler.GetStatsHandler)

	sonnetRoutes := router.Group("/sonnets")
	{
		sonnetRoutes.GET("", apiHandler.ListSonnetsHandler)       // List all sonnets (titles + line counts)
		sonnetRoutes.GET("/:number", apiHandler.GetSonnetHandler) // Get one sonnet by 1-based number
	}

	router.GET("/settings", apiHandler.GetSettingsHandler)
}

// HealthCheckHandler reports service liveness and corpus size.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"sonnets": len(api.service.ListSonnets()),
	})
}

// SearchHandler evaluates a multi-term query.
// Query params: q (required), mode (optional, AND|OR, defaults to the
// configured search mode).
func (api *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	mode := c.Query("mode")

	if result := ValidateSearchParams(query, mode); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	queryResult, err := api.service.Query(query, services.QueryOptions{Mode: mode})
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrUnknownSearchMode), errors.Is(err, internalErrors.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
		default:
			SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, queryResult)
}

// ListSonnetsHandler returns a summary of every sonnet in corpus order.
func (api *API) ListSonnetsHandler(c *gin.Context) {
	summaries := api.service.ListSonnets()
	c.JSON(http.StatusOK, gin.H{
		"sonnets": summaries,
		"total":   len(summaries),
	})
}

// GetSonnetHandler returns one sonnet by its 1-based corpus position.
func (api *API) GetSonnetHandler(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "sonnet number must be an integer")
		return
	}

	sonnet, err := api.service.GetSonnet(number)
	if err != nil {
		if errors.Is(err, internalErrors.ErrSonnetNotFound) {
			SendError(c, http.StatusNotFound, ErrorCodeSonnetNotFound, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"number": number, "sonnet": sonnet})
}

// GetStatsHandler returns a snapshot of the collected query analytics.
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.Stats(defaultTopTerms))
}

// GetSettingsHandler returns the engine's current user settings.
func (api *API) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.Settings())
}

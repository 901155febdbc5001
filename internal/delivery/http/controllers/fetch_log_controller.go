package controllers

import (
	"log/slog"
	"net/http"

	"offerdirectory/internal/delivery/http/helpers"
	"offerdirectory/internal/domain"
)

type FetchLogController struct {
	Logger  *slog.Logger
	Service domain.FetchLogService
}

func NewFetchLogController(logger *slog.Logger, svc domain.FetchLogService) *FetchLogController {
	return &FetchLogController{Logger: logger, Service: svc}
}

// ListFetchesResponse is the data payload for GET /fetches (200).
type ListFetchesResponse struct {
	Items      []*domain.FetchAttempt `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListFetchesSuccessResponse is the success response envelope for GET /fetches (200).
type ListFetchesSuccessResponse struct {
	Data  ListFetchesResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListFetches godoc
// @Summary List recent offer list fetches
// @Description Returns the journaled upstream fetch attempts, newest first. Use page and page_size query params.
// @Tags fetches
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListFetchesSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /fetches [get]
func (c *FetchLogController) ListFetches(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListRecent(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if list == nil {
		list = []*domain.FetchAttempt{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListFetchesResponse{Items: list, Pagination: meta})
}

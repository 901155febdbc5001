package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"offerdirectory/internal/delivery/http/helpers"
	"offerdirectory/internal/domain"
	"offerdirectory/internal/usecase"
)

// ViewCookie names the cookie that ties a browser to its directory view.
const ViewCookie = "offer_view"

// ViewStore opens, looks up and closes directory views.
type ViewStore interface {
	Open(ctx context.Context) (uuid.UUID, *usecase.Directory, error)
	Get(id uuid.UUID) (*usecase.Directory, error)
	Close(id uuid.UUID) error
}

// PageRenderer renders a view state as an HTML document.
type PageRenderer interface {
	Render(w io.Writer, s domain.ViewState) error
}

// OfferRow is one row of the current page. Discount is 0 when the offer has none.
// swagger:model OfferRow
type OfferRow struct {
	Position int         `json:"position"`
	Name     string      `json:"name"`
	Discount json.Number `json:"discount" swaggertype:"number"`
}

// ViewPagination describes the 0-based client-side page of a view.
// rows_per_page is -1 when every row is shown on one page.
// swagger:model ViewPagination
type ViewPagination struct {
	Page               int   `json:"page"`
	RowsPerPage        int   `json:"rows_per_page"`
	Total              int   `json:"total"`
	TotalPages         int   `json:"total_pages"`
	RowsPerPageOptions []int `json:"rows_per_page_options"`
}

// ViewResponse is the JSON rendering of a directory view.
// swagger:model ViewResponse
type ViewResponse struct {
	ID         string            `json:"id"`
	Status     domain.LoadStatus `json:"status"`
	Failure    string            `json:"failure,omitempty"`
	Order      string            `json:"order"`
	Offers     []OfferRow        `json:"offers"`
	EmptyRows  int               `json:"empty_rows"`
	Pagination ViewPagination    `json:"pagination"`
}

// ViewSuccessResponse is the success envelope for view endpoints.
type ViewSuccessResponse struct {
	Data  ViewResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// NewViewResponse maps a view state to its JSON rendering. While the view is
// loading or failed no rows are listed.
func NewViewResponse(id uuid.UUID, s domain.ViewState) ViewResponse {
	w := s.Window()
	resp := ViewResponse{
		ID:        id.String(),
		Status:    s.Status(),
		Failure:   s.Failure(),
		Order:     string(s.Order()),
		Offers:    []OfferRow{},
		EmptyRows: w.EmptyRows(),
		Pagination: ViewPagination{
			Page:        w.Page,
			RowsPerPage: w.RowsPerPage,
			Total:       w.Total,
			TotalPages:  w.TotalPages(),
		},
	}
	for _, o := range domain.RowsPerPageOptions {
		resp.Pagination.RowsPerPageOptions = append(resp.Pagination.RowsPerPageOptions, o.Value)
	}
	if s.Status() != domain.StatusLoaded {
		resp.EmptyRows = 0
		return resp
	}
	start, _ := w.Bounds()
	for i, o := range s.VisibleOffers() {
		resp.Offers = append(resp.Offers, OfferRow{
			Position: start + i,
			Name:     o.Name,
			Discount: json.Number(o.DisplayDiscount()),
		})
	}
	return resp
}

// SelectOrderRequest is the request body for PUT /views/{viewID}/order.
type SelectOrderRequest struct {
	Order string `json:"order"`
}

// ChangePageRequest is the request body for PUT /views/{viewID}/page.
type ChangePageRequest struct {
	Page *int `json:"page"`
}

// Validate implements Validator.
func (c ChangePageRequest) Validate() []string {
	var errs []string
	if c.Page == nil {
		errs = append(errs, "page is required")
	} else if *c.Page < 0 {
		errs = append(errs, "page must be non-negative")
	}
	return errs
}

// RowsPerPageValue is a page-size control value. It decodes from a JSON string
// ("5", "All", "-1") or a JSON number (5, -1).
type RowsPerPageValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *RowsPerPageValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = RowsPerPageValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("rows_per_page must be a string or a number")
	}
	*v = RowsPerPageValue(n)
	return nil
}

// ChangeRowsPerPageRequest is the request body for PUT /views/{viewID}/rows-per-page.
// The value is 5, 10, 20, -1 or "All"; -1 and "All" both show every row.
type ChangeRowsPerPageRequest struct {
	RowsPerPage RowsPerPageValue `json:"rows_per_page" swaggertype:"string"`
}

// Validate implements Validator.
func (c ChangeRowsPerPageRequest) Validate() []string {
	if c.RowsPerPage == "" {
		return []string{"rows_per_page is required"}
	}
	return nil
}

type DirectoryController struct {
	Logger   *slog.Logger
	Views    ViewStore
	Renderer PageRenderer
	// SecureCookie marks the view cookie Secure (set when served over TLS).
	SecureCookie bool
	CookieMaxAge time.Duration
}

func NewDirectoryController(logger *slog.Logger, views ViewStore, renderer PageRenderer) *DirectoryController {
	return &DirectoryController{
		Logger:   logger,
		Views:    views,
		Renderer: renderer,
	}
}

// ShowDirectory renders the visitor's directory as HTML. Query parameters
// order, page and rows_per_page act as the table controls and are applied
// before rendering (rows_per_page first, since it resets the page).
func (c *DirectoryController) ShowDirectory(w http.ResponseWriter, r *http.Request) {
	controls, err := helpers.ParseViewControls(r)
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	dir, err := c.visitorView(w, r)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, "unable to open view", http.StatusInternalServerError)
		return
	}

	state, err := applyControls(dir, controls)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		// closed by the sweeper between lookup and use
		http.Error(w, "view expired, reload the page", http.StatusGone)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := c.Renderer.Render(w, state); err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func applyControls(dir *usecase.Directory, c helpers.ViewControls) (domain.ViewState, error) {
	if c.RowsPerPage != nil {
		if _, err := dir.ChangeRowsPerPage(*c.RowsPerPage); err != nil {
			return domain.ViewState{}, err
		}
	}
	if c.Page != nil {
		if _, err := dir.ChangePage(*c.Page); err != nil {
			return domain.ViewState{}, err
		}
	}
	if c.Order != nil {
		if _, err := dir.SelectOrder(*c.Order); err != nil {
			return domain.ViewState{}, err
		}
	}
	if dir.Closed() {
		return domain.ViewState{}, domain.ErrViewClosed
	}
	return dir.State(), nil
}

// visitorView returns the view named by the visitor's cookie, opening a new
// one (and setting the cookie) when there is none.
func (c *DirectoryController) visitorView(w http.ResponseWriter, r *http.Request) (*usecase.Directory, error) {
	if cookie, err := r.Cookie(ViewCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			if dir, err := c.Views.Get(id); err == nil {
				return dir, nil
			}
		}
	}
	id, dir, err := c.Views.Open(r.Context())
	if err != nil {
		return nil, err
	}
	cookie := &http.Cookie{
		Name:     ViewCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if c.CookieMaxAge > 0 {
		cookie.MaxAge = int(c.CookieMaxAge.Seconds())
	}
	http.SetCookie(w, cookie)
	return dir, nil
}

// OpenView godoc
// @Summary Open a directory view
// @Description Mounts a new view, which fetches the offer list once in the background. The view starts in status "loading".
// @Tags views
// @Produce json
// @Success 201 {object} controllers.ViewSuccessResponse "data contains the new view"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /views [post]
func (c *DirectoryController) OpenView(w http.ResponseWriter, r *http.Request) {
	id, dir, err := c.Views.Open(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, NewViewResponse(id, dir.State()))
}

// GetView godoc
// @Summary Get a directory view
// @Description Returns the view's status and the rows of its current page.
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [get]
func (c *DirectoryController) GetView(w http.ResponseWriter, r *http.Request) {
	id, dir, ok := c.lookup(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewViewResponse(id, dir.State()))
}

// SelectOrder godoc
// @Summary Reorder a view
// @Description Applies an ordering mode: A-Z, Z-A, discount-mayor (highest first) or discount-minor (lowest first). Any other value keeps the current order.
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Param body body SelectOrderRequest true "Ordering mode"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone"
// @Router /views/{viewID}/order [put]
func (c *DirectoryController) SelectOrder(w http.ResponseWriter, r *http.Request) {
	id, dir, ok := c.lookup(w, r)
	if !ok {
		return
	}
	var req SelectOrderRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	state, err := dir.SelectOrder(domain.ParseSortMode(req.Order))
	c.respond(w, r, id, state, err)
}

// ChangePage godoc
// @Summary Change the page of a view
// @Description Moves to a 0-based page. Pages past the end are accepted and contain no rows.
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Param body body ChangePageRequest true "Page index"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone"
// @Router /views/{viewID}/page [put]
func (c *DirectoryController) ChangePage(w http.ResponseWriter, r *http.Request) {
	id, dir, ok := c.lookup(w, r)
	if !ok {
		return
	}
	var req ChangePageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	state, err := dir.ChangePage(*req.Page)
	c.respond(w, r, id, state, err)
}

// ChangeRowsPerPage godoc
// @Summary Change the page size of a view
// @Description Sets rows per page to 5, 10, 20, or -1/"All" (all rows on one page) and returns to page 0.
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Param body body ChangeRowsPerPageRequest true "Rows per page"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone"
// @Router /views/{viewID}/rows-per-page [put]
func (c *DirectoryController) ChangeRowsPerPage(w http.ResponseWriter, r *http.Request) {
	id, dir, ok := c.lookup(w, r)
	if !ok {
		return
	}
	var req ChangeRowsPerPageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	state, err := dir.ChangeRowsPerPage(string(req.RowsPerPage))
	c.respond(w, r, id, state, err)
}

// CloseView godoc
// @Summary Close a directory view
// @Description Unmounts the view. An in-flight fetch is canceled and its result discarded.
// @Tags views
// @Param viewID path string true "View ID (UUID)"
// @Success 204 "view closed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [delete]
func (c *DirectoryController) CloseView(w http.ResponseWriter, r *http.Request) {
	id, ok := parseViewID(w, r)
	if !ok {
		return
	}
	if err := c.Views.Close(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseViewID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.PathValue("viewID")
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing viewID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid viewID")
		return uuid.Nil, false
	}
	return id, true
}

func (c *DirectoryController) lookup(w http.ResponseWriter, r *http.Request) (uuid.UUID, *usecase.Directory, bool) {
	id, ok := parseViewID(w, r)
	if !ok {
		return uuid.Nil, nil, false
	}
	dir, err := c.Views.Get(id)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view not found")
		return uuid.Nil, nil, false
	}
	return id, dir, true
}

func (c *DirectoryController) respond(w http.ResponseWriter, r *http.Request, id uuid.UUID, state domain.ViewState, err error) {
	switch {
	case err == nil:
		helpers.WriteJSONSuccess(w, http.StatusOK, NewViewResponse(id, state))
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrViewClosed):
		helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "view closed")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

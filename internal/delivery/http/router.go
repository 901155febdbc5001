package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"offerdirectory/internal/delivery/http/controllers"
	"offerdirectory/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// fetchLogController may be nil when no fetch journal is configured; gatherer
// may be nil to leave /metrics unregistered.
func NewRouter(directoryController *controllers.DirectoryController, fetchLogController *controllers.FetchLogController, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Page
	mux.HandleFunc("GET /{$}", directoryController.ShowDirectory)

	// Views
	mux.HandleFunc("POST /views", directoryController.OpenView)
	mux.HandleFunc("GET /views/{viewID}", directoryController.GetView)
	mux.HandleFunc("PUT /views/{viewID}/order", directoryController.SelectOrder)
	mux.HandleFunc("PUT /views/{viewID}/page", directoryController.ChangePage)
	mux.HandleFunc("PUT /views/{viewID}/rows-per-page", directoryController.ChangeRowsPerPage)
	mux.HandleFunc("DELETE /views/{viewID}", directoryController.CloseView)

	// Fetch journal
	if fetchLogController != nil {
		mux.HandleFunc("GET /fetches", fetchLogController.ListFetches)
	} else {
		mux.HandleFunc("GET /fetches", func(w http.ResponseWriter, r *http.Request) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "fetch journal is not configured")
		})
	}

	// Ops
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

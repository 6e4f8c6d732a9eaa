package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "codelens/internal/application/analysis"
	"codelens/internal/detect"
	domain "codelens/internal/domain/analysis"
	"codelens/internal/middleware"
)

type Router struct {
	analysisSvc *appanalysis.Service
}

// NewRouter wires the analyze API. checkers feed /health; allowedOrigins
// feeds CORS (the editor frontend runs on another port).
func NewRouter(analysisSvc *appanalysis.Service, allowedOrigins []string, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{analysisSvc: analysisSvc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Post("/analyze", r.wrap(r.handleAnalyze))
	mux.Get("/analyses", r.wrap(r.handleAnalysesList))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// httpError carries a status code with a user-facing detail message.
type httpError struct {
	status int
	detail string
}

func (e *httpError) Error() string { return e.detail }

func badRequest(detail string) error {
	return &httpError{status: http.StatusBadRequest, detail: detail}
}

// wrap converts handler errors into the JSON {detail} failure body the client
// gateway expects.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		status := http.StatusInternalServerError
		var he *httpError
		if errors.As(err, &he) {
			status = he.status
		} else if errors.Is(err, domain.ErrQuotaExceeded) {
			status = http.StatusTooManyRequests
		}
		writeDetail(w, status, err.Error())
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// POST /analyze
// Body: {"code": "...", "prompt": "...", "language": "..."}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body domain.Request
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body")
	}
	if body.Code == "" {
		return badRequest("code is required")
	}
	if body.Prompt == "" {
		return badRequest("prompt is required")
	}
	if body.Language == "" {
		return badRequest("language is required")
	}
	if !detect.Known(body.Language) {
		// unknown tags still get a generic prompt, log them for visibility
		log.Printf("analyze unknown language tag %q", body.Language)
	}

	middleware.IncrementAnalyses()
	suggestion, err := r.analysisSvc.Analyze(req.Context(), body)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(suggestion)
}

// GET /analyses?page=&page_size=
func (r *Router) handleAnalysesList(w http.ResponseWriter, req *http.Request) error {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))

	list, err := r.analysisSvc.History(req.Context(), page, size)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

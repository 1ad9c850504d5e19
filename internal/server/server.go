package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/catalog"
	"github.com/anushreedahiya/pension-benefit/internal/config"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// Routes
const (
	PathSchemes    = "/api/pension-schemes"
	PathComparison = "/api/pension-comparison"
	PathScenario   = "/api/scenario"
	PathHealth     = "/healthz"
	PathCatalog    = "/api/catalog"
)

// Evaluator runs the pension pipeline for one profile
type Evaluator interface {
	Evaluate(ctx context.Context, profile domain.UserProfile) (*domain.Report, error)
}

// Response is the envelope of every successful reply
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

// ErrorResponse is the envelope of every failed reply
type ErrorResponse struct {
	Success        bool                `json:"success"`
	Status         int                 `json:"status"`
	Message        string              `json:"message"`
	RequestID      string              `json:"requestId"`
	Timestamp      string              `json:"timestamp"`
	Errors         []domain.FieldError `json:"errors,omitempty"`
	RequiredParams []string            `json:"requiredParams,omitempty"`
	ValidCountries []domain.Country    `json:"validCountries,omitempty"`
}

// Server adapts the pipeline to HTTP. Handlers share the engine and catalog
// read-only, so requests are served concurrently.
type Server struct {
	engine  Evaluator
	catalog *catalog.Catalog
	parser  *config.InputParser
	logger  calculation.Logger

	// Now and NewRequestID are replaceable for tests
	Now          func() time.Time
	NewRequestID func() string
}

// New creates a server over engine. cat may be nil, which disables the
// catalog listing route.
func New(engine Evaluator, cat *catalog.Catalog, parser *config.InputParser, logger calculation.Logger) *Server {
	if parser == nil {
		parser = config.NewInputParser()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		engine:       engine,
		catalog:      cat,
		parser:       parser,
		logger:       logger,
		Now:          time.Now,
		NewRequestID: uuid.NewString,
	}
}

// Handler routes requests by path
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		requestID := s.NewRequestID()
		ctx.Response.Header.Set("X-Request-ID", requestID)
		start := s.Now()

		switch string(ctx.Path()) {
		case PathSchemes:
			s.route(ctx, requestID, http.MethodGet, s.handleSchemes)
		case PathComparison:
			s.route(ctx, requestID, http.MethodPost, s.handleComparison)
		case PathScenario:
			s.route(ctx, requestID, http.MethodPost, s.handleScenario)
		case PathCatalog:
			s.route(ctx, requestID, http.MethodGet, s.handleCatalog)
		case PathHealth:
			s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		default:
			s.writeError(ctx, requestID, fasthttp.StatusNotFound, "Not found", nil)
		}

		s.logger.Debugf("%s %s -> %d in %s [%s]", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), s.Now().Sub(start), requestID)
	}
}

// ListenAndServe serves Handler on cfg's address until the listener fails
func (s *Server) ListenAndServe(cfg config.ServerConfig) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "pensionfit",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	s.logger.Infof("pension service listening on %s", cfg.Addr())
	return srv.ListenAndServe(cfg.Addr())
}

func (s *Server) route(ctx *fasthttp.RequestCtx, requestID, method string, h func(*fasthttp.RequestCtx, string)) {
	if string(ctx.Method()) != method {
		ctx.Response.Header.Set("Allow", method)
		s.writeError(ctx, requestID, fasthttp.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}
	h(ctx, requestID)
}

func (s *Server) handleSchemes(ctx *fasthttp.RequestCtx, requestID string) {
	args := ctx.QueryArgs()
	profile, err := s.parser.ParseQuery(string(args.Peek("age")), string(args.Peek("origin")), string(args.Peek("annualSalary")))
	if err != nil {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "", err)
		return
	}
	report, err := s.engine.Evaluate(ctx, profile)
	if err != nil {
		s.fail(ctx, requestID, "Failed to fetch pension schemes", err)
		return
	}
	s.writeSuccess(ctx, requestID, "Pension schemes retrieved successfully", report)
}

func (s *Server) handleComparison(ctx *fasthttp.RequestCtx, requestID string) {
	profile, err := s.parser.ParseProfileJSON(ctx.PostBody())
	if err != nil {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "", err)
		return
	}
	report, err := s.engine.Evaluate(ctx, profile)
	if err != nil {
		s.fail(ctx, requestID, "Failed to analyze pension comparison", err)
		return
	}
	s.writeSuccess(ctx, requestID, "Pension comparison completed successfully", report)
}

func (s *Server) handleScenario(ctx *fasthttp.RequestCtx, requestID string) {
	in, err := s.parser.ParseScenarioJSON(ctx.PostBody(), calculation.DefaultScenarioInputs())
	if err != nil {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "", err)
		return
	}
	projection, err := calculation.ProjectScenario(in)
	if err != nil {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "", err)
		return
	}
	s.writeSuccess(ctx, requestID, "Scenario calculated successfully", projection)
}

func (s *Server) handleCatalog(ctx *fasthttp.RequestCtx, requestID string) {
	if s.catalog == nil {
		s.writeError(ctx, requestID, fasthttp.StatusNotFound, "Catalog listing is not enabled", nil)
		return
	}
	schemes := s.catalog.Schemes()
	if raw := string(ctx.QueryArgs().Peek("country")); raw != "" {
		country, err := domain.ParseCountry(raw)
		if err != nil {
			s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "", err)
			return
		}
		schemes = s.catalog.ByCountry(country)
	}
	s.writeSuccess(ctx, requestID, "Catalog retrieved successfully", schemes)
}

// fail maps pipeline errors: input problems are 400, anything else is 500
func (s *Server) fail(ctx *fasthttp.RequestCtx, requestID, message string, err error) {
	var ve *domain.ValidationError
	var uc *domain.UnsupportedCountryError
	if errors.As(err, &ve) || errors.As(err, &uc) {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "", err)
		return
	}
	s.logger.Errorf("%s [%s]: %v", message, requestID, err)
	s.writeError(ctx, requestID, fasthttp.StatusInternalServerError, message, nil)
}

func (s *Server) writeSuccess(ctx *fasthttp.RequestCtx, requestID, message string, data any) {
	s.writeJSON(ctx, fasthttp.StatusOK, Response{
		Success:   true,
		Message:   message,
		RequestID: requestID,
		Timestamp: s.timestamp(),
		Data:      data,
	})
}

// writeError renders err (a validation or country error) or message
func (s *Server) writeError(ctx *fasthttp.RequestCtx, requestID string, status int, message string, err error) {
	resp := ErrorResponse{
		Status:    status,
		Message:   message,
		RequestID: requestID,
		Timestamp: s.timestamp(),
	}

	var ve *domain.ValidationError
	var uc *domain.UnsupportedCountryError
	switch {
	case errors.As(err, &ve):
		resp.Message = ve.Error()
		resp.Errors = ve.Fields
		for _, f := range ve.Fields {
			if f.Message == "is required" {
				resp.RequiredParams = requiredFor(string(ctx.Path()))
				break
			}
		}
	case errors.As(err, &uc):
		resp.Message = uc.Error()
		resp.ValidCountries = uc.Supported
	case err != nil:
		resp.Message = err.Error()
	}
	s.writeJSON(ctx, status, resp)
}

func requiredFor(path string) []string {
	if path == PathSchemes {
		return config.QueryParams
	}
	return config.RequiredProfileFields
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
		ctx.Error(`{"success":false,"message":"Internal server error"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (s *Server) timestamp() string {
	return s.Now().UTC().Format(time.RFC3339)
}

// Package httpapi is the chat-webhook transport: it owns message framing
// and delivery, supplies identity and "now", and hands command text to the
// core. Identity resolution stays with the caller.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"punchclock/internal/api"
	"punchclock/internal/domain"
	"punchclock/internal/render"
)

// CommandRequest is one inbound chat command. Now is optional; when absent
// the server clock in the configured zone is used.
type CommandRequest struct {
	Identity string `json:"identity"`
	Text     string `json:"text"`
	Now      string `json:"now,omitempty"` // RFC3339
}

// CommandResponse mirrors the api result plus the request id for log
// correlation.
type CommandResponse struct {
	RequestID string `json:"request_id"`
	*api.Result
}

// Server serves the command and summary endpoints.
type Server struct {
	echo     *echo.Echo
	api      api.API
	renderer *render.TableRenderer
	logger   *slog.Logger
}

// NewServer creates the HTTP server around the api facade.
func NewServer(apiInstance api.API, renderer *render.TableRenderer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		api:      apiInstance,
		renderer: renderer,
		logger:   logger,
	}

	e.GET("/healthz", s.health)
	e.POST("/v1/commands", s.handleCommand)
	e.GET("/v1/summaries/:identity/:year/:month", s.handleSummary)

	return s
}

// Start listens on the given address until the listener fails or is closed.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) health(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCommand(c echo.Context) error {
	requestID := uuid.NewString()

	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Identity == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identity is required")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	now := s.api.Now()
	if req.Now != "" {
		parsed, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "now must be RFC3339")
		}
		now = parsed
	}

	result, err := s.api.Execute(c.Request().Context(), domain.Identity(req.Identity), req.Text, now)
	if err != nil {
		s.logger.Error("command execution failed",
			slog.String("request_id", requestID),
			slog.String("identity", req.Identity),
			slog.Any("error", err),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	s.logger.Info("command executed",
		slog.String("request_id", requestID),
		slog.String("identity", req.Identity),
		slog.Bool("ok", result.OK),
	)

	return c.JSON(http.StatusOK, CommandResponse{RequestID: requestID, Result: result})
}

func (s *Server) handleSummary(c echo.Context) error {
	identity := c.Param("identity")
	if identity == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identity is required")
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be a number")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return echo.NewHTTPError(http.StatusBadRequest, "month must be 1-12")
	}

	summary, err := s.api.BuildSummary(c.Request().Context(), domain.Identity(identity), year, time.Month(month))
	if err != nil {
		s.logger.Error("summary build failed",
			slog.String("identity", identity),
			slog.Any("error", err),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if c.QueryParam("render") == "text" {
		return c.String(http.StatusOK, s.renderer.Render(summary))
	}
	return c.JSON(http.StatusOK, summary)
}

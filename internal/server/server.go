// Package server is a bundled stub of the CostCorrect analysis service.
// It speaks the same wire interface as the hosted service — multipart
// upload in, Bill of Quantities out — but replaces the vision model with
// a deterministic measurement derived from the uploaded bytes, so it can
// back offline development and end-to-end tests.
package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/config"
	"github.com/costcorrect/costcorrect/internal/intake"
	applog "github.com/costcorrect/costcorrect/internal/log"
)

// Server hosts the stub analysis endpoints.
type Server struct {
	echo   *echo.Echo
	cfg    config.ServeConfig
	tier   string
	logger *applog.Logger
}

// New creates a Server. tier is the tier reported by /api/me and used by
// the upload gate; the stub has no identity provider behind it.
func New(cfg config.ServeConfig, tier string, logger *applog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{echo: e, cfg: cfg, tier: tier, logger: logger}

	e.GET("/health", s.handleHealth)
	e.GET("/api/me", s.handleMe)
	e.POST("/api/upload", s.handleUpload)

	return s
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start blocks serving on the configured address.
func (s *Server) Start() error {
	if s.logger != nil {
		_ = s.logger.Append(applog.Event{Event: applog.EventServeStarted, Addr: s.cfg.Addr})
	}
	return s.echo.Start(s.cfg.Addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"tier": s.tier})
}

// detail mirrors the hosted service's error body shape.
func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"detail": msg})
}

func (s *Server) handleUpload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return detail(c, http.StatusBadRequest, "no file provided")
	}

	floors := 1
	if v := c.FormValue("floors"); v != "" {
		floors, err = strconv.Atoi(v)
		if err != nil || floors < 1 || floors > 4 {
			return detail(c, http.StatusBadRequest, "floors must be an integer between 1 and 4")
		}
	}
	estimatePrices := c.FormValue("estimate_prices") == "true"

	// The gate the hosted service enforces: client-side disabling of the
	// controls is convenience only, never the authority.
	if (floors > 1 || estimatePrices) && s.tier == "free" {
		return detail(c, http.StatusPaymentRequired,
			"Payment Required: Multi-floor analysis and cost estimation are Pro features. Please upgrade your account.")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtension(ext) {
		return detail(c, http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type %q. Allowed: %s", ext, strings.Join(intake.AcceptedExtensions, " ")))
	}

	src, err := header.Open()
	if err != nil {
		return detail(c, http.StatusInternalServerError, "failed to read upload")
	}
	defer src.Close()
	size, err := io.Copy(io.Discard, src)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "failed to read upload")
	}

	m := stubMeasurement(size)
	result := boq.Calculate(boq.CalcInput{
		Filename:       header.Filename,
		Scale:          m.scale,
		Walls230M:      m.walls230,
		Walls110M:      m.walls110,
		WallHeightM:    s.cfg.WallHeightM,
		Floors:         floors,
		EstimatePrices: estimatePrices,
		ConfidenceNote: m.note,
	})

	return c.JSON(http.StatusOK, result)
}

func allowedExtension(ext string) bool {
	for _, allowed := range intake.AcceptedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// measurement is what the vision model would have extracted.
type measurement struct {
	scale    string
	walls230 float64
	walls110 float64
	note     string
}

// stubMeasurement derives stable wall lengths from the upload size, so
// the same file always yields the same bill.
func stubMeasurement(size int64) measurement {
	return measurement{
		scale:    "1:100",
		walls230: 12 + float64(size%4000)/100,
		walls110: 6 + float64(size%2000)/100,
		note:     "Stub analysis: measurements derived from file size, not from the drawing.",
	}
}

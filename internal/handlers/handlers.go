package handlers

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/config"
	"github.com/aaronzipp/mun-display/internal/metrics"
	"github.com/aaronzipp/mun-display/internal/sse"
	"github.com/aaronzipp/mun-display/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Context holds shared application dependencies
type Context struct {
	Rooms       *store.RoomStore
	Committees  committee.Provider
	Templates   *template.Template
	Broadcaster *sse.Broadcaster
	Metrics     *metrics.Metrics
	Config      *config.Config
	Logger      *slog.Logger

	// baseCtx bounds the lifetime of every room's tick loop
	baseCtx context.Context
}

// New wires the web shell. Room tick loops stop when baseCtx is cancelled.
func New(baseCtx context.Context, cfg *config.Config, committees committee.Provider, m *metrics.Metrics, logger *slog.Logger) (*Context, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.Nop()
	}
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"clock": conference.FormatClock,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Context{
		Rooms:       store.NewRoomStore(),
		Committees:  committees,
		Templates:   tmpl,
		Broadcaster: sse.NewBroadcaster(cfg.SSETimeout, logger),
		Metrics:     m,
		Config:      cfg,
		Logger:      logger.With("component", "http"),
		baseCtx:     baseCtx,
	}, nil
}

// Routes registers every endpoint. metricsHandler may be nil.
func (ctx *Context) Routes(metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", ctx.HandleIndex)
	mux.HandleFunc("POST /select", ctx.HandleSelect)
	mux.HandleFunc("GET /healthz", ctx.HandleHealth)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	mux.HandleFunc("GET /{code}", ctx.HandleDisplay)
	mux.HandleFunc("GET /{code}/screen", ctx.HandleScreen)
	mux.HandleFunc("GET /{code}/events", ctx.HandleSSE)
	mux.HandleFunc("GET /{code}/ws", ctx.HandleWebSocket)
	mux.HandleFunc("GET /{code}/qr.png", ctx.HandleQR)
	mux.HandleFunc("POST /{code}/action/{name}", ctx.HandleAction)
	mux.HandleFunc("POST /{code}/rollcall/toggle", ctx.HandleRollCallToggle)
	mux.HandleFunc("POST /{code}/rollcall/complete", ctx.HandleRollCallComplete)
	return mux
}

// Close stops every room
func (ctx *Context) Close() {
	ctx.Rooms.Close()
}

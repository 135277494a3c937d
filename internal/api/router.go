package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pillarcoach/coachengine/internal/api/handlers"
	mw "github.com/pillarcoach/coachengine/internal/api/middleware"
	"github.com/pillarcoach/coachengine/internal/buildconfig"
	"github.com/pillarcoach/coachengine/internal/config"
	"github.com/pillarcoach/coachengine/internal/content"
	"github.com/pillarcoach/coachengine/internal/metrics"
	"github.com/pillarcoach/coachengine/internal/service"
)

// App holds the router and the collaborators that outlive a request.
type App struct {
	Router    *chi.Mux
	Registry  *prometheus.Registry
	counter   *mw.RequestCounter
	startTime time.Time
}

func NewApp(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewRecorder(reg)

	// Services
	classifierSvc := service.NewClassifierService(rec, logger)
	compiler := service.NewDirectiveCompiler()
	composer := service.NewPromptComposer(classifierSvc, compiler, content.Default(), rec, logger)

	// Handlers
	modelHandler := handlers.NewModelHandler(compiler)
	classifyHandler := handlers.NewClassifyHandler(classifierSvc)
	promptHandler := handlers.NewPromptHandler(composer, handlers.StyleDefaults{
		EmpathyLevel: config.DefaultEmpathyLevel(),
		Intensity:    config.DefaultIntensity(),
	})

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Registry:  reg,
		counter:   mw.NewRequestCounter(),
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)                                                 // Generate/extract request ID first
	r.Use(middleware.RealIP)                                            // Extract real IP
	r.Use(app.counter.Middleware)                                       // Count requests
	r.Use(mw.Logging(logger))                                           // Log all requests
	r.Use(middleware.Recoverer)                                         // Recover from panics
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst())) // Rate limiting

	r.Get("/health", healthHandler)
	r.Get("/stats", app.statsHandler())
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/models", func(r chi.Router) {
			r.Get("/", modelHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", modelHandler.GetByID)
				r.Get("/directive", modelHandler.Directive)
			})
		})

		r.Post("/classify", classifyHandler.Classify)

		r.Route("/prompts", func(r chi.Router) {
			r.Post("/conversation", promptHandler.Conversation)
			r.Post("/actionables", promptHandler.Actionables)
		})
	})

	return app
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	for k, v := range buildconfig.VersionInfo() {
		resp[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (app *App) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"requests":       app.counter.Snapshot(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vidaplus/sghss-api/internal/handler"
	"github.com/vidaplus/sghss-api/internal/middleware"
	authService "github.com/vidaplus/sghss-api/internal/service/auth"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitEnabled bool
	RateLimit        middleware.RateLimiterConfig
	CORS             middleware.CORSConfig
	MetricsPrefix    string
}

type Router struct {
	engine  *gin.Engine
	authSvc *authService.Service

	authH         Handler
	patientH      Handler
	professionalH Handler
	unitH         Handler
	consultationH Handler
	recordH       Handler
	auditH        Handler
	h             *handler.Handler

	metrics *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	authSvc *authService.Service,
	authH Handler,
	patientH Handler,
	professionalH Handler,
	unitH Handler,
	consultationH Handler,
	recordH Handler,
	auditH Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:        engine,
		authSvc:       authSvc,
		authH:         authH,
		patientH:      patientH,
		professionalH: professionalH,
		unitH:         unitH,
		consultationH: consultationH,
		recordH:       recordH,
		auditH:        auditH,
		h:             h,
		metrics:       initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	engine.Use(middleware.CORS(config.CORS))

	if config.RateLimitEnabled {
		engine.Use(middleware.NewRateLimiter(config.RateLimit).RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET("/metrics", r.h.MetricsHandler)

	api := r.engine.Group("")

	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(r.authSvc))
	r.setupProtectedRoutes(protected)
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterRoutes(rg)
	r.patientH.RegisterRoutes(rg)
	r.professionalH.RegisterRoutes(rg)
	r.unitH.RegisterRoutes(rg)
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	r.consultationH.RegisterRoutes(rg)
	r.recordH.RegisterRoutes(rg)
	r.auditH.RegisterRoutes(rg)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	if prefix == "" {
		prefix = "sghss"
	}

	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP error responses",
			},
			[]string{"method", "path", "status"},
		),
	}

	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)

	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Use the route template so path cardinality stays bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		}
	}
}

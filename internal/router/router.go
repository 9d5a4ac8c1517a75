package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
)

type config struct {
	swaggerDocURL string
}

// Option configures the router.
type Option func(*config)

// WithSwagger exposes the API documentation under /swagger/, loading the document from docURL.
func WithSwagger(docURL string) Option {
	return func(c *config) {
		c.swaggerDocURL = docURL
	}
}

// New builds the HTTP router. Only the conversion route is served;
// every other path answers 404 with an empty body.
func New(log *zap.SugaredLogger, convert http.HandlerFunc, opts ...Option) http.Handler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handlers.RegisterConvertHandler(r, convert)

	if cfg.swaggerDocURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL(cfg.swaggerDocURL),
		))
	}

	return r
}

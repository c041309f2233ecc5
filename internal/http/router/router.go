package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/rogerio-castellano/coffee-maker/docs"
	"github.com/rogerio-castellano/coffee-maker/internal/http/handlers"
	mw "github.com/rogerio-castellano/coffee-maker/internal/http/middleware"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.RequestLogger(logger))

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/login", handlers.LoginHandler)

	r.Get("/recipes", handlers.GetRecipesHandler)
	r.Get("/inventory", handlers.CheckInventoryHandler)
	r.Get("/inventory/levels", handlers.GetInventoryLevelsHandler)

	r.With(mw.RateLimit).Post("/purchases", handlers.PurchaseHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireRole(models.RoleAdmin))

		r.Post("/admin/users", handlers.RegisterAsAdminHandler)

		r.Post("/recipes", handlers.CreateRecipeHandler)
		r.Post("/recipes/import", handlers.ImportRecipesHandler)
		r.Put("/recipes/{slot}", handlers.UpdateRecipeHandler)
		r.Delete("/recipes/{slot}", handlers.DeleteRecipeHandler)

		r.Post("/inventory", handlers.AddInventoryHandler)

		r.Get("/sales", handlers.GetSalesHandler)
		r.Get("/sales/export", handlers.ExportSalesHandler)
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	})

	return r
}

package router

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"texstock/internal/api/article"
	"texstock/internal/api/destock"
	"texstock/internal/api/slot"
	"texstock/internal/api/stock"
	"texstock/internal/api/user"
	"texstock/internal/domain"
	"texstock/internal/pkg/cache"
	"texstock/internal/pkg/middleware"
	"texstock/internal/pkg/token"
)

// Config carries everything the router needs to assemble the API surface.
type Config struct {
	ArticleHandler *article.Handler
	SlotHandler    *slot.Handler
	StockHandler   *stock.Handler
	DestockHandler *destock.Handler
	UserHandler    *user.Handler

	TokenService token.TokenService
	CacheClient  cache.Client

	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// New builds the HTTP routing table with authentication, role checks,
// rate limiting and request metrics applied.
func New(cfg Config) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.NewAuthMiddleware(cfg.TokenService)
	adminOnly := middleware.PermissionMiddleware(domain.RoleAdmin)
	anyRole := middleware.PermissionMiddleware(domain.RoleStaff, domain.RoleAdmin)

	staff := func(h http.HandlerFunc) http.HandlerFunc { return auth(anyRole(h)) }
	admin := func(h http.HandlerFunc) http.HandlerFunc { return auth(adminOnly(h)) }

	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /v1/auth/login", cfg.UserHandler.LoginHandler)
	mux.HandleFunc("GET /v1/users", admin(cfg.UserHandler.ListUsersHandler))
	mux.HandleFunc("PATCH /v1/users/{id}", admin(cfg.UserHandler.UpdateUserRoleHandler))

	mux.HandleFunc("POST /v1/articles", staff(cfg.ArticleHandler.CreateArticleHandler))
	mux.HandleFunc("GET /v1/articles", staff(cfg.ArticleHandler.ListArticlesHandler))
	mux.HandleFunc("GET /v1/articles/{code}", staff(cfg.ArticleHandler.GetArticleHandler))
	mux.HandleFunc("DELETE /v1/articles/{code}", admin(cfg.ArticleHandler.DeleteArticleHandler))

	mux.HandleFunc("POST /v1/slots", admin(cfg.SlotHandler.CreateSlotHandler))
	mux.HandleFunc("POST /v1/slots/init-overflow", admin(cfg.SlotHandler.InitOverflowSlotHandler))
	mux.HandleFunc("POST /v1/slots/generate", admin(cfg.SlotHandler.GenerateSlotsHandler))
	mux.HandleFunc("GET /v1/slots", staff(cfg.SlotHandler.ListSlotsHandler))
	mux.HandleFunc("GET /v1/slots/{code}", staff(cfg.SlotHandler.GetSlotHandler))
	mux.HandleFunc("POST /v1/slots/{code}/empty", admin(cfg.SlotHandler.EmptySlotHandler))
	mux.HandleFunc("DELETE /v1/slots/storage", admin(cfg.SlotHandler.DeleteAllStorageSlotsHandler))
	mux.HandleFunc("DELETE /v1/slots/{code}", admin(cfg.SlotHandler.DeleteSlotHandler))

	mux.HandleFunc("POST /v1/samples/stock", staff(cfg.StockHandler.StockHandler))
	mux.HandleFunc("POST /v1/destock/plan", staff(cfg.DestockHandler.PlanHandler))
	mux.HandleFunc("POST /v1/destock/confirm", staff(cfg.DestockHandler.ConfirmHandler))

	var handler http.Handler = mux
	handler = middleware.Metrics(handler)
	handler = middleware.RateLimiter(cfg.CacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)(handler)

	return handler
}

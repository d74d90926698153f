package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"pcapi/internal/domain/user"
	"pcapi/internal/handler/api"
	"pcapi/internal/handler/middleware"
	"pcapi/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine               *gin.Engine
	Config               config.Config
	AuthHandler          *api.AuthHandler
	BookingHandler       *api.BookingHandler
	SubscriptionHandler  *api.SubscriptionHandler
	ReimbursementHandler *api.ReimbursementHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Logger               *middleware.Logger
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, authMw := p.Engine, p.AuthMiddleware
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	beneficiaryOnly := authMw.RequireAnyRole(user.RoleBeneficiary, user.RoleUnderageBeneficiary)
	proOrAbove := authMw.RequireRoleAtLeast(user.RolePro)
	adminOnly := authMw.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMw.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: p.BookingHandler.Create, Mw: []gin.HandlerFunc{beneficiaryOnly}},
				{Method: http.MethodGet, Path: "", Handler: p.BookingHandler.List, Mw: []gin.HandlerFunc{beneficiaryOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.BookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.BookingHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/use", Handler: p.BookingHandler.Use, Mw: []gin.HandlerFunc{proOrAbove}},
				{Method: http.MethodPost, Path: "/:id/unuse", Handler: p.BookingHandler.Unuse, Mw: []gin.HandlerFunc{proOrAbove}},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: p.BookingHandler.Confirm, Mw: []gin.HandlerFunc{proOrAbove}},
				{Method: http.MethodPost, Path: "/:id/uncancel", Handler: p.BookingHandler.Uncancel, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMw.RequireAuth(), beneficiaryOnly)
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "", Handler: p.BookingHandler.Wallet},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMw.RequireAuth(), adminOnly)
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: p.SubscriptionHandler.Subscribe},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMw.RequireAuth(), adminOnly)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reimbursement-rules", Handler: p.ReimbursementHandler.ListRules},
				{Method: http.MethodPost, Path: "/reimbursement-rules", Handler: p.ReimbursementHandler.CreateRule},
				{Method: http.MethodPost, Path: "/reimbursement-rules/:id/close", Handler: p.ReimbursementHandler.CloseRule},
				{Method: http.MethodGet, Path: "/bookings/:id/reimbursement", Handler: p.ReimbursementHandler.ComputeReimbursement},
				{Method: http.MethodPost, Path: "/reimbursements", Handler: p.ReimbursementHandler.Reimburse},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

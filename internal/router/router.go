// Package router 提供 HTTP 路由设置和中间件配置功能
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/api"
	"github.com/MorseWayne/mercado_shop/internal/config"
	"github.com/MorseWayne/mercado_shop/internal/limiter"
	"github.com/MorseWayne/mercado_shop/internal/resp"
)

// Dependencies 包含路由设置所需的所有依赖
type Dependencies struct {
	CatalogHandler      *api.CatalogHandler
	CartHandler         *api.CartHandler
	FavoritesHandler    *api.FavoritesHandler
	CheckoutHandler     *api.CheckoutHandler
	StatsHandler        *api.StatsHandler
	ViewHandler         *api.ViewHandler
	NotificationHandler *api.NotificationHandler
	PreferencesHandler  *api.PreferencesHandler

	// RateLimiter 可选；为nil时不做限流
	RateLimiter limiter.Limiter
}

// Router 路由器接口
type Router interface {
	Setup(cfg *config.Config, deps *Dependencies, lg *zap.Logger) http.Handler
}

// GinRouter Gin路由器实现
type GinRouter struct {
	engine *gin.Engine
	deps   *Dependencies
	logger *zap.Logger
}

// New 创建新的路由器实例
func New() Router {
	return &GinRouter{}
}

// Setup 设置路由和中间件
func (r *GinRouter) Setup(cfg *config.Config, deps *Dependencies, lg *zap.Logger) http.Handler {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r.engine = gin.New()
	r.deps = deps
	r.logger = lg

	r.setupMiddleware(cfg)
	r.setupRoutes(cfg)
	r.setupNoRoute()

	return r.engine
}

// setupMiddleware 设置 Gin 中间件
// 请求ID、超时、CORS和访问日志由外层标准库中间件链提供（见 cmd/mercado-server）
func (r *GinRouter) setupMiddleware(cfg *config.Config) {
	r.engine.Use(gin.Recovery())
}

// setupRoutes 设置所有路由
func (r *GinRouter) setupRoutes(cfg *config.Config) {
	// 健康检查
	r.engine.GET("/healthz", r.healthCheck(cfg))

	// 变更类接口的限流中间件；未启用时为空操作
	limit := r.rateLimitMiddleware()

	v1 := r.engine.Group("/api/v1")
	{
		// 商品目录（只读）
		products := v1.Group("/products")
		{
			products.GET("", r.wrapHandler(r.deps.CatalogHandler.ListProducts))
			products.GET("/stats", r.wrapHandler(r.deps.CatalogHandler.GetCatalogStats))
			products.GET("/:id", r.wrapHandler(r.deps.CatalogHandler.GetProduct))
		}
		v1.GET("/categories", r.wrapHandler(r.deps.CatalogHandler.ListCategories))

		// 购物车
		cart := v1.Group("/cart")
		{
			cart.GET("", r.wrapHandler(r.deps.CartHandler.GetCart))
			cart.DELETE("", limit, r.wrapHandler(r.deps.CartHandler.ClearCart))
			cart.POST("/items", limit, r.wrapHandler(r.deps.CartHandler.AddItem))
			cart.PUT("/items/:id", limit, r.wrapHandler(r.deps.CartHandler.UpdateItem))
			cart.DELETE("/items/:id", limit, r.wrapHandler(r.deps.CartHandler.RemoveItem))
		}

		// 收藏
		favorites := v1.Group("/favorites")
		{
			favorites.GET("", r.wrapHandler(r.deps.FavoritesHandler.ListFavorites))
			favorites.POST("", limit, r.wrapHandler(r.deps.FavoritesHandler.AddFavorite))
			favorites.GET("/:id", r.wrapHandler(r.deps.FavoritesHandler.CheckFavorite))
			favorites.DELETE("/:id", limit, r.wrapHandler(r.deps.FavoritesHandler.RemoveFavorite))
		}

		// 结算流程
		checkout := v1.Group("/checkout")
		{
			checkout.POST("", limit, r.wrapHandler(r.deps.CheckoutHandler.StartCheckout))
			checkout.GET("", r.wrapHandler(r.deps.CheckoutHandler.GetCheckout))
			checkout.PUT("/fields", limit, r.wrapHandler(r.deps.CheckoutHandler.SetField))
			checkout.POST("/next", limit, r.wrapHandler(r.deps.CheckoutHandler.NextStep))
			checkout.POST("/back", limit, r.wrapHandler(r.deps.CheckoutHandler.PrevStep))
			checkout.POST("/submit", limit, r.wrapHandler(r.deps.CheckoutHandler.SubmitOrder))
		}

		// 统计仪表盘
		v1.GET("/stats", r.wrapHandler(r.deps.StatsHandler.GetStats))

		// 顶层视图
		view := v1.Group("/view")
		{
			view.GET("", r.wrapHandler(r.deps.ViewHandler.GetView))
			view.PUT("", limit, r.wrapHandler(r.deps.ViewHandler.Navigate))
			view.PUT("/search", limit, r.wrapHandler(r.deps.ViewHandler.SetSearch))
		}

		// 通知队列
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", r.wrapHandler(r.deps.NotificationHandler.ListNotifications))
			notifications.DELETE("/:id", limit, r.wrapHandler(r.deps.NotificationHandler.DismissNotification))
		}

		// 用户偏好
		preferences := v1.Group("/preferences")
		{
			preferences.GET("/theme", r.wrapHandler(r.deps.PreferencesHandler.GetTheme))
			preferences.POST("/theme/toggle", limit, r.wrapHandler(r.deps.PreferencesHandler.ToggleTheme))
		}
	}
}

// healthCheck 健康检查处理器
func (r *GinRouter) healthCheck(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": cfg.App.Version,
		})
	}
}

// wrapHandler 将标准的 http.HandlerFunc 包装为 gin.HandlerFunc
func (r *GinRouter) wrapHandler(handler func(http.ResponseWriter, *http.Request)) gin.HandlerFunc {
	return gin.WrapF(handler)
}

// rateLimitMiddleware 返回变更类接口的限流中间件
func (r *GinRouter) rateLimitMiddleware() gin.HandlerFunc {
	if r.deps.RateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return limiter.GlobalRateLimitMiddleware(r.deps.RateLimiter)
}

// setupNoRoute 统一404响应，避免gin默认的纯文本
func (r *GinRouter) setupNoRoute() {
	r.engine.NoRoute(func(c *gin.Context) {
		resp.Error(c.Writer, http.StatusNotFound, resp.CodeNotFound, "route not found", "", "")
	})
}

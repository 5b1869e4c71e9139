package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/api"
	"github.com/MorseWayne/mercado_shop/internal/cache"
	"github.com/MorseWayne/mercado_shop/internal/config"
	"github.com/MorseWayne/mercado_shop/internal/kvstore"
	"github.com/MorseWayne/mercado_shop/internal/limiter"
	"github.com/MorseWayne/mercado_shop/internal/logger"
	mw "github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/repo"
	"github.com/MorseWayne/mercado_shop/internal/router"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// initConfigAndLogger 初始化配置和日志器
func initConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.App.Env, cfg.Log.Level, cfg.Log.Encoding, cfg.App.Name, cfg.App.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %v", err)
	}

	return cfg, lg, nil
}

// initCache 初始化缓存实例
func initCache(cfg *config.Config, lg *zap.Logger) cache.Cache {
	var cacheInstance cache.Cache
	if cfg.Cache.Enabled {
		switch cfg.Cache.Type {
		case "redis":
			redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
			redisCache, err := cache.NewRedisCache(redisAddr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				lg.Sugar().Warnw("failed to connect to Redis, falling back to memory cache", "error", err)
				cacheInstance = cache.NewMemoryCache()
				lg.Sugar().Infow("cache enabled", "type", "memory (fallback)", "ttl", cfg.Cache.TTL)
			} else {
				cacheInstance = redisCache
				lg.Sugar().Infow("cache enabled", "type", "redis", "addr", redisAddr, "ttl", cfg.Cache.TTL)
			}
		default:
			cacheInstance = cache.NewMemoryCache()
			lg.Sugar().Infow("cache enabled", "type", "memory", "ttl", cfg.Cache.TTL)
		}
	} else {
		cacheInstance = cache.NewNullCache()
		lg.Sugar().Infow("cache disabled")
	}
	return cacheInstance
}

// initRateLimiter 初始化API限流器；未启用或Redis不可用时返回nil（不限流）
func initRateLimiter(cfg *config.Config, lg *zap.Logger) limiter.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}

	redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	redisCache, err := cache.NewRedisCache(redisAddr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		lg.Sugar().Warnw("rate limiting disabled: Redis unavailable", "error", err)
		return nil
	}

	lim, err := limiter.NewTokenBucketLimiter(redisCache.Client(), &limiter.Config{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	if err != nil {
		lg.Sugar().Warnw("rate limiting disabled: invalid config", "error", err)
		return nil
	}

	lg.Sugar().Infow("rate limiting enabled",
		"rate", cfg.RateLimit.Rate, "window", cfg.RateLimit.Window, "burst", cfg.RateLimit.Burst)
	return lim
}

// initDependencies 初始化应用依赖（存储、仓储、服务、处理器）
func initDependencies(cfg *config.Config, cacheInstance cache.Cache, lg *zap.Logger) (*router.Dependencies, error) {
	// 本地文件存储：收藏列表和主题偏好
	store, err := kvstore.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("init file store: %w", err)
	}

	// 依赖注入链：仓储 -> 服务 -> API处理器
	var catalogRepo repo.CatalogRepository = repo.NewStaticCatalogRepository(repo.CatalogDelays{
		Products:   cfg.Catalog.ProductsDelay,
		Categories: cfg.Catalog.CategoriesDelay,
		Product:    cfg.Catalog.ProductDelay,
	})
	if cfg.Cache.Enabled {
		catalogRepo = repo.NewCachedCatalogRepository(catalogRepo, cacheInstance, cfg.Cache.TTL)
	}

	favoritesRepo := repo.NewFavoritesRepository(store, lg)
	preferencesRepo := repo.NewPreferencesRepository(store)

	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService()
	favoritesService := service.NewFavoritesService(favoritesRepo, lg)
	notificationService := service.NewNotificationService(cfg.Notifications.Lifetime)
	viewService := service.NewViewService()
	preferencesService := service.NewPreferencesService(preferencesRepo)
	statsService := service.NewStatsService(catalogService, cartService, favoritesService)

	// 支付完成并停留一段时间后，自动返回首页
	onComplete := func() {
		if err := viewService.Navigate(service.ViewHome); err != nil {
			lg.Warn("return to home failed", zap.Error(err))
		}
	}
	checkoutService := service.NewCheckoutService(cartService, notificationService, service.CheckoutConfig{
		SettleDelay: cfg.Checkout.SettleDelay,
		ReturnDelay: cfg.Checkout.ReturnDelay,
	}, onComplete, lg)

	return &router.Dependencies{
		CatalogHandler:      api.NewCatalogHandler(catalogService, lg),
		CartHandler:         api.NewCartHandler(cartService, catalogService, lg),
		FavoritesHandler:    api.NewFavoritesHandler(favoritesService, catalogService, lg),
		CheckoutHandler:     api.NewCheckoutHandler(checkoutService, lg),
		StatsHandler:        api.NewStatsHandler(statsService, lg),
		ViewHandler:         api.NewViewHandler(viewService, lg),
		NotificationHandler: api.NewNotificationHandler(notificationService, lg),
		PreferencesHandler:  api.NewPreferencesHandler(preferencesService, lg),
		RateLimiter:         initRateLimiter(cfg, lg),
	}, nil
}

// setupHandler 组装路由和外层中间件链
// 请求进入时执行顺序为 access log → CORS → timeout → recovery → request ID → 路由
func setupHandler(cfg *config.Config, deps *router.Dependencies, lg *zap.Logger) http.Handler {
	handler := router.New().Setup(cfg, deps, lg)

	handler = mw.RequestID(handler)
	handler = mw.Recovery(lg)(handler)
	handler = mw.Timeout(cfg.App.RequestTimeout)(handler)
	handler = mw.CORS(mw.CORSConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
	})(handler)
	handler = mw.AccessLog(lg)(handler)

	return handler
}

// startServer 启动服务器并处理优雅关闭
func startServer(cfg *config.Config, handler http.Handler, lg *zap.Logger) {
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	lg.Sugar().Infow("server starting", "addr", addr)
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	// 启动服务器（异步）
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	select {
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			lg.Sugar().Fatalw("server error", "err", err)
		}
	case <-quit:
		lg.Sugar().Infow("shutdown signal received")
	}

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Sugar().Errorw("server shutdown error", "err", err)
	}
	lg.Sugar().Infow("server exited")
}

// main 为应用入口，协调各个组件的初始化和启动
func main() {
	// 1) 加载配置和初始化日志
	cfg, lg, err := initConfigAndLogger()
	if err != nil {
		log.Fatalf("failed to initialize config and logger: %v", err)
	}

	// 2) 初始化缓存
	cacheInstance := initCache(cfg, lg)
	defer func() {
		if err := cacheInstance.Close(); err != nil {
			lg.Sugar().Errorw("failed to close cache", "err", err)
		}
	}()

	// 3) 初始化应用依赖（存储、仓储、服务、处理器）
	deps, err := initDependencies(cfg, cacheInstance, lg)
	if err != nil {
		lg.Sugar().Fatalw("failed to initialize dependencies", "err", err)
	}

	// 4) 设置路由和中间件
	handler := setupHandler(cfg, deps, lg)

	// 5) 启动 HTTP 服务器
	startServer(cfg, handler, lg)
}

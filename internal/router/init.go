package router

import (
	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/internal/container"
	pginfra "github.com/oksasatya/go-commerce-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
	"github.com/oksasatya/go-commerce-api/internal/router/modules"
	"github.com/oksasatya/go-commerce-api/pkg/helpers"
)

// InitModules constructs every feature module from the container singletons
// and registers it. Call once during startup, after the container is filled.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	cartRepo := pginfra.NewCartRepository(pool)
	orderRepo := pginfra.NewOrderRepository(pool)
	paymentRepo := pginfra.NewPaymentRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)
	categoryRepo := pginfra.NewCategoryRepository(pool)
	reviewRepo := pginfra.NewReviewRepository(pool)
	shippingRepo := pginfra.NewShippingRepository(pool)

	userSvc := application.NewUserService(userRepo, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	cartSvc := application.NewCartService(cartRepo, logger)
	orderSvc := application.NewOrderService(orderRepo, logger)
	paymentSvc := application.NewPaymentService(paymentRepo, userRepo, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	productSvc := application.NewProductService(productRepo, logger, container.GetES(), cfg.ESProductsIndex, container.GetGCS(), cfg.GCSBucket)
	categorySvc := application.NewCategoryService(categoryRepo, logger)
	reviewSvc := application.NewReviewService(reviewRepo, productRepo, logger)
	shippingSvc := application.NewShippingService(shippingRepo, container.GetRedis(), cfg.ShippingCacheTTL, logger)

	cookie := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, cookie, logger), userSvc))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, logger)))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger)))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger)))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger)))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger)))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(reviewSvc, logger)))
	r.Add(modules.NewShippingModule(handlers.NewShippingHandler(shippingSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

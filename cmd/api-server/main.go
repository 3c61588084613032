package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore/database"
	"bookstore/internal/api/handler"
	"bookstore/internal/api/middleware"
	"bookstore/internal/api/repository"
	"bookstore/internal/api/service"
	"bookstore/internal/config"
	"bookstore/internal/mailer"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to database")
	}

	var otpThrottle service.OTPThrottle
	redisClient, err := database.ConnectRedis(cfg, logger)
	if err != nil {
		// Redis only backs OTP throttling, the API stays up without it.
		logger.Warn().Err(err).Msg("redis unavailable, OTP throttling disabled")
	} else {
		otpThrottle = service.NewRedisOTPThrottle(redisClient, cfg.OTPRequestsPerHr)
	}

	otpMailer := mailer.New(cfg, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOneTimeCodeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bookRepo := repository.NewBookRepository(db)
	borrowRepo := repository.NewBorrowRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	// Sweep stale one-time codes so the table does not accumulate them.
	go func() {
		for {
			time.Sleep(time.Hour)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := otpRepo.DeleteExpired(ctx); err != nil {
				logger.Warn().Err(err).Msg("expired OTP sweep failed")
			}
			cancel()
		}
	}()

	// Services
	authService := service.NewAuthService(userRepo, otpRepo, otpMailer, otpThrottle, cfg)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	bookService := service.NewBookService(bookRepo)
	productService := service.NewProductService(bookRepo)
	borrowService := service.NewBorrowService(borrowRepo, bookRepo)
	cartService := service.NewCartService(cartRepo, bookRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, bookRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authMW := middleware.Authenticate(authService)

	v1 := r.Group("/api/v1")
	handler.NewAuthHandler(authService).RegisterRoutes(v1.Group("/auth"))
	handler.NewUserHandler(userService).RegisterRoutes(v1.Group("/users"), authMW)
	handler.NewCategoryHandler(categoryService).RegisterRoutes(v1.Group("/categories"), authMW)
	handler.NewBookHandler(bookService).RegisterRoutes(v1.Group("/books"), authMW)
	handler.NewProductHandler(productService).RegisterRoutes(v1.Group("/products"), authMW)
	handler.NewBorrowHandler(borrowService).RegisterRoutes(v1.Group("/borrows"), authMW)
	handler.NewCartHandler(cartService).RegisterRoutes(v1.Group("/carts"), authMW)
	handler.NewOrderHandler(orderService).RegisterRoutes(v1.Group("/orders"), authMW)
	handler.NewWishlistHandler(wishlistService).RegisterRoutes(v1.Group("/wishlists"), authMW)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info().Str("addr", addr).Str("env", cfg.GoEnv).Msg("starting API server")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

package container

import (
	"context"
	"fmt"

	"bookshop-backend/internal/config"
	cachedomain "bookshop-backend/internal/infrastructure/cache"
	"bookshop-backend/internal/infrastructure/database"
	"bookshop-backend/pkg/cache"
	"bookshop-backend/pkg/jwt"
	"bookshop-backend/pkg/logger"

	bookhandler "bookshop-backend/internal/domains/book/handler"
	bookrepo "bookshop-backend/internal/domains/book/repository"
	bookservice "bookshop-backend/internal/domains/book/service"
	carthandler "bookshop-backend/internal/domains/cart/handler"
	cartrepo "bookshop-backend/internal/domains/cart/repository"
	cartservice "bookshop-backend/internal/domains/cart/service"
	categoryhandler "bookshop-backend/internal/domains/category/handler"
	categoryrepo "bookshop-backend/internal/domains/category/repository"
	categoryservice "bookshop-backend/internal/domains/category/service"
	reviewhandler "bookshop-backend/internal/domains/review/handler"
	reviewrepo "bookshop-backend/internal/domains/review/repository"
	reviewservice "bookshop-backend/internal/domains/review/service"
	userhandler "bookshop-backend/internal/domains/user/handler"
	userrepo "bookshop-backend/internal/domains/user/repository"
	userservice "bookshop-backend/internal/domains/user/service"
	wishlisthandler "bookshop-backend/internal/domains/wishlist/handler"
	wishlistrepo "bookshop-backend/internal/domains/wishlist/repository"
	wishlistservice "bookshop-backend/internal/domains/wishlist/service"
)

// Container wires configuration, infrastructure and the domain layers.
// Construction order: config -> infrastructure -> repositories -> services
// -> handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserHandler     *userhandler.UserHandler
	CategoryHandler *categoryhandler.CategoryHandler
	BookHandler     *bookhandler.BookHandler
	ReviewHandler   *reviewhandler.ReviewHandler
	CartHandler     *carthandler.CartHandler
	WishlistHandler *wishlisthandler.WishlistHandler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	redisCache := cachedomain.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		// The catalog works without Redis, just slower.
		logger.Warn("redis unavailable, caching degraded", map[string]interface{}{"error": err.Error()})
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	userRepository := userrepo.NewPostgresRepository(db.Pool)
	categoryRepository := categoryrepo.NewPostgresRepository(db.Pool)
	bookRepository := bookrepo.NewPostgresRepository(db.Pool)
	reviewRepository := reviewrepo.NewPostgresRepository(db.Pool)
	cartRepository := cartrepo.NewPostgresRepository(db.Pool)
	wishlistRepository := wishlistrepo.NewPostgresRepository(db.Pool)

	userService := userservice.NewUserService(userRepository, jwtManager)
	categoryService := categoryservice.NewCategoryService(categoryRepository)
	bookService := bookservice.NewBookService(bookRepository, categoryRepository, redisCache)
	reviewService := reviewservice.NewReviewService(reviewRepository)
	cartService := cartservice.NewCartService(cartRepository)
	wishlistService := wishlistservice.NewWishlistService(wishlistRepository)

	return &Container{
		Config:     cfg,
		DB:         db,
		Cache:      redisCache,
		JWTManager: jwtManager,

		UserHandler:     userhandler.NewUserHandler(userService),
		CategoryHandler: categoryhandler.NewCategoryHandler(categoryService),
		BookHandler:     bookhandler.NewBookHandler(bookService),
		ReviewHandler:   reviewhandler.NewReviewHandler(reviewService),
		CartHandler:     carthandler.NewCartHandler(cartService),
		WishlistHandler: wishlisthandler.NewWishlistHandler(wishlistService),
	}, nil
}

// Cleanup releases infrastructure connections.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close cache", err)
		}
	}
}

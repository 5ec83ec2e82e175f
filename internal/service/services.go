package service

import (
	"github.com/tmarnet/go-shop/internal/config"
	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/store"
)

// Services bundles all business-logic services consumed by the HTTP layer.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	CartService    CartService
}

// NewServices wires the service layer: the catalog service is wrapped with
// input validation, the auth service carries the token and hashing settings
// from cfg.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogValidationService().
			Wrap(NewCatalogService(repositories.ProductRepository, logger)),
		CartService: NewCartService(repositories.UserRepository, repositories.CartRepository, logger),
	}
}

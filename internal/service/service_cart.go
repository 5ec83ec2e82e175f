package service

import (
	"context"
	"fmt"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/store"
	"github.com/tmarnet/go-shop/models"
)

// cartService is the concrete implementation of CartService.
//
// Every operation first resolves the user, so a missing user surfaces as
// store.ErrNoUserWasFound before any product or cart state is inspected.
type cartService struct {
	userRepository store.UserRepository
	cartRepository store.CartRepository
	logger         *logger.Logger
}

// NewCartService constructs a CartService wired to the given repositories.
func NewCartService(userRepository store.UserRepository, cartRepository store.CartRepository, logger *logger.Logger) CartService {
	return &cartService{
		userRepository: userRepository,
		cartRepository: cartRepository,
		logger:         logger,
	}
}

// AddToCart moves one unit of the product from stock into the user's cart.
//
// Error precedence: unknown user, then unknown product, then exhausted stock
// (see store.ErrNoUserWasFound, store.ErrNoProductWasFound,
// store.ErrProductOutOfStock).
func (c *cartService) AddToCart(ctx context.Context, userID int64, productID int64) error {
	log := logger.FromContext(ctx)

	if _, err := c.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup before cart add failed")
		return fmt.Errorf("user lookup before cart add failed: %w", err)
	}

	if err := c.cartRepository.AddItem(ctx, userID, productID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("adding item to cart failed")
		return fmt.Errorf("adding item to cart failed: %w", err)
	}

	return nil
}

// RemoveFromCart moves one unit of the product from the user's cart back into
// stock. Removing a product the cart does not hold surfaces as
// store.ErrProductNotInCart and leaves stock untouched.
func (c *cartService) RemoveFromCart(ctx context.Context, userID int64, productID int64) error {
	log := logger.FromContext(ctx)

	if _, err := c.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup before cart remove failed")
		return fmt.Errorf("user lookup before cart remove failed: %w", err)
	}

	if err := c.cartRepository.RemoveItem(ctx, userID, productID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("removing item from cart failed")
		return fmt.Errorf("removing item from cart failed: %w", err)
	}

	return nil
}

// ShowCart returns the contents of the user's cart. An empty cart yields an
// empty slice.
func (c *cartService) ShowCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	log := logger.FromContext(ctx)

	if _, err := c.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup before cart show failed")
		return nil, fmt.Errorf("user lookup before cart show failed: %w", err)
	}

	entries, err := c.cartRepository.GetCart(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cart retrieval ended with error")
		return nil, fmt.Errorf("cart retrieval ended with error: %w", err)
	}

	return entries, nil
}

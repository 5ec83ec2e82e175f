package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/utils"
	"github.com/tmarnet/go-shop/models"
)

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if !h.cartBelongsToCaller(w, r, request.UserID) {
		return
	}

	if err := h.services.CartService.AddToCart(ctx, request.UserID, request.ProductID); err != nil {
		log.Err(err).
			Int64("user_id", request.UserID).
			Int64("product_id", request.ProductID).
			Msg("adding product to cart failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "adding product to cart failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "product added to cart"}, http.StatusOK)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if !h.cartBelongsToCaller(w, r, request.UserID) {
		return
	}

	if err := h.services.CartService.RemoveFromCart(ctx, request.UserID, request.ProductID); err != nil {
		log.Err(err).
			Int64("user_id", request.UserID).
			Int64("product_id", request.ProductID).
			Msg("removing product from cart failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "removing product from cart failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "product removed from cart"}, http.StatusOK)
}

func (h *Handler) showCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	targetUserID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid user id"}, http.StatusBadRequest)
		return
	}

	if !h.cartBelongsToCaller(w, r, targetUserID) {
		return
	}

	entries, err := h.services.CartService.ShowCart(ctx, targetUserID)
	if err != nil {
		log.Err(err).Int64("user_id", targetUserID).Msg("cart retrieval failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "cart retrieval failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// cartBelongsToCaller verifies that the cart addressed by targetUserID belongs
// to the authenticated caller. On mismatch it writes a 403 response and
// returns false; a missing context user yields 401.
func (h *Handler) cartBelongsToCaller(w http.ResponseWriter, r *http.Request, targetUserID int64) bool {
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return false
	}

	if callerID != targetUserID {
		log.Warn().
			Int64("caller_id", callerID).
			Int64("target_user_id", targetUserID).
			Msg("attempt to access a foreign cart")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrForeignCart.Error()}, http.StatusForbidden)
		return false
	}

	return true
}

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

// pageQueryParam selects the 1-based catalog page, e.g. /api/products?p=2.
const pageQueryParam = "p"

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := int64(1)
	if rawPage := r.URL.Query().Get(pageQueryParam); rawPage != "" {
		parsedPage, err := strconv.ParseInt(rawPage, 10, 64)
		if err != nil {
			log.Err(err).Str("page", rawPage).Msg("invalid page number")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid page number"}, http.StatusBadRequest)
			return
		}
		page = parsedPage
	}

	products, err := h.services.CatalogService.GetProducts(ctx, page)
	if err != nil {
		log.Err(err).Int64("page", page).Msg("products page retrieval failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "products retrieval failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := productIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid product id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid product id"}, http.StatusBadRequest)
		return
	}

	product, err := h.services.CatalogService.GetProductByID(ctx, productID)
	if err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product retrieval failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "product retrieval failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdProduct, err := h.services.CatalogService.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Str("name", product.Name).Msg("product creation failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "product creation failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, createdProduct, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := productIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid product id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid product id"}, http.StatusBadRequest)
		return
	}

	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedProduct, err := h.services.CatalogService.UpdateProduct(ctx, productID, update)
	if err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product update failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "product update failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedProduct, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := productIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid product id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid product id"}, http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteProduct(ctx, productID); err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product deletion failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "product deletion failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "product deleted"}, http.StatusOK)
}

func productIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/models"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClientConfig holds the settings of [NewHTTPShopClient].
type HTTPClientConfig struct {
	// BaseURL is the address of the go-shop server, with or without a
	// scheme. Defaults to http://localhost:8080.
	BaseURL string

	// Timeout bounds each request. Defaults to 15 seconds.
	Timeout time.Duration
}

type httpShopClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPShopClient constructs an HTTP/REST implementation of [ShopClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL.
func NewHTTPShopClient(cfg HTTPClientConfig, logger *logger.Logger) (ShopClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid shop client base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpShopClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ShopClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpShopClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ShopClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (h *httpShopClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ShopClient]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpShopClient) Register(ctx context.Context, credentials models.CredentialsRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.tokenFromResponse(resp)
}

// Login implements [ShopClient]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpShopClient) Login(ctx context.Context, credentials models.CredentialsRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.tokenFromResponse(resp)
}

func (h *httpShopClient) tokenFromResponse(resp *resty.Response) (models.Token, error) {
	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}

	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// GetProducts implements [ShopClient]. It GETs one catalogue page from
// GET /api/products?p=N and decodes the response.
func (h *httpShopClient) GetProducts(ctx context.Context, page int64) ([]models.Product, error) {
	req := h.client.R().SetContext(ctx)
	if page > 1 {
		req.SetQueryParam("p", strconv.FormatInt(page, 10))
	}

	resp, err := req.Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("get products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}

	return products, nil
}

// GetProduct implements [ShopClient]. It GETs a single product from
// GET /api/products/{id}.
func (h *httpShopClient) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(productPath(productID))
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = json.Unmarshal(resp.Body(), &product); err != nil {
		return models.Product{}, fmt.Errorf("decode product response: %w", err)
	}

	return product, nil
}

// CreateProduct implements [ShopClient]. It POSTs the product to
// POST /api/products and decodes the stored record. Requires a bearer token.
func (h *httpShopClient) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(product).
		Post("/api/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	var created models.Product
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Product{}, fmt.Errorf("decode created product response: %w", err)
	}

	return created, nil
}

// UpdateProduct implements [ShopClient]. It PUTs the partial update to
// PUT /api/products/{id} and decodes the updated record. Requires a bearer
// token.
func (h *httpShopClient) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(productPath(productID))
	if err != nil {
		return models.Product{}, fmt.Errorf("update product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	var updated models.Product
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Product{}, fmt.Errorf("decode updated product response: %w", err)
	}

	return updated, nil
}

// DeleteProduct implements [ShopClient]. It sends DELETE /api/products/{id}.
// Requires a bearer token.
func (h *httpShopClient) DeleteProduct(ctx context.Context, productID int64) error {
	resp, err := h.authedRequest(ctx).Delete(productPath(productID))
	if err != nil {
		return fmt.Errorf("delete product request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddToCart implements [ShopClient]. It POSTs the cart mutation to
// POST /api/cart. Requires a bearer token belonging to userID.
func (h *httpShopClient) AddToCart(ctx context.Context, userID, productID int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CartRequest{UserID: userID, ProductID: productID}).
		Post("/api/cart")
	if err != nil {
		return fmt.Errorf("add to cart request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveFromCart implements [ShopClient]. It sends the cart mutation to
// DELETE /api/cart. Requires a bearer token belonging to userID.
func (h *httpShopClient) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CartRequest{UserID: userID, ProductID: productID}).
		Delete("/api/cart")
	if err != nil {
		return fmt.Errorf("remove from cart request: %w", err)
	}

	return mapHTTPError(resp)
}

// ShowCart implements [ShopClient]. It GETs the cart contents from
// GET /api/cart/{userID} and decodes the response. Requires a bearer token
// belonging to userID.
func (h *httpShopClient) ShowCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/cart/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, fmt.Errorf("show cart request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.CartEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}

	return entries, nil
}

func (h *httpShopClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func productPath(productID int64) string {
	return "/api/products/" + strconv.FormatInt(productID, 10)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parseUserIDFromJWT extracts the subject claim without verifying the
// signature. The client does not hold the signing key; the server verifies
// the token on every authenticated request.
func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}

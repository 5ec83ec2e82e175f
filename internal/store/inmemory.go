package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/models"
)

// InMemory is a process-local store implementing [UserRepository],
// [ProductRepository], and [CartRepository] on shared maps. It backs the
// server when no database DSN is configured and serves as the reference
// implementation in tests.
//
// A single mutex guards every operation, so cart mutations observe the same
// all-or-nothing semantics as the SQL transactions.
type InMemory struct {
	mu sync.Mutex

	users         map[int64]models.User
	emails        map[string]int64
	products      map[int64]models.Product
	carts         map[int64]map[int64]int64
	nextUserID    int64
	nextProductID int64

	logger *logger.Logger
}

// NewInMemory constructs an empty [InMemory] store.
func NewInMemory(log *logger.Logger) *InMemory {
	log.Debug().Msg("creating in-memory store")
	return &InMemory{
		users:    make(map[int64]models.User),
		emails:   make(map[string]int64),
		products: make(map[int64]models.Product),
		carts:    make(map[int64]map[int64]int64),
		logger:   log,
	}
}

// CreateUser implements [UserRepository].
func (m *InMemory) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.emails[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	user.CreatedAt = time.Now()

	m.users[user.UserID] = user
	m.emails[user.Email] = user.UserID

	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (m *InMemory) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userID, exists := m.emails[email]
	if !exists {
		return models.User{}, ErrNoUserWasFound
	}

	return m.users[userID], nil
}

// FindUserByID implements [UserRepository].
func (m *InMemory) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// CreateProduct implements [ProductRepository].
func (m *InMemory) CreateProduct(_ context.Context, product models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextProductID++
	product.ProductID = m.nextProductID
	product.CreatedAt = time.Now()

	m.products[product.ProductID] = product

	return product, nil
}

// GetProducts implements [ProductRepository]. Pages are 1-based and ordered
// by product id; pages past the end of the catalog yield an empty slice.
func (m *InMemory) GetProducts(_ context.Context, page int64) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if page < 1 {
		page = 1
	}

	ids := make([]int64, 0, len(m.products))
	for id := range m.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	offset := (page - 1) * pageSize
	if offset >= int64(len(ids)) {
		return []models.Product{}, nil
	}

	end := offset + pageSize
	if end > int64(len(ids)) {
		end = int64(len(ids))
	}

	products := make([]models.Product, 0, pageSize)
	for _, id := range ids[offset:end] {
		products = append(products, m.products[id])
	}

	return products, nil
}

// GetProductByID implements [ProductRepository].
func (m *InMemory) GetProductByID(_ context.Context, productID int64) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, exists := m.products[productID]
	if !exists {
		return models.Product{}, ErrNoProductWasFound
	}

	return product, nil
}

// UpdateProduct implements [ProductRepository]. Only the fields set in the
// update are written.
func (m *InMemory) UpdateProduct(_ context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if update.Empty() {
		return models.Product{}, ErrEmptyProductUpdate
	}

	product, exists := m.products[productID]
	if !exists {
		return models.Product{}, ErrNoProductWasFound
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Quantity != nil {
		product.Quantity = *update.Quantity
	}
	if update.Category != nil {
		product.Category = *update.Category
	}

	m.products[productID] = product

	return product, nil
}

// DeleteProduct implements [ProductRepository]. Cart lines referencing the
// product are removed together with it.
func (m *InMemory) DeleteProduct(_ context.Context, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[productID]; !exists {
		return ErrNoProductWasFound
	}

	delete(m.products, productID)
	for _, cart := range m.carts {
		delete(cart, productID)
	}

	return nil
}

// AddItem implements [CartRepository].
func (m *InMemory) AddItem(_ context.Context, userID int64, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, exists := m.products[productID]
	if !exists {
		return ErrNoProductWasFound
	}
	if product.Quantity == 0 {
		return ErrProductOutOfStock
	}

	product.Quantity--
	m.products[productID] = product

	cart, exists := m.carts[userID]
	if !exists {
		cart = make(map[int64]int64)
		m.carts[userID] = cart
	}
	cart[productID]++

	return nil
}

// RemoveItem implements [CartRepository]. Stock is left untouched when the
// product does not exist or the user's cart has no line for it.
func (m *InMemory) RemoveItem(_ context.Context, userID int64, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, exists := m.products[productID]
	if !exists {
		return ErrNoProductWasFound
	}

	cart, exists := m.carts[userID]
	if !exists {
		return ErrProductNotInCart
	}
	if cart[productID] == 0 {
		return ErrProductNotInCart
	}

	cart[productID]--
	if cart[productID] == 0 {
		delete(cart, productID)
	}

	product.Quantity++
	m.products[productID] = product

	return nil
}

// GetCart implements [CartRepository]. Entries are ordered by product id.
func (m *InMemory) GetCart(_ context.Context, userID int64) ([]models.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart := m.carts[userID]

	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entries := make([]models.CartEntry, 0, len(ids))
	for _, id := range ids {
		product, exists := m.products[id]
		if !exists {
			continue
		}
		entries = append(entries, models.CartEntry{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Category:    product.Category,
			Quantity:    cart[id],
		})
	}

	return entries, nil
}

package service

import (
	"context"
	"errors"
	"sync"

	"inventory-api/internal/model"
	"inventory-api/internal/repository"

	"github.com/google/uuid"
)

// mockProductRepo keeps products in insertion order and enforces SKU uniqueness
// on Create like the real unique index does.
type mockProductRepo struct {
	mu       sync.Mutex
	products []model.Product

	hideSKUs   bool // FindBySKU never finds anything, as if a concurrent insert raced us
	failWith   error
	updates    int
	pageCalls  int
	lastOffset int
	lastLimit  int
}

func (m *mockProductRepo) Create(_ context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.products {
		if existing.SKU == p.SKU {
			return repository.ErrDuplicate
		}
	}
	p.ID = uuid.New()
	m.products = append(m.products, *p)
	return nil
}

func (m *mockProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if !m.hideSKUs {
		for i := range m.products {
			if m.products[i].SKU == sku {
				p := m.products[i]
				return &p, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockProductRepo) FindPage(_ context.Context, offset, limit int) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageCalls++
	m.lastOffset, m.lastLimit = offset, limit
	if m.failWith != nil {
		return nil, m.failWith
	}
	if offset >= len(m.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.products) {
		end = len(m.products)
	}
	return append([]model.Product(nil), m.products[offset:end]...), nil
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.products)), nil
}

func (m *mockProductRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int, updatedBy string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Quantity = quantity
			m.products[i].UpdatedBy = updatedBy
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User

	hideUsers bool
	failWith  error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.User)}
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[username]
	if !ok || m.hideUsers {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Username]; ok {
		return repository.ErrDuplicate
	}
	u.ID = uuid.New()
	m.users[u.Username] = *u
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID uuid.UUID, hashed string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, u := range m.users {
		if u.ID == userID {
			u.Password = hashed
			m.users[name] = u
			return nil
		}
	}
	return repository.ErrNotFound
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []interface{}
}

func (r *recordingNotifier) Publish(event interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(userID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + userID, nil
}

var errStoreDown = errors.New("connection refused")

package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Fakes en memoria para los tests del ledger. El mutex del store emula el
// lock de fila de PostgreSQL: Run lo mantiene durante todo el callback, así
// que las transacciones quedan serializadas igual que con SELECT FOR UPDATE.

type memStore struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	categories map[string]string // id -> nombre
	movements  map[string]*entity.Movement
	order      []string // ids de movimiento en orden de inserción
	audits     []*entity.AuditEntry
	idem       map[string]string

	failAuditOnce bool // inyecta un fallo de almacenamiento en la próxima escritura de auditoría
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]*entity.Product),
		categories: make(map[string]string),
		movements:  make(map[string]*entity.Movement),
		idem:       make(map[string]string),
	}
}

func (s *memStore) addProduct(id, name, categoryID string, qty int64) {
	s.products[id] = &entity.Product{ID: id, Name: name, CategoryID: categoryID, Quantity: qty}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.movements {
		m := *v
		c.movements[k] = &m
	}
	c.order = append([]string(nil), s.order...)
	for _, a := range s.audits {
		e := *a
		c.audits = append(c.audits, &e)
	}
	for k, v := range s.idem {
		c.idem[k] = v
	}
	return c
}

func (s *memStore) restore(c *memStore) {
	s.products = c.products
	s.categories = c.categories
	s.movements = c.movements
	s.order = c.order
	s.audits = c.audits
	s.idem = c.idem
}

// memTxRunner serializa las transacciones y revierte el estado si fn falla.
// idemRepo permite sustituir el repo de claves dentro de la tx.
type memTxRunner struct {
	store    *memStore
	idemRepo repository.IdempotencyKeyRepository
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	auditRepo repository.AuditRepository,
	idemRepo repository.IdempotencyKeyRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	before := r.store.snapshot()
	idemRepo := r.idemRepo
	if idemRepo == nil {
		idemRepo = &memIdemRepo{store: r.store}
	}
	err := fn(
		&memProductRepo{store: r.store},
		&memMovementRepo{store: r.store},
		&memAuditRepo{store: r.store},
		idemRepo,
	)
	if err != nil {
		r.store.restore(before)
		return err
	}
	return nil
}

// memProductRepo implementación en memoria. lockOnAccess se usa en el repo
// que vive fuera de la transacción; dentro de Run el mutex ya está tomado.
type memProductRepo struct {
	store        *memStore
	lockOnAccess bool
}

func (r *memProductRepo) lock() func() {
	if !r.lockOnAccess {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *memProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	defer r.lock()()
	if existing, ok := r.store.products[p.ID]; ok {
		qty := existing.Quantity
		cp := *p
		cp.Quantity = qty // quantity no se escribe por esta vía
		r.store.products[p.ID] = &cp
	}
	return nil
}

func (r *memProductRepo) UpdateQuantity(id string, quantity int64) error {
	defer r.lock()()
	if p, ok := r.store.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *memProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	defer r.lock()()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (r *memProductRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.store.products, id)
	return nil
}

type memMovementRepo struct {
	store *memStore
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.store.movements[m.ID] = &cp
	r.store.order = append(r.store.order, m.ID)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) List(productID string, _, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.store.order) - 1; i >= 0; i-- {
		m := r.store.movements[r.store.order[i]]
		if productID != "" && m.ProductID != productID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMovementRepo) CountByProduct(productID string) (int64, error) {
	var n int64
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type memAuditRepo struct {
	store *memStore
}

var errAuditDown = errors.New("audit store caído")

func (r *memAuditRepo) Create(e *entity.AuditEntry) error {
	if r.store.failAuditOnce {
		r.store.failAuditOnce = false
		return errAuditDown
	}
	cp := *e
	r.store.audits = append(r.store.audits, &cp)
	return nil
}

func (r *memAuditRepo) List(productID string, _, _ int) ([]*entity.AuditEntry, error) {
	var out []*entity.AuditEntry
	for _, e := range r.store.audits {
		if productID != "" && e.ProductID != productID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	// Más recientes primero; empates por id ascendente.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memAuditRepo) CountByProduct(productID string) (int64, error) {
	var n int64
	for _, e := range r.store.audits {
		if e.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type memIdemRepo struct {
	store *memStore
}

func (r *memIdemRepo) GetMovementID(key string) (string, error) {
	return r.store.idem[key], nil
}

func (r *memIdemRepo) Save(key, movementID string) error {
	if _, ok := r.store.idem[key]; ok {
		return domain.ErrDuplicate
	}
	r.store.idem[key] = movementID
	return nil
}

// staleIdemRepo simula una lectura desfasada: las primeras `stale` llamadas a
// GetMovementID no ven una clave ya confirmada por otra transacción.
type staleIdemRepo struct {
	inner *memIdemRepo
	stale int
}

func (r *staleIdemRepo) GetMovementID(key string) (string, error) {
	if r.stale > 0 {
		r.stale--
		return "", nil
	}
	return r.inner.GetMovementID(key)
}

func (r *staleIdemRepo) Save(key, movementID string) error {
	return r.inner.Save(key, movementID)
}

// memReportRepo calcula los reportes directamente del store.
type memReportRepo struct {
	store *memStore
}

func (r *memReportRepo) LowStock(_ context.Context, threshold int64) ([]repository.LowStockItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []repository.LowStockItem
	for _, p := range r.store.products {
		if p.Quantity < threshold {
			out = append(out, repository.LowStockItem{ProductID: p.ID, Name: p.Name, Quantity: p.Quantity})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *memReportRepo) CategoryStats(_ context.Context) ([]repository.CategoryStatsRow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	agg := make(map[string]*repository.CategoryStatsRow)
	for _, p := range r.store.products {
		name := r.store.categories[p.CategoryID]
		row, ok := agg[name]
		if !ok {
			row = &repository.CategoryStatsRow{CategoryName: name}
			agg[name] = row
		}
		row.TotalProducts++
		row.TotalQuantity += p.Quantity
	}
	var out []repository.CategoryStatsRow
	for _, row := range agg {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryName < out[j].CategoryName })
	return out, nil
}

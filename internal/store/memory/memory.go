// Package memory provides an in-memory implementation of the store
// interfaces. It enforces the same unique and foreign-key constraints as the
// PostgreSQL schema and is safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
)

// Store holds all entities behind a single lock so cross-entity constraints
// are checked atomically with the write.
type Store struct {
	mu           sync.RWMutex
	nextID       map[string]int64
	users        map[int64]domain.User
	categories   map[int64]domain.Category
	assets       map[int64]domain.Asset
	transactions map[int64]domain.Transaction
	now          func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nextID:       map[string]int64{},
		users:        map[int64]domain.User{},
		categories:   map[int64]domain.Category{},
		assets:       map[int64]domain.Asset{},
		transactions: map[int64]domain.Transaction{},
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Users returns the store.UserStore view of s.
func (s *Store) Users() store.UserStore { return userStore{s} }

// Categories returns the store.CategoryStore view of s.
func (s *Store) Categories() store.CategoryStore { return categoryStore{s} }

// Assets returns the store.AssetStore view of s.
func (s *Store) Assets() store.AssetStore { return assetStore{s} }

// Transactions returns the store.TransactionStore view of s.
func (s *Store) Transactions() store.TransactionStore { return transactionStore{s} }

// allocate must be called with mu held for writing.
func (s *Store) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedKeys[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type userStore struct{ s *Store }

var _ store.UserStore = userStore{}

func (u userStore) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if u.emailTaken(user.Email, 0) {
		return store.ErrEmailExists
	}
	now := u.s.now()
	user.ID = u.s.allocate("users")
	user.CreatedAt, user.UpdatedAt = now, now
	u.s.users[user.ID] = *user
	return nil
}

// emailTaken must be called with mu held. Emails compare case-insensitively.
func (u userStore) emailTaken(email string, exceptID int64) bool {
	for id, existing := range u.s.users {
		if id != exceptID && strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}

func (u userStore) List(ctx context.Context) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	users := make([]*domain.User, 0, len(u.s.users))
	for _, id := range sortedKeys(u.s.users) {
		user := u.s.users[id]
		users = append(users, &user)
	}
	return users, nil
}

func (u userStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

func (u userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, id := range sortedKeys(u.s.users) {
		user := u.s.users[id]
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (u userStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	_, ok := u.s.users[id]
	return ok, nil
}

func (u userStore) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	existing, ok := u.s.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	if u.emailTaken(user.Email, user.ID) {
		return store.ErrEmailExists
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = u.s.now()
	u.s.users[user.ID] = *user
	return nil
}

func (u userStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, ok := u.s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	for _, a := range u.s.assets {
		if a.OwnerID == id {
			return store.ErrReferenced
		}
	}
	delete(u.s.users, id)
	return nil
}

type categoryStore struct{ s *Store }

var _ store.CategoryStore = categoryStore{}

func (c categoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if c.nameTaken(category.Name, 0) {
		return store.ErrCategoryNameExists
	}
	now := c.s.now()
	category.ID = c.s.allocate("categories")
	category.CreatedAt, category.UpdatedAt = now, now
	c.s.categories[category.ID] = *category
	return nil
}

func (c categoryStore) nameTaken(name string, exceptID int64) bool {
	for id, existing := range c.s.categories {
		if id != exceptID && existing.Name == name {
			return true
		}
	}
	return false
}

func (c categoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(c.s.categories))
	for _, id := range sortedKeys(c.s.categories) {
		category := c.s.categories[id]
		categories = append(categories, &category)
	}
	return categories, nil
}

func (c categoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	category, ok := c.s.categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return &category, nil
}

func (c categoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	for _, category := range c.s.categories {
		if category.Name == name {
			return &category, nil
		}
	}
	return nil, store.ErrCategoryNotFound
}

func (c categoryStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	_, ok := c.s.categories[id]
	return ok, nil
}

func (c categoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	existing, ok := c.s.categories[category.ID]
	if !ok {
		return store.ErrCategoryNotFound
	}
	if c.nameTaken(category.Name, category.ID) {
		return store.ErrCategoryNameExists
	}
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = c.s.now()
	c.s.categories[category.ID] = *category
	return nil
}

func (c categoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	for _, a := range c.s.assets {
		if a.CategoryID == id {
			return store.ErrReferenced
		}
	}
	delete(c.s.categories, id)
	return nil
}

type assetStore struct{ s *Store }

var _ store.AssetStore = assetStore{}

func (a assetStore) Create(ctx context.Context, asset *domain.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if err := a.checkConstraints(asset, 0); err != nil {
		return err
	}
	now := a.s.now()
	asset.ID = a.s.allocate("assets")
	asset.CreatedAt, asset.UpdatedAt = now, now
	a.s.assets[asset.ID] = *asset
	return nil
}

// checkConstraints must be called with mu held.
func (a assetStore) checkConstraints(asset *domain.Asset, exceptID int64) error {
	if _, ok := a.s.users[asset.OwnerID]; !ok {
		return store.ErrInvalidReference
	}
	if _, ok := a.s.categories[asset.CategoryID]; !ok {
		return store.ErrInvalidReference
	}
	key := asset.Key()
	for id, existing := range a.s.assets {
		if id != exceptID && existing.Key().Matches(key) {
			return store.ErrAssetExists
		}
	}
	return nil
}

func (a assetStore) List(ctx context.Context) ([]*domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	assets := make([]*domain.Asset, 0, len(a.s.assets))
	for _, id := range sortedKeys(a.s.assets) {
		asset := a.s.assets[id]
		assets = append(assets, &asset)
	}
	return assets, nil
}

func (a assetStore) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	asset, ok := a.s.assets[id]
	if !ok {
		return nil, store.ErrAssetNotFound
	}
	return &asset, nil
}

func (a assetStore) GetByDedupKey(ctx context.Context, key domain.DedupKey) (*domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	for _, id := range sortedKeys(a.s.assets) {
		asset := a.s.assets[id]
		if asset.Key().Matches(key) {
			return &asset, nil
		}
	}
	return nil, store.ErrAssetNotFound
}

func (a assetStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	_, ok := a.s.assets[id]
	return ok, nil
}

func (a assetStore) Update(ctx context.Context, asset *domain.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	existing, ok := a.s.assets[asset.ID]
	if !ok {
		return store.ErrAssetNotFound
	}
	if err := a.checkConstraints(asset, asset.ID); err != nil {
		return err
	}
	asset.CreatedAt = existing.CreatedAt
	asset.UpdatedAt = a.s.now()
	a.s.assets[asset.ID] = *asset
	return nil
}

func (a assetStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.assets[id]; !ok {
		return store.ErrAssetNotFound
	}
	for _, tx := range a.s.transactions {
		if tx.AssetID == id {
			return store.ErrReferenced
		}
	}
	delete(a.s.assets, id)
	return nil
}

type transactionStore struct{ s *Store }

var _ store.TransactionStore = transactionStore{}

func (t transactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.assets[tx.AssetID]; !ok {
		return store.ErrInvalidReference
	}
	now := t.s.now()
	tx.ID = t.s.allocate("transactions")
	tx.CreatedAt, tx.UpdatedAt = now, now
	t.s.transactions[tx.ID] = *tx
	return nil
}

func (t transactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	txs := make([]*domain.Transaction, 0, len(t.s.transactions))
	for _, id := range sortedKeys(t.s.transactions) {
		tx := t.s.transactions[id]
		txs = append(txs, &tx)
	}
	return txs, nil
}

func (t transactionStore) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	tx, ok := t.s.transactions[id]
	if !ok {
		return nil, store.ErrTransactionNotFound
	}
	return &tx, nil
}

func (t transactionStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	_, ok := t.s.transactions[id]
	return ok, nil
}

func (t transactionStore) Update(ctx context.Context, tx *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	existing, ok := t.s.transactions[tx.ID]
	if !ok {
		return store.ErrTransactionNotFound
	}
	if _, ok := t.s.assets[tx.AssetID]; !ok {
		return store.ErrInvalidReference
	}
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedAt = t.s.now()
	t.s.transactions[tx.ID] = *tx
	return nil
}

func (t transactionStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.transactions[id]; !ok {
		return store.ErrTransactionNotFound
	}
	delete(t.s.transactions, id)
	return nil
}

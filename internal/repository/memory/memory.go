// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dtroode/itemgraph/internal/model"
)

// Ensure interfaces are met.
var (
	_ model.Store     = (*Store)(nil)
	_ model.UserStore = (*userRepo)(nil)
	_ model.ItemStore = (*itemRepo)(nil)
)

type state struct {
	users map[int64]model.User
	items map[int64]model.Item

	userIDCounter int64
	itemIDCounter int64
}

func (s *state) clone() *state {
	c := &state{
		users:         make(map[int64]model.User, len(s.users)),
		items:         make(map[int64]model.Item, len(s.items)),
		userIDCounter: s.userIDCounter,
		itemIDCounter: s.itemIDCounter,
	}
	for id, u := range s.users {
		c.users[id] = u
	}
	for id, it := range s.items {
		c.items[id] = it
	}
	return c
}

// Store keeps users and items in maps guarded by a mutex.
//
// InTx works on a copy of the data that replaces the live data on commit.
// Transactions are serialized; writes made outside InTx while a transaction
// is open are lost when it commits.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data *state
	now  func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		data: &state{
			users: make(map[int64]model.User),
			items: make(map[int64]model.Item),
		},
		now: time.Now,
	}
}

// Users returns the user repository.
func (s *Store) Users() model.UserStore {
	return &userRepo{s: s}
}

// Items returns the item repository.
func (s *Store) Items() model.ItemStore {
	return &itemRepo{s: s}
}

// InTx runs fn against a snapshot of the store and publishes it when fn succeeds.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx model.Store) error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	tx := &Store{data: s.data.clone(), now: s.now}
	s.mu.Unlock()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = tx.data
	s.mu.Unlock()
	return nil
}

type userRepo struct {
	s *Store
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.data.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.data.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]model.User, 0, len(r.s.data.users))
	for _, u := range r.s.data.users {
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.NameLike != "" && !containsFold(u.Name, filter.NameLike) {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.data.users {
		if u.Email == user.Email {
			return model.User{}, fmt.Errorf("%w: user with email %s", model.ErrExists, user.Email)
		}
	}

	r.s.data.userIDCounter++
	now := r.s.now().UTC()
	user.ID = r.s.data.userIDCounter
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.data.users[user.ID] = user
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.users[user.ID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	for _, u := range r.s.data.users {
		if u.ID != user.ID && u.Email == user.Email {
			return model.User{}, fmt.Errorf("%w: user with email %s", model.ErrExists, user.Email)
		}
	}

	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = r.s.now().UTC()
	r.s.data.users[user.ID] = user
	return user, nil
}

// Delete removes the user and, like the SQL schema, every item it owns.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.data.users, id)
	for itemID, it := range r.s.data.items {
		if it.OwnerID == id {
			delete(r.s.data.items, itemID)
		}
	}
	return nil
}

type itemRepo struct {
	s *Store
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.data.items[id]
	if !ok {
		return model.Item{}, model.ErrNotFound
	}
	return it, nil
}

func (r *itemRepo) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := make([]model.Item, 0, len(r.s.data.items))
	for _, it := range r.s.data.items {
		if filter.OwnerID != 0 && it.OwnerID != filter.OwnerID {
			continue
		}
		if filter.TitleLike != "" && (it.Title == nil || !containsFold(*it.Title, filter.TitleLike)) {
			continue
		}
		if filter.DescriptionLike != "" && (it.Description == nil || !containsFold(*it.Description, filter.DescriptionLike)) {
			continue
		}
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, item model.Item) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[item.OwnerID]; !ok {
		return model.Item{}, fmt.Errorf("%w: owner with id %d", model.ErrNotFound, item.OwnerID)
	}

	r.s.data.itemIDCounter++
	item.ID = r.s.data.itemIDCounter
	item.PostedOn = model.DateOnly(item.PostedOn)
	item.Title = copyString(item.Title)
	item.Description = copyString(item.Description)
	r.s.data.items[item.ID] = item
	return item, nil
}

func (r *itemRepo) Update(ctx context.Context, item model.Item) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.items[item.ID]; !ok {
		return model.Item{}, model.ErrNotFound
	}
	if _, ok := r.s.data.users[item.OwnerID]; !ok {
		return model.Item{}, fmt.Errorf("%w: owner with id %d", model.ErrNotFound, item.OwnerID)
	}

	item.PostedOn = model.DateOnly(item.PostedOn)
	item.Title = copyString(item.Title)
	item.Description = copyString(item.Description)
	r.s.data.items[item.ID] = item
	return item, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.items[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.data.items, id)
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

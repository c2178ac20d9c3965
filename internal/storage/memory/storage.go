package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SiddheshD91/PPL2026/internal/dependencies/clock"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Documents are stored by value and copied on the way in and out, so
// callers never share state with the store.
type Storage struct {
	mu sync.RWMutex

	clock clock.Clock

	players    map[model.PlayerID]model.Player
	categories map[model.CategoryID]model.Category
	admins     map[string]model.Admin
}

// New creates a new in-memory storage instance
func New(clk clock.Clock) *Storage {
	return &Storage{
		clock:      clk,
		players:    make(map[model.PlayerID]model.Player),
		categories: make(map[model.CategoryID]model.Category),
		admins:     make(map[string]model.Admin),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) (model.PlayerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player.ID = model.PlayerID(uuid.NewString())
	player.CreatedAt = s.clock.Now()
	s.players[player.ID] = *player
	return player.ID, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*model.Player, 0, len(s.players))
	for id := range s.players {
		player := s.players[id]
		players = append(players, &player)
	}
	return players, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	update.Apply(&player)
	s.players[id] = player
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.players, id)
	return nil
}

// Category operations

func (s *Storage) CreateCategory(ctx context.Context, category *model.Category) (model.CategoryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = model.CategoryID(uuid.NewString())
	category.CreatedAt = s.clock.Now()
	s.categories[category.ID] = copyCategory(*category)
	return category.ID, nil
}

func (s *Storage) GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, model.ErrCategoryNotFound
	}
	c := copyCategory(category)
	return &c, nil
}

func (s *Storage) ListCategories(ctx context.Context) ([]*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*model.Category, 0, len(s.categories))
	for id := range s.categories {
		c := copyCategory(s.categories[id])
		categories = append(categories, &c)
	}
	return categories, nil
}

// UpdateCategory runs mutate under the store lock, so concurrent membership
// updates on the same category cannot lose writes.
func (s *Storage) UpdateCategory(ctx context.Context, id model.CategoryID, mutate func(*model.Category) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return model.ErrCategoryNotFound
	}

	c := copyCategory(category)
	if err := mutate(&c); err != nil {
		return err
	}
	s.categories[id] = c
	return nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id model.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, id)
	return nil
}

// Admin operations

func (s *Storage) SaveAdmin(ctx context.Context, admin *model.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admins[admin.Email] = *admin
	return nil
}

func (s *Storage) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[email]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	return &admin, nil
}

func copyCategory(c model.Category) model.Category {
	players := make([]model.PlayerID, len(c.Players))
	copy(players, c.Players)
	c.Players = players
	return c
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SiddheshD91/PPL2026/internal/dependencies/clock"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/storage"
)

// categoryUpdateRetries bounds optimistic retry attempts when concurrent
// admins race on the same category document
const categoryUpdateRetries = 5

// Storage is a Redis-backed implementation of the storage interface.
// Documents are stored as JSON strings, with plain SETs of keys as
// per-collection indexes for full scans.
type Storage struct {
	client *redis.Client
	clock  clock.Clock
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config, clk clock.Clock) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotConfigured, err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotConfigured, err)
	}

	return &Storage{
		client: client,
		clock:  clk,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, clk clock.Clock) *Storage {
	return &Storage{
		client: client,
		clock:  clk,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) (model.PlayerID, error) {
	player.ID = model.PlayerID(uuid.NewString())
	player.CreatedAt = s.clock.Now()

	data, err := json.Marshal(player)
	if err != nil {
		return "", err
	}

	key := playerKey(player.ID)
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playersIndexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", wrapErr(err, model.ErrPlayerNotFound)
	}
	return player.ID, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		return nil, wrapErr(err, model.ErrPlayerNotFound)
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index entry for a deleted document
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}
	return players, nil
}

// UpdatePlayer merges a partial update into the stored document. The read
// and write are not transactional; player records are single-writer in the
// admin flows so that is acceptable here, unlike categories.
func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	update.Apply(player)
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, playerKey(id), data, 0).Err(); err != nil {
		return wrapErr(err, model.ErrPlayerNotFound)
	}
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	key := playerKey(id)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, playersIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Category operations

func (s *Storage) CreateCategory(ctx context.Context, category *model.Category) (model.CategoryID, error) {
	category.ID = model.CategoryID(uuid.NewString())
	category.CreatedAt = s.clock.Now()

	data, err := json.Marshal(category)
	if err != nil {
		return "", err
	}

	key := categoryKey(category.ID)
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, categoriesIndexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", wrapErr(err, model.ErrCategoryNotFound)
	}
	return category.ID, nil
}

func (s *Storage) GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error) {
	data, err := s.client.Get(ctx, categoryKey(id)).Bytes()
	if err != nil {
		return nil, wrapErr(err, model.ErrCategoryNotFound)
	}

	var category model.Category
	if err := json.Unmarshal(data, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Storage) ListCategories(ctx context.Context) ([]*model.Category, error) {
	keys, err := s.client.SMembers(ctx, categoriesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Category{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	categories := make([]*model.Category, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var category model.Category
		if err := json.Unmarshal([]byte(val.(string)), &category); err != nil {
			continue
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

// UpdateCategory applies mutate inside a WATCH/MULTI optimistic transaction,
// retrying on conflict, so two admins racing on the same category cannot
// lose each other's membership changes.
func (s *Storage) UpdateCategory(ctx context.Context, id model.CategoryID, mutate func(*model.Category) error) error {
	key := categoryKey(id)

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return wrapErr(err, model.ErrCategoryNotFound)
		}

		var category model.Category
		if err := json.Unmarshal(data, &category); err != nil {
			return err
		}

		if err := mutate(&category); err != nil {
			return err
		}

		out, err := json.Marshal(&category)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}

	for i := 0; i < categoryUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("category update kept conflicting after %d attempts: %w", categoryUpdateRetries, redis.TxFailedErr)
}

func (s *Storage) DeleteCategory(ctx context.Context, id model.CategoryID) error {
	key := categoryKey(id)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, categoriesIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Admin operations

func (s *Storage) SaveAdmin(ctx context.Context, admin *model.Admin) error {
	data, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, adminKey(admin.Email), data, 0).Err()
}

func (s *Storage) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	data, err := s.client.Get(ctx, adminKey(email)).Bytes()
	if err != nil {
		return nil, wrapErr(err, model.ErrAdminNotFound)
	}

	var admin model.Admin
	if err := json.Unmarshal(data, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// wrapErr maps redis errors onto the model taxonomy: missing keys become
// the given notFound sentinel, ACL rejections become ErrPermissionDenied.
func wrapErr(err error, notFound error) error {
	if errors.Is(err, redis.Nil) {
		return notFound
	}
	if strings.HasPrefix(err.Error(), "NOPERM") {
		return fmt.Errorf("%w: %v", model.ErrPermissionDenied, err)
	}
	return err
}

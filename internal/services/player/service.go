package player

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SiddheshD91/PPL2026/internal/dependencies/clock"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/services/photo"
	"github.com/SiddheshD91/PPL2026/internal/storage"
)

// T-shirt sizes are numeric (chest inches), bounded by the kit supplier
const (
	MinTshirtSize = 10
	MaxTshirtSize = 50
)

// Service handles player registration, edits and lookup
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// RegisterInput is the input for registering a new player
type RegisterInput struct {
	Name             string
	TshirtSize       int
	DOB              string
	Photo            []byte
	PhotoContentType string
}

// UpdateInput is a partial edit of an existing player. Nil/empty fields
// are left unchanged.
type UpdateInput struct {
	Name             *string
	TshirtSize       *int
	DOB              *string
	Photo            []byte
	PhotoContentType string
}

// Register validates the registration form, snapshots the player's age
// from their date of birth, encodes the photo and creates the record.
// All validation happens before any store write.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, model.NewValidationError("name", "name is required")
	}
	if input.TshirtSize < MinTshirtSize || input.TshirtSize > MaxTshirtSize {
		return nil, model.NewValidationError("tshirtSize", "t-shirt size must be a number between 10 and 50")
	}

	age, err := s.snapshotAge(input.DOB)
	if err != nil {
		return nil, err
	}

	photoURL, err := photo.EncodeDataURL(input.Photo, input.PhotoContentType)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		Name:       name,
		PhotoURL:   photoURL,
		TshirtSize: input.TshirtSize,
		DOB:        input.DOB,
		Age:        age,
	}

	id, err := s.storage.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(id)),
		slog.String("name", player.Name),
	)
	return player, nil
}

// Update applies a partial edit. Supplying a new date of birth recomputes
// the age snapshot at that moment; omitted fields keep their stored
// values. An empty update succeeds without touching the store.
func (s *Service) Update(ctx context.Context, id model.PlayerID, input UpdateInput) error {
	if err := s.ready(); err != nil {
		return err
	}

	var update model.PlayerUpdate

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return model.NewValidationError("name", "name is required")
		}
		update.Name = &name
	}

	if input.TshirtSize != nil {
		if *input.TshirtSize < MinTshirtSize || *input.TshirtSize > MaxTshirtSize {
			return model.NewValidationError("tshirtSize", "t-shirt size must be a number between 10 and 50")
		}
		update.TshirtSize = input.TshirtSize
	}

	if input.DOB != nil {
		age, err := s.snapshotAge(*input.DOB)
		if err != nil {
			return err
		}
		update.DOB = input.DOB
		update.Age = &age
	}

	if len(input.Photo) > 0 {
		photoURL, err := photo.EncodeDataURL(input.Photo, input.PhotoContentType)
		if err != nil {
			return err
		}
		update.PhotoURL = &photoURL
	}

	if update.IsEmpty() {
		return nil
	}

	if err := s.storage.UpdatePlayer(ctx, id, update); err != nil {
		return err
	}

	s.logger.Info("player updated", slog.String("player_id", string(id)))
	return nil
}

// Get retrieves a player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.storage.GetPlayer(ctx, id)
}

// List returns all players, in no particular order
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.storage.ListPlayers(ctx)
}

// Search filters the full player set by case-insensitive substring match
// on the name. A blank term returns everything.
func (s *Service) Search(ctx context.Context, term string) ([]*model.Player, error) {
	players, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return players, nil
	}

	term = strings.ToLower(term)
	matched := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// snapshotAge validates the date of birth and computes the age as of now
func (s *Service) snapshotAge(dob string) (int, error) {
	birth, err := model.ParseDOB(dob)
	if err != nil {
		return 0, model.NewValidationError("dob", "date of birth must be a valid YYYY-MM-DD date")
	}

	now := s.clock.Now()
	if birth.After(now) {
		return 0, model.NewValidationError("dob", "date of birth cannot be in the future")
	}
	return model.AgeOn(birth, now), nil
}

func (s *Service) ready() error {
	if s.storage == nil {
		return model.ErrNotConfigured
	}
	return nil
}

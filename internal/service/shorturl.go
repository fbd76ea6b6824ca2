package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"linkgate/internal/model"
	"linkgate/internal/repository"
	"linkgate/internal/validate"

	"github.com/rs/zerolog/log"
)

// MaxCreateAttempts bounds code generation retries on collisions
const MaxCreateAttempts = 5

var (
	// ErrLabelRequired is returned when a record is created without a label
	ErrLabelRequired = errors.New("label is required")
	// ErrInvalidURL is returned when a destination is not an http(s) URL
	ErrInvalidURL = errors.New("invalid longUrl")
	// ErrForbidden is returned when the requester neither owns the record nor is an admin
	ErrForbidden = errors.New("forbidden")
	// ErrCodeSpaceExhausted is returned when no free code was found within MaxCreateAttempts
	ErrCodeSpaceExhausted = errors.New("could not generate unique code")
)

// ShortURLService owns the lifecycle of short URL records
type ShortURLService struct {
	store     Store
	generator CodeGenerator
	now       func() time.Time
}

// NewShortURLService creates a new ShortURLService
func NewShortURLService(store Store, generator CodeGenerator) *ShortURLService {
	return &ShortURLService{
		store:     store,
		generator: generator,
		now:       time.Now,
	}
}

// GetByCode returns the record for code, or nil when there is none
func (s *ShortURLService) GetByCode(ctx context.Context, code string) (*model.ShortURL, error) {
	return s.store.FindByCode(ctx, code)
}

// ListByOwner returns every record created by owner. Visibility rules are
// applied by the caller.
func (s *ShortURLService) ListByOwner(ctx context.Context, owner string) ([]model.ShortURL, error) {
	return s.store.FindByOwner(ctx, owner)
}

// Create validates the input and inserts a record under a fresh code,
// drawing a new code after each collision.
func (s *ShortURLService) Create(ctx context.Context, in model.CreateInput) (*model.ShortURL, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, ErrLabelRequired
	}
	if !validate.IsValidHTTPURL(in.LongURL) {
		return nil, ErrInvalidURL
	}

	for attempt := 1; attempt <= MaxCreateAttempts; attempt++ {
		code, err := s.generator.NewCode(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		rec := &model.ShortURL{
			Code:      code,
			Label:     label,
			LongURL:   in.LongURL,
			ExpiresAt: in.ExpiresAt,
			CreatedBy: in.CreatedBy,
			UpdatedBy: in.CreatedBy,
		}

		err = s.store.Insert(ctx, rec)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			return nil, fmt.Errorf("failed to save short url: %w", err)
		}

		log.Debug().Str("code", code).Int("attempt", attempt).Msg("Short code collision, retrying")
	}

	return nil, ErrCodeSpaceExhausted
}

// Update applies a partial update. A missing record yields (nil, nil).
func (s *ShortURLService) Update(ctx context.Context, in model.UpdateInput, requester string, isAdmin bool) (*model.ShortURL, error) {
	existing, err := s.store.FindByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if !canModify(existing, requester, isAdmin) {
		return nil, ErrForbidden
	}
	if in.LongURL != nil && !validate.IsValidHTTPURL(*in.LongURL) {
		return nil, ErrInvalidURL
	}

	changes := model.ShortURLChanges{
		Label:     existing.Label,
		LongURL:   existing.LongURL,
		ExpiresAt: existing.ExpiresAt,
		UpdatedBy: in.UpdatedBy,
	}
	if in.Label != nil {
		changes.Label = *in.Label
	}
	if in.LongURL != nil {
		changes.LongURL = *in.LongURL
	}
	if in.ExpiresAt.Set {
		changes.ExpiresAt = in.ExpiresAt.Value
	}

	return s.store.UpdateByCode(ctx, in.Code, changes)
}

// Remove deletes the record for code and reports whether it existed
func (s *ShortURLService) Remove(ctx context.Context, code, requester string, isAdmin bool) (bool, error) {
	existing, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if !canModify(existing, requester, isAdmin) {
		return false, ErrForbidden
	}
	if err := s.store.DeleteByCode(ctx, code); err != nil {
		return false, err
	}
	return true, nil
}

// IncrementStatsOnRedirect counts one click on code at the current time.
// It bypasses ownership.
func (s *ShortURLService) IncrementStatsOnRedirect(ctx context.Context, code string) (*model.ShortURL, error) {
	return s.IncrementStatsAt(ctx, code, s.now())
}

// IncrementStatsAt counts one click on code made at the given time. A zero
// time counts as now.
func (s *ShortURLService) IncrementStatsAt(ctx context.Context, code string, at time.Time) (*model.ShortURL, error) {
	if at.IsZero() {
		at = s.now()
	}
	return s.store.IncrementStats(ctx, code, at.UTC())
}

// RecordClick implements ClickRecorder by applying the increment directly
func (s *ShortURLService) RecordClick(ctx context.Context, code string) error {
	_, err := s.IncrementStatsOnRedirect(ctx, code)
	return err
}

func canModify(rec *model.ShortURL, requester string, isAdmin bool) bool {
	return isAdmin || (requester != "" && rec.CreatedBy == requester)
}

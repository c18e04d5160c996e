package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campaigen/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNameRequired is returned when an influencer is created without a name.
var ErrNameRequired = errors.New("influencer name is required")

// InfluencerStore is the persistence InfluencerService depends on.
type InfluencerStore interface {
	Add(ctx context.Context, inf models.Influencer) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Influencer, bool, error)
	GetAll(ctx context.Context) ([]models.Influencer, error)
	Update(ctx context.Context, inf models.Influencer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InfluencerService maps influencer DTOs to records and owns id assignment.
type InfluencerService struct {
	store InfluencerStore
	log   logrus.FieldLogger
}

// NewInfluencerService creates a service over store.
func NewInfluencerService(store InfluencerStore, log logrus.FieldLogger) *InfluencerService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &InfluencerService{
		store: store,
		log:   log.WithField("component", "influencer_service"),
	}
}

// CreateInfluencer assigns a fresh id and persists the influencer.
func (s *InfluencerService) CreateInfluencer(ctx context.Context, dto CreateInfluencerDTO) (InfluencerDTO, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return InfluencerDTO{}, ErrNameRequired
	}

	inf := models.Influencer{
		ID:       uuid.New(),
		Name:     dto.Name,
		Handle:   toNullString(dto.Handle),
		Platform: toNullString(dto.Platform),
		Niche:    toNullString(dto.Niche),
	}

	if err := s.store.Add(ctx, inf); err != nil {
		return InfluencerDTO{}, fmt.Errorf("create influencer: %w", err)
	}

	s.log.WithFields(logrus.Fields{"id": inf.ID, "name": inf.Name}).Info("influencer created")
	return influencerToDTO(inf), nil
}

// GetInfluencer returns the influencer with id; found is false when it does not exist.
func (s *InfluencerService) GetInfluencer(ctx context.Context, id uuid.UUID) (InfluencerDTO, bool, error) {
	inf, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return InfluencerDTO{}, false, fmt.Errorf("get influencer: %w", err)
	}
	if !found {
		return InfluencerDTO{}, false, nil
	}
	return influencerToDTO(inf), true, nil
}

// ListInfluencers returns every influencer in store order.
func (s *InfluencerService) ListInfluencers(ctx context.Context) ([]InfluencerDTO, error) {
	infs, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list influencers: %w", err)
	}

	dtos := make([]InfluencerDTO, 0, len(infs))
	for _, inf := range infs {
		dtos = append(dtos, influencerToDTO(inf))
	}
	return dtos, nil
}

// UpdateInfluencer replaces the stored influencer with dto.ID.
func (s *InfluencerService) UpdateInfluencer(ctx context.Context, dto InfluencerDTO) error {
	inf := models.Influencer{
		ID:       dto.ID,
		Name:     dto.Name,
		Handle:   toNullString(dto.Handle),
		Platform: toNullString(dto.Platform),
		Niche:    toNullString(dto.Niche),
	}
	if err := s.store.Update(ctx, inf); err != nil {
		return fmt.Errorf("update influencer: %w", err)
	}
	return nil
}

// DeleteInfluencer removes the influencer with id, if any.
func (s *InfluencerService) DeleteInfluencer(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete influencer: %w", err)
	}
	return nil
}

func influencerToDTO(inf models.Influencer) InfluencerDTO {
	return InfluencerDTO{
		ID:       inf.ID,
		Name:     inf.Name,
		Handle:   fromNullString(inf.Handle),
		Platform: fromNullString(inf.Platform),
		Niche:    fromNullString(inf.Niche),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return models.NullString(*s)
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

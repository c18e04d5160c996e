package services

import (
	"context"
	"fmt"
	"time"

	"campaigen/internal/models"
	"campaigen/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by updates that target a missing record.
var ErrNotFound = storage.ErrNotFound

// SpendRecordStore is the persistence SpendTrackingService depends on.
type SpendRecordStore interface {
	Add(ctx context.Context, r models.SpendRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (models.SpendRecord, bool, error)
	GetAll(ctx context.Context) ([]models.SpendRecord, error)
	Update(ctx context.Context, r models.SpendRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SpendTrackingService maps spend DTOs to records and owns id assignment.
type SpendTrackingService struct {
	store SpendRecordStore
	log   logrus.FieldLogger
	now   func() time.Time
}

// NewSpendTrackingService creates a service over store.
func NewSpendTrackingService(store SpendRecordStore, log logrus.FieldLogger) *SpendTrackingService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SpendTrackingService{
		store: store,
		log:   log.WithField("component", "spend_service"),
		now:   time.Now,
	}
}

// CreateSpendRecord assigns a fresh id, defaults the date to now (UTC) and persists the record.
func (s *SpendTrackingService) CreateSpendRecord(ctx context.Context, dto CreateSpendRecordDTO) (SpendRecordDTO, error) {
	date := s.now()
	if dto.Date != nil {
		date = *dto.Date
	}

	rec := models.SpendRecord{
		ID:          uuid.New(),
		Date:        date.UTC(),
		Amount:      dto.Amount,
		Description: toNullString(dto.Description),
		Category:    toNullString(dto.Category),
	}

	if err := s.store.Add(ctx, rec); err != nil {
		return SpendRecordDTO{}, fmt.Errorf("create spend record: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"id":     rec.ID,
		"amount": rec.Amount.String(),
		"date":   rec.Date.Format(time.RFC3339),
	}).Info("spend record created")

	return spendRecordToDTO(rec), nil
}

// GetSpendRecord returns the record with id; found is false when it does not exist.
func (s *SpendTrackingService) GetSpendRecord(ctx context.Context, id uuid.UUID) (SpendRecordDTO, bool, error) {
	rec, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return SpendRecordDTO{}, false, fmt.Errorf("get spend record: %w", err)
	}
	if !found {
		return SpendRecordDTO{}, false, nil
	}
	return spendRecordToDTO(rec), true, nil
}

// ListSpendRecords returns every record in store order.
func (s *SpendTrackingService) ListSpendRecords(ctx context.Context) ([]SpendRecordDTO, error) {
	recs, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spend records: %w", err)
	}

	dtos := make([]SpendRecordDTO, 0, len(recs))
	for _, rec := range recs {
		dtos = append(dtos, spendRecordToDTO(rec))
	}
	return dtos, nil
}

// UpdateSpendRecord replaces the stored record with dto.ID.
func (s *SpendTrackingService) UpdateSpendRecord(ctx context.Context, dto SpendRecordDTO) error {
	rec := models.SpendRecord{
		ID:          dto.ID,
		Date:        dto.Date.UTC(),
		Amount:      dto.Amount,
		Description: toNullString(dto.Description),
		Category:    toNullString(dto.Category),
	}
	if err := s.store.Update(ctx, rec); err != nil {
		return fmt.Errorf("update spend record: %w", err)
	}
	return nil
}

// DeleteSpendRecord removes the record with id, if any.
func (s *SpendTrackingService) DeleteSpendRecord(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete spend record: %w", err)
	}
	return nil
}

func spendRecordToDTO(rec models.SpendRecord) SpendRecordDTO {
	return SpendRecordDTO{
		ID:          rec.ID,
		Date:        rec.Date,
		Amount:      rec.Amount,
		Description: fromNullString(rec.Description),
		Category:    fromNullString(rec.Category),
	}
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campaigen/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InfluencerStore persists influencer profiles in the Influencers table.
type InfluencerStore struct {
	db  *DB
	log logrus.FieldLogger
}

// NewInfluencerStore creates a store backed by db.
func NewInfluencerStore(db *DB) *InfluencerStore {
	return &InfluencerStore{db: db, log: db.log.WithField("table", "Influencers")}
}

// Add inserts a new influencer. The caller assigns the id.
func (s *InfluencerStore) Add(ctx context.Context, inf models.Influencer) error {
	_, err := s.db.conn.ExecContext(ctx,
		"INSERT INTO Influencers (Id, Name, Handle, Platform, Niche) VALUES (?, ?, ?, ?, ?)",
		inf.ID.String(), inf.Name, inf.Handle, inf.Platform, inf.Niche,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert influencer %s: %w: %w", inf.ID, ErrDuplicateID, err)
		}
		return fmt.Errorf("insert influencer %s: %w", inf.ID, err)
	}

	s.log.WithFields(logrus.Fields{"id": inf.ID, "name": inf.Name}).Debug("influencer inserted")
	return nil
}

// GetByID retrieves a single influencer. found is false when no row has id.
func (s *InfluencerStore) GetByID(ctx context.Context, id uuid.UUID) (models.Influencer, bool, error) {
	row := s.db.conn.QueryRowContext(ctx,
		"SELECT Id, Name, Handle, Platform, Niche FROM Influencers WHERE Id = ?",
		id.String(),
	)

	inf, err := scanInfluencer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Influencer{}, false, nil
	}
	if err != nil {
		return models.Influencer{}, false, fmt.Errorf("get influencer %s: %w", id, err)
	}
	return inf, true, nil
}

// GetAll retrieves every influencer ordered by name.
func (s *InfluencerStore) GetAll(ctx context.Context) ([]models.Influencer, error) {
	rows, err := s.db.conn.QueryContext(ctx,
		"SELECT Id, Name, Handle, Platform, Niche FROM Influencers ORDER BY Name COLLATE NOCASE, Id",
	)
	if err != nil {
		return nil, fmt.Errorf("list influencers: %w", err)
	}
	defer rows.Close()

	influencers := []models.Influencer{}
	for rows.Next() {
		inf, err := scanInfluencer(rows)
		if err != nil {
			return nil, fmt.Errorf("list influencers: %w", err)
		}
		influencers = append(influencers, inf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list influencers: %w", err)
	}
	return influencers, nil
}

// Update replaces every field of the row matching inf.ID.
// It returns ErrNotFound when there is no such row.
func (s *InfluencerStore) Update(ctx context.Context, inf models.Influencer) error {
	res, err := s.db.conn.ExecContext(ctx,
		"UPDATE Influencers SET Name = ?, Handle = ?, Platform = ?, Niche = ? WHERE Id = ?",
		inf.Name, inf.Handle, inf.Platform, inf.Niche, inf.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update influencer %s: %w", inf.ID, err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("update influencer %s: %w", inf.ID, err)
	}

	s.log.WithField("id", inf.ID).Debug("influencer updated")
	return nil
}

// Delete removes the influencer with id. Deleting a missing id is a no-op.
func (s *InfluencerStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.conn.ExecContext(ctx, "DELETE FROM Influencers WHERE Id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete influencer %s: %w", id, err)
	}

	n, _ := res.RowsAffected()
	s.log.WithFields(logrus.Fields{"id": id, "deleted": n}).Debug("influencer delete")
	return nil
}

func scanInfluencer(sc scanner) (models.Influencer, error) {
	var (
		inf  models.Influencer
		id   string
		name sql.NullString
	)
	if err := sc.Scan(&id, &name, &inf.Handle, &inf.Platform, &inf.Niche); err != nil {
		return inf, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return inf, fmt.Errorf("parse id %q: %w", id, err)
	}
	inf.ID = parsedID
	inf.Name = name.String
	return inf, nil
}

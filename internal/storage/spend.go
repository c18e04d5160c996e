package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campaigen/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// dateLayout is how spend dates are written to the Date column. The fraction
// is fixed width so that text order in SQLite matches time order.
const dateLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SpendRecordStore persists spend records in the SpendRecords table.
type SpendRecordStore struct {
	db  *DB
	log logrus.FieldLogger
}

// NewSpendRecordStore creates a store backed by db.
func NewSpendRecordStore(db *DB) *SpendRecordStore {
	return &SpendRecordStore{db: db, log: db.log.WithField("table", "SpendRecords")}
}

// Add inserts a new spend record. The caller assigns the id.
func (s *SpendRecordStore) Add(ctx context.Context, r models.SpendRecord) error {
	_, err := s.db.conn.ExecContext(ctx,
		"INSERT INTO SpendRecords (Id, Date, Amount, Description, Category) VALUES (?, ?, ?, ?, ?)",
		r.ID.String(), formatDate(r.Date), r.Amount.String(), r.Description, r.Category,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert spend record %s: %w: %w", r.ID, ErrDuplicateID, err)
		}
		return fmt.Errorf("insert spend record %s: %w", r.ID, err)
	}

	s.log.WithFields(logrus.Fields{
		"id":     r.ID,
		"amount": r.Amount.String(),
	}).Debug("spend record inserted")
	return nil
}

// GetByID retrieves a single spend record. found is false when no row has id.
func (s *SpendRecordStore) GetByID(ctx context.Context, id uuid.UUID) (models.SpendRecord, bool, error) {
	row := s.db.conn.QueryRowContext(ctx,
		"SELECT Id, Date, Amount, Description, Category FROM SpendRecords WHERE Id = ?",
		id.String(),
	)

	r, err := scanSpendRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpendRecord{}, false, nil
	}
	if err != nil {
		return models.SpendRecord{}, false, fmt.Errorf("get spend record %s: %w", id, err)
	}
	return r, true, nil
}

// GetAll retrieves every spend record, latest date first.
func (s *SpendRecordStore) GetAll(ctx context.Context) ([]models.SpendRecord, error) {
	rows, err := s.db.conn.QueryContext(ctx,
		"SELECT Id, Date, Amount, Description, Category FROM SpendRecords ORDER BY Date DESC, Id",
	)
	if err != nil {
		return nil, fmt.Errorf("list spend records: %w", err)
	}
	defer rows.Close()

	records := []models.SpendRecord{}
	for rows.Next() {
		r, err := scanSpendRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list spend records: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spend records: %w", err)
	}
	return records, nil
}

// Update replaces every field of the row matching r.ID.
// It returns ErrNotFound when there is no such row.
func (s *SpendRecordStore) Update(ctx context.Context, r models.SpendRecord) error {
	res, err := s.db.conn.ExecContext(ctx,
		"UPDATE SpendRecords SET Date = ?, Amount = ?, Description = ?, Category = ? WHERE Id = ?",
		formatDate(r.Date), r.Amount.String(), r.Description, r.Category, r.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update spend record %s: %w", r.ID, err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("update spend record %s: %w", r.ID, err)
	}

	s.log.WithField("id", r.ID).Debug("spend record updated")
	return nil
}

// Delete removes the spend record with id. Deleting a missing id is a no-op.
func (s *SpendRecordStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.conn.ExecContext(ctx, "DELETE FROM SpendRecords WHERE Id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete spend record %s: %w", id, err)
	}

	n, _ := res.RowsAffected()
	s.log.WithFields(logrus.Fields{"id": id, "deleted": n}).Debug("spend record delete")
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSpendRecord(sc scanner) (models.SpendRecord, error) {
	var (
		r    models.SpendRecord
		id   string
		date string
	)
	if err := sc.Scan(&id, &date, &r.Amount, &r.Description, &r.Category); err != nil {
		return r, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return r, fmt.Errorf("parse id %q: %w", id, err)
	}
	r.ID = parsedID

	r.Date, err = parseDate(date)
	if err != nil {
		return r, err
	}
	return r, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	// RFC3339Nano accepts any fraction width, including dateLayout's.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.UTC(), nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendRecord represents a single marketing spend entry.
type SpendRecord struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description sql.NullString  `json:"description"`
	Category    sql.NullString  `json:"category"`
}

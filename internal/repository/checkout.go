package repository

import (
	"errors"
	"strings"
	"time"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckoutRepository handles database operations for checkouts. The
// CheckoutTable and ReturnCheckout transactions are the serialization
// points for the ledger invariants: one active checkout per table, one
// per organization.
type CheckoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// CheckoutParams carries the inputs of a checkout-creation transaction
type CheckoutParams struct {
	TableID            uuid.UUID
	OrganizationID     uuid.UUID
	ExpectedReturnTime time.Time
	Notes              string
	CheckedOutBy       string
}

// CheckoutFilter narrows GetAll results
type CheckoutFilter struct {
	Status      models.CheckoutStatus
	OverdueOnly bool
	Now         time.Time
	Limit       int
	Offset      int
}

// CheckoutStats aggregates ledger counters for the dashboard
type CheckoutStats struct {
	TotalActive                  int64   `json:"total_active"`
	TotalOverdue                 int64   `json:"total_overdue"`
	TodayCheckouts               int64   `json:"today_checkouts"`
	TotalTables                  int64   `json:"total_tables"`
	AvailableTables              int64   `json:"available_tables"`
	CheckedOutTables             int64   `json:"checked_out_tables"`
	AverageCheckoutDurationHours float64 `json:"average_checkout_duration_hours"`
}

// CheckoutTable atomically creates an active checkout and flips the
// table to checked_out. The table row lock is the sole serialization
// point for double-booking a table; the organization invariant is
// re-checked under that lock and backed by the partial unique index, so
// two concurrent checkouts for one organization on different tables
// cannot both commit.
func (r *CheckoutRepository) CheckoutTable(params CheckoutParams) (*models.Checkout, error) {
	var checkout *models.Checkout

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the table row first; creation and return keep opposite lock
		// orders apart on purpose (see ReturnCheckout).
		var table models.Table
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&table, "id = ?", params.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTableNotFound
			}
			return translateLockError("table", err)
		}
		if table.Status != models.TableStatusAvailable {
			return apperrors.ErrTableUnavailable
		}

		// Re-check the organization under the transaction to close the
		// TOCTOU window between the advisory service check and commit.
		var org models.Organization
		if err := tx.First(&org, "id = ?", params.OrganizationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOrganizationNotFound
			}
			return err
		}
		if org.IsBanned() {
			return apperrors.ErrOrganizationBanned
		}

		var activeCount int64
		if err := tx.Model(&models.Checkout{}).
			Where("organization_id = ? AND status = ?", params.OrganizationID, models.CheckoutStatusActive).
			Count(&activeCount).Error; err != nil {
			return err
		}
		if activeCount > 0 {
			return apperrors.ErrActiveCheckoutExists
		}

		c := &models.Checkout{
			OrganizationID:     params.OrganizationID,
			TableID:            params.TableID,
			CheckoutTime:       time.Now(),
			ExpectedReturnTime: params.ExpectedReturnTime,
			Status:             models.CheckoutStatusActive,
			Notes:              params.Notes,
			CheckedOutBy:       params.CheckedOutBy,
		}
		if err := tx.Create(c).Error; err != nil {
			return translateUniqueViolation(err)
		}

		if err := tx.Model(&models.Table{}).
			Where("id = ?", table.ID).
			Update("status", models.TableStatusCheckedOut).Error; err != nil {
			return err
		}

		checkout = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(checkout.ID)
}

// ReturnCheckout atomically marks an active checkout returned and frees
// its table. The checkout row lock serializes concurrent returns; the
// table needs no exclusive lock because no checkout can be created
// against it until this transaction commits it back to available.
func (r *CheckoutRepository) ReturnCheckout(id uuid.UUID, returnedBy, notes string) (*models.Checkout, error) {
	var checkout models.Checkout

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&checkout, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCheckoutNotFound
			}
			return translateLockError("checkout", err)
		}
		if checkout.Status == models.CheckoutStatusReturned {
			return apperrors.ErrCheckoutAlreadyReturned
		}
		if checkout.Status != models.CheckoutStatusActive {
			return apperrors.NewConflictError("checkout", "is not active")
		}

		now := time.Now()
		checkout.Status = models.CheckoutStatusReturned
		checkout.ActualReturnTime = &now
		checkout.ReturnedBy = returnedBy
		if notes != "" {
			checkout.Notes = appendNotes(checkout.Notes, "Return notes: "+notes)
		}
		if err := tx.Save(&checkout).Error; err != nil {
			return err
		}

		return tx.Model(&models.Table{}).
			Where("id = ?", checkout.TableID).
			Update("status", models.TableStatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(checkout.ID)
}

// GetByID retrieves a checkout with its organization and table
func (r *CheckoutRepository) GetByID(id uuid.UUID) (*models.Checkout, error) {
	var checkout models.Checkout
	err := r.db.Preload("Organization").Preload("Table").
		First(&checkout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &checkout, nil
}

// GetAll retrieves checkouts matching the filter, newest first
func (r *CheckoutRepository) GetAll(filter CheckoutFilter) ([]models.Checkout, int64, error) {
	var checkouts []models.Checkout
	var total int64

	query := r.db.Model(&models.Checkout{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OverdueOnly {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		query = query.Where("status = ? AND expected_return_time < ?", models.CheckoutStatusActive, now)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Organization").Preload("Table").
		Order("checkout_time DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&checkouts).Error
	if err != nil {
		return nil, 0, err
	}

	return checkouts, total, nil
}

// GetActive retrieves all active checkouts, newest first
func (r *CheckoutRepository) GetActive() ([]models.Checkout, error) {
	var checkouts []models.Checkout
	err := r.db.Preload("Organization").Preload("Table").
		Where("status = ?", models.CheckoutStatusActive).
		Order("checkout_time DESC").
		Find(&checkouts).Error
	return checkouts, err
}

// GetOverdue retrieves active checkouts past their expected return time,
// most overdue first
func (r *CheckoutRepository) GetOverdue(now time.Time) ([]models.Checkout, error) {
	var checkouts []models.Checkout
	err := r.db.Preload("Organization").Preload("Table").
		Where("status = ? AND expected_return_time < ?", models.CheckoutStatusActive, now).
		Order("expected_return_time ASC").
		Find(&checkouts).Error
	return checkouts, err
}

// GetActiveByOrganization retrieves the organization's active checkout,
// or gorm.ErrRecordNotFound when there is none
func (r *CheckoutRepository) GetActiveByOrganization(orgID uuid.UUID) (*models.Checkout, error) {
	var checkout models.Checkout
	err := r.db.Preload("Table").
		Where("organization_id = ? AND status = ?", orgID, models.CheckoutStatusActive).
		First(&checkout).Error
	if err != nil {
		return nil, err
	}
	return &checkout, nil
}

// HasActiveForTable reports whether the table has an active checkout
func (r *CheckoutRepository) HasActiveForTable(tableID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Checkout{}).
		Where("table_id = ? AND status = ?", tableID, models.CheckoutStatusActive).
		Count(&count).Error
	return count > 0, err
}

// Stats aggregates the checkout counters as of now. Table counters live
// on TableRepository; the service composes the full dashboard.
func (r *CheckoutRepository) Stats(now time.Time) (*CheckoutStats, error) {
	stats := &CheckoutStats{}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	if err := r.db.Model(&models.Checkout{}).
		Where("status = ?", models.CheckoutStatusActive).
		Count(&stats.TotalActive).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Checkout{}).
		Where("status = ? AND expected_return_time < ?", models.CheckoutStatusActive, now).
		Count(&stats.TotalOverdue).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Checkout{}).
		Where("checkout_time >= ? AND checkout_time < ?", dayStart, dayEnd).
		Count(&stats.TodayCheckouts).Error; err != nil {
		return nil, err
	}

	var avgSeconds *float64
	err := r.db.Model(&models.Checkout{}).
		Select("AVG(EXTRACT(EPOCH FROM (actual_return_time - checkout_time)))").
		Where("checkout_time >= ? AND checkout_time < ? AND actual_return_time IS NOT NULL", dayStart, dayEnd).
		Scan(&avgSeconds).Error
	if err != nil {
		return nil, err
	}
	if avgSeconds != nil {
		stats.AverageCheckoutDurationHours = float64(int(*avgSeconds/3600*100)) / 100
	}

	return stats, nil
}

// appendNotes concatenates a new note onto any existing notes so the
// audit trail is never overwritten.
func appendNotes(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}

// translateLockError maps storage lock-wait timeouts and deadlocks to a
// retryable conflict; everything else passes through untouched.
func translateLockError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "55P03", "40P01": // lock_not_available, deadlock_detected
			return apperrors.NewLockTimeoutError(entity)
		}
	}
	return err
}

// translateUniqueViolation maps partial-unique-index violations on the
// checkouts table back to the invariant they protect.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "active_org"):
			return apperrors.ErrActiveCheckoutExists
		case strings.Contains(pgErr.ConstraintName, "active_table"):
			return apperrors.ErrTableUnavailable
		}
	}
	return err
}

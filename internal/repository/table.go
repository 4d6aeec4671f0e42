package repository

import (
	"errors"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableRepository handles database operations for tables
type TableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// Create creates a new table
func (r *TableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

// GetByID retrieves a table by ID
func (r *TableRepository) GetByID(id uuid.UUID) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// GetByTableNumber retrieves a table by its unique number
func (r *TableRepository) GetByTableNumber(number string) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, "table_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// GetAll retrieves tables with optional status filter and pagination
func (r *TableRepository) GetAll(status models.TableStatus, limit, offset int) ([]models.Table, int64, error) {
	var tables []models.Table
	var total int64

	query := r.db.Model(&models.Table{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("table_number ASC").Limit(limit).Offset(offset).Find(&tables).Error
	if err != nil {
		return nil, 0, err
	}

	return tables, total, nil
}

// Update updates a table
func (r *TableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}

// Delete deletes a table unless an active checkout references it
func (r *TableRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&table, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTableNotFound
			}
			return translateLockError("table", err)
		}

		var active int64
		if err := tx.Model(&models.Checkout{}).
			Where("table_id = ? AND status = ?", id, models.CheckoutStatusActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return apperrors.ErrTableHasActiveCheckout
		}

		return tx.Delete(&models.Table{}, "id = ?", id).Error
	})
}

// SetStatus manually flips a table between available and maintenance.
// The transition is refused while an active checkout exists; checked_out
// is reserved for the checkout ledger and cannot be set here.
func (r *TableRepository) SetStatus(id uuid.UUID, status models.TableStatus) (*models.Table, error) {
	var table models.Table

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&table, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTableNotFound
			}
			return translateLockError("table", err)
		}

		var active int64
		if err := tx.Model(&models.Checkout{}).
			Where("table_id = ? AND status = ?", id, models.CheckoutStatusActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return apperrors.ErrTableHasActiveCheckout
		}

		table.Status = status
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// CountAll returns the total number of tables
func (r *TableRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Table{}).Count(&total).Error
	return total, err
}

// CountByStatus returns the number of tables in the given status
func (r *TableRepository) CountByStatus(status models.TableStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Table{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

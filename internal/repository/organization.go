package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByOfficialName retrieves an organization by its canonical name
func (r *OrganizationRepository) GetByOfficialName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "official_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves organizations with optional status filter, search term and
// pagination. The search matches the official name case-insensitively or any
// stored alias exactly.
func (r *OrganizationRepository) GetAll(status models.OrganizationStatus, search string, limit, offset int) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	query := r.db.Model(&models.Organization{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		query = query.Where("official_name ILIKE ? OR aliases && ?",
			"%"+search+"%", pq.StringArray{strings.ToLower(strings.TrimSpace(search))})
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("official_name ASC").Limit(limit).Offset(offset).Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// GetActive retrieves all active organizations. This is the matcher's
// candidate pool; a full scan is acceptable at this data scale.
func (r *OrganizationRepository) GetActive() ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Where("status = ?", models.OrganizationStatusActive).
		Order("created_at ASC").Find(&orgs).Error
	return orgs, err
}

// GetWithCheckouts retrieves an organization with its checkout history
func (r *OrganizationRepository) GetWithCheckouts(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.
		Preload("Checkouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("checkout_time DESC")
		}).
		Preload("Checkouts.Table").
		First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Ban transitions an organization to banned. When the organization has
// active checkouts and cascadeReturn is false the call fails with a
// conflict naming the blocking table numbers. With cascadeReturn true,
// every active checkout is returned and its table freed inside the same
// transaction. Lock order is fixed: organization row, then checkout
// rows, then table rows.
func (r *OrganizationRepository) Ban(id uuid.UUID, reason string, cascadeReturn bool) (*models.Organization, int64, error) {
	var org models.Organization
	var returned int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&org, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOrganizationNotFound
			}
			return translateLockError("organization", err)
		}
		if org.Status == models.OrganizationStatusBanned {
			return apperrors.ErrOrganizationAlreadyBanned
		}

		var active []models.Checkout
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("organization_id = ? AND status = ?", id, models.CheckoutStatusActive).
			Order("id ASC").
			Find(&active).Error; err != nil {
			return translateLockError("checkout", err)
		}

		if len(active) > 0 && !cascadeReturn {
			numbers, err := blockingTableNumbers(tx, active)
			if err != nil {
				return err
			}
			return apperrors.NewConflictError("organization",
				fmt.Sprintf("has active checkouts on table(s) %s", strings.Join(numbers, ", ")))
		}

		now := time.Now()
		for _, checkout := range active {
			returnTime := now
			checkout.Status = models.CheckoutStatusReturned
			checkout.ActualReturnTime = &returnTime
			checkout.ReturnedBy = "system"
			checkout.Notes = appendNotes(checkout.Notes, "Returned automatically: organization banned")
			if err := tx.Save(&checkout).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Table{}).
				Where("id = ?", checkout.TableID).
				Update("status", models.TableStatusAvailable).Error; err != nil {
				return err
			}
			returned++
		}

		banDate := now
		org.Status = models.OrganizationStatusBanned
		org.BanReason = reason
		org.BanDate = &banDate
		return tx.Save(&org).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &org, returned, nil
}

// Unban transitions a banned organization back to active. The prior ban
// reason survives as audit text when notes are supplied; the ban date is
// always cleared.
func (r *OrganizationRepository) Unban(id uuid.UUID, notes string) (*models.Organization, error) {
	var org models.Organization

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&org, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOrganizationNotFound
			}
			return translateLockError("organization", err)
		}
		if org.Status != models.OrganizationStatusBanned {
			return apperrors.ErrOrganizationNotBanned
		}

		previousReason := org.BanReason
		org.Status = models.OrganizationStatusActive
		org.BanDate = nil
		if notes != "" {
			org.BanReason = fmt.Sprintf("Unbanned: %s (previous ban: %s)", notes, previousReason)
		} else {
			org.BanReason = ""
		}
		return tx.Save(&org).Error
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func blockingTableNumbers(tx *gorm.DB, checkouts []models.Checkout) ([]string, error) {
	ids := make([]uuid.UUID, len(checkouts))
	for i, c := range checkouts {
		ids[i] = c.TableID
	}
	var numbers []string
	if err := tx.Model(&models.Table{}).
		Where("id IN ?", ids).
		Order("table_number ASC").
		Pluck("table_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	checkoutRepo  *CheckoutRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.checkoutRepo = NewCheckoutRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// checkoutFor creates an active checkout for the organization on a fresh table
func (suite *OrganizationRepositoryTestSuite) checkoutFor(org *models.Organization) *models.Checkout {
	table := suite.factories.Table.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(table).Error)

	checkout, err := suite.checkoutRepo.CheckoutTable(CheckoutParams{
		TableID:            table.ID,
		OrganizationID:     org.ID,
		ExpectedReturnTime: time.Now().Add(2 * time.Hour),
	})
	suite.NoError(err)
	return checkout
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

// TestCreateDuplicateOfficialName enforces the unique constraint
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateOfficialName() {
	org1 := suite.factories.Organization.WithName("Chess Club")
	suite.NoError(suite.repo.Create(org1))

	org2 := suite.factories.Organization.WithName("Chess Club")
	err := suite.repo.Create(org2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByOfficialName tests retrieval by canonical name
func (suite *OrganizationRepositoryTestSuite) TestGetByOfficialName() {
	org := suite.factories.Organization.WithName("Chess Club")
	suite.NoError(suite.repo.Create(org))

	found, err := suite.repo.GetByOfficialName("Chess Club")

	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetByOfficialName("No Such Org")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllSearchMatchesAlias finds an organization by stored alias
func (suite *OrganizationRepositoryTestSuite) TestGetAllSearchMatchesAlias() {
	org := suite.factories.Organization.WithName("Texas Robotics")
	org.Aliases = []string{"robotics club", "robotics"}
	suite.NoError(suite.repo.Create(org))

	other := suite.factories.Organization.WithName("Ballroom Dance")
	other.Aliases = []string{"dance"}
	suite.NoError(suite.repo.Create(other))

	orgs, total, err := suite.repo.GetAll("", "robotics club", 50, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(orgs, 1)
	suite.Equal(org.ID, orgs[0].ID)
}

// TestGetActiveExcludesBanned keeps banned organizations out of the matcher pool
func (suite *OrganizationRepositoryTestSuite) TestGetActiveExcludesBanned() {
	active := suite.factories.Organization.WithName("Chess Club")
	suite.NoError(suite.repo.Create(active))

	banned := suite.factories.Organization.Banned("policy violation")
	banned.OfficialName = "Banned Org"
	suite.NoError(suite.repo.Create(banned))

	orgs, err := suite.repo.GetActive()

	suite.NoError(err)
	suite.Len(orgs, 1)
	suite.Equal(active.ID, orgs[0].ID)
}

// TestBan bans an organization with no active checkouts
func (suite *OrganizationRepositoryTestSuite) TestBan() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	banned, returned, err := suite.repo.Ban(org.ID, "policy violation", false)

	suite.NoError(err)
	suite.Equal(int64(0), returned)
	suite.Equal(models.OrganizationStatusBanned, banned.Status)
	suite.Equal("policy violation", banned.BanReason)
	suite.NotNil(banned.BanDate)
}

// TestBanNotFound surfaces an unknown organization
func (suite *OrganizationRepositoryTestSuite) TestBanNotFound() {
	_, _, err := suite.repo.Ban(uuid.New(), "policy violation", false)

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestBanAlreadyBanned rejects a second ban
func (suite *OrganizationRepositoryTestSuite) TestBanAlreadyBanned() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	_, _, err := suite.repo.Ban(org.ID, "first", false)
	suite.NoError(err)

	_, _, err = suite.repo.Ban(org.ID, "second", false)
	suite.ErrorIs(err, apperrors.ErrOrganizationAlreadyBanned)
}

// TestBanBlockedByActiveCheckout names the blocking tables in the conflict
func (suite *OrganizationRepositoryTestSuite) TestBanBlockedByActiveCheckout() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	checkout := suite.checkoutFor(org)

	_, _, err := suite.repo.Ban(org.ID, "policy violation", false)

	suite.Error(err)
	suite.True(apperrors.IsConflict(err))
	suite.Contains(err.Error(), checkout.Table.TableNumber)

	// The organization and its checkout are untouched
	fresh, getErr := suite.repo.GetByID(org.ID)
	suite.NoError(getErr)
	suite.Equal(models.OrganizationStatusActive, fresh.Status)
}

// TestBanCascadeReturnsCheckouts returns active checkouts and frees tables
func (suite *OrganizationRepositoryTestSuite) TestBanCascadeReturnsCheckouts() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	checkout := suite.checkoutFor(org)

	banned, returned, err := suite.repo.Ban(org.ID, "policy violation", true)

	suite.NoError(err)
	suite.Equal(int64(1), returned)
	suite.Equal(models.OrganizationStatusBanned, banned.Status)

	var freshCheckout models.Checkout
	suite.NoError(suite.baseTestSuite.DB.First(&freshCheckout, "id = ?", checkout.ID).Error)
	suite.Equal(models.CheckoutStatusReturned, freshCheckout.Status)
	suite.Equal("system", freshCheckout.ReturnedBy)
	suite.NotNil(freshCheckout.ActualReturnTime)
	suite.Contains(freshCheckout.Notes, "Returned automatically: organization banned")

	var freshTable models.Table
	suite.NoError(suite.baseTestSuite.DB.First(&freshTable, "id = ?", checkout.TableID).Error)
	suite.Equal(models.TableStatusAvailable, freshTable.Status)
}

// TestUnban clears ban state and keeps an audit note
func (suite *OrganizationRepositoryTestSuite) TestUnban() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	_, _, err := suite.repo.Ban(org.ID, "policy violation", false)
	suite.NoError(err)

	unbanned, err := suite.repo.Unban(org.ID, "appeal granted")

	suite.NoError(err)
	suite.Equal(models.OrganizationStatusActive, unbanned.Status)
	suite.Nil(unbanned.BanDate)
	suite.Contains(unbanned.BanReason, "Unbanned: appeal granted")
	suite.Contains(unbanned.BanReason, "previous ban: policy violation")
}

// TestUnbanWithoutNotes clears the ban reason entirely
func (suite *OrganizationRepositoryTestSuite) TestUnbanWithoutNotes() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	_, _, err := suite.repo.Ban(org.ID, "policy violation", false)
	suite.NoError(err)

	unbanned, err := suite.repo.Unban(org.ID, "")

	suite.NoError(err)
	suite.Equal(models.OrganizationStatusActive, unbanned.Status)
	suite.Empty(unbanned.BanReason)
	suite.Nil(unbanned.BanDate)
}

// TestUnbanNotBanned rejects unbanning an active organization
func (suite *OrganizationRepositoryTestSuite) TestUnbanNotBanned() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	_, err := suite.repo.Unban(org.ID, "")

	suite.ErrorIs(err, apperrors.ErrOrganizationNotBanned)
}

// TestGetWithCheckouts preloads the checkout history newest first
func (suite *OrganizationRepositoryTestSuite) TestGetWithCheckouts() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	checkout := suite.checkoutFor(org)

	found, err := suite.repo.GetWithCheckouts(org.ID)

	suite.NoError(err)
	suite.Len(found.Checkouts, 1)
	suite.Equal(checkout.ID, found.Checkouts[0].ID)
	suite.NotNil(found.Checkouts[0].Table)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}

package service_test

import (
	"testing"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/mocks"
	"table-checkout-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TableServiceTestSuite defines the test suite for TableService
type TableServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTableRepo    *mocks.MockTableRepositoryInterface
	mockCheckoutRepo *mocks.MockCheckoutRepositoryInterface
	tableService     *service.TableService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TableServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTableRepo = mocks.NewMockTableRepositoryInterface(suite.ctrl)
	suite.mockCheckoutRepo = mocks.NewMockCheckoutRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.tableService = service.NewTableService(suite.mockTableRepo, suite.mockCheckoutRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TableServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTable tests creating a table
func (suite *TableServiceTestSuite) TestCreateTable() {
	req := &service.CreateTableRequest{
		TableNumber: "T-001",
		Location:    "West Mall",
		Capacity:    4,
	}

	suite.mockTableRepo.EXPECT().
		GetByTableNumber(req.TableNumber).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockTableRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.tableService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.TableNumber, response.TableNumber)
	assert.Equal(suite.T(), string(models.TableStatusAvailable), response.Status)
}

// TestCreateTableDuplicateNumber tests creating a table with a duplicate number
func (suite *TableServiceTestSuite) TestCreateTableDuplicateNumber() {
	req := &service.CreateTableRequest{TableNumber: "T-001"}
	existing := &models.Table{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		TableNumber: "T-001",
		Status:      models.TableStatusAvailable,
	}

	suite.mockTableRepo.EXPECT().
		GetByTableNumber(req.TableNumber).
		Return(existing, nil).
		Times(1)

	response, err := suite.tableService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTableExists)
}

// TestCreateTableValidationError tests creating a table without a number
func (suite *TableServiceTestSuite) TestCreateTableValidationError() {
	response, err := suite.tableService.Create(&service.CreateTableRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestSetStatusRejectsCheckedOut refuses the ledger-owned status
func (suite *TableServiceTestSuite) TestSetStatusRejectsCheckedOut() {
	response, err := suite.tableService.SetStatus(uuid.New(), &service.SetTableStatusRequest{
		Status: string(models.TableStatusCheckedOut),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSetStatusMaintenance flips a table into maintenance
func (suite *TableServiceTestSuite) TestSetStatusMaintenance() {
	table := &models.Table{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		TableNumber: "T-001",
		Status:      models.TableStatusMaintenance,
	}

	suite.mockCheckoutRepo.EXPECT().
		HasActiveForTable(table.ID).
		Return(false, nil).
		Times(1)

	suite.mockTableRepo.EXPECT().
		SetStatus(table.ID, models.TableStatusMaintenance).
		Return(table, nil).
		Times(1)

	response, err := suite.tableService.SetStatus(table.ID, &service.SetTableStatusRequest{
		Status: string(models.TableStatusMaintenance),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.TableStatusMaintenance), response.Status)
}

// TestSetStatusWithActiveCheckout refuses a transition while the table is in use
func (suite *TableServiceTestSuite) TestSetStatusWithActiveCheckout() {
	id := uuid.New()

	suite.mockCheckoutRepo.EXPECT().
		HasActiveForTable(id).
		Return(true, nil).
		Times(1)

	response, err := suite.tableService.SetStatus(id, &service.SetTableStatusRequest{
		Status: string(models.TableStatusMaintenance),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTableHasActiveCheckout)
}

// TestDeleteTable deletes a table with no active checkout
func (suite *TableServiceTestSuite) TestDeleteTable() {
	id := uuid.New()

	suite.mockCheckoutRepo.EXPECT().
		HasActiveForTable(id).
		Return(false, nil).
		Times(1)

	suite.mockTableRepo.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	err := suite.tableService.Delete(id)

	assert.NoError(suite.T(), err)
}

// TestDeleteTableWithActiveCheckout refuses deletion while the table is in use
func (suite *TableServiceTestSuite) TestDeleteTableWithActiveCheckout() {
	id := uuid.New()

	suite.mockCheckoutRepo.EXPECT().
		HasActiveForTable(id).
		Return(true, nil).
		Times(1)

	err := suite.tableService.Delete(id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTableHasActiveCheckout)
}

// TestTableServiceTestSuite runs the test suite
func TestTableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TableServiceTestSuite))
}

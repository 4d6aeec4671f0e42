package handlers

import (
	"net/http"
	"testing"

	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/mocks"
	"table-checkout-backend/internal/service"
	"table-checkout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TableHandlerTestSuite defines the test suite for TableHandler
type TableHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTableService *mocks.MockTableServiceInterface
	handler          *TableHandler
	httpSuite        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TableHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTableService = mocks.NewMockTableServiceInterface(suite.ctrl)

	suite.handler = NewTableHandler(suite.mockTableService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	tables := v1.Group("/tables")
	{
		tables.GET("", suite.handler.ListTables)
		tables.POST("", suite.handler.CreateTable)
		tables.GET("/:id", suite.handler.GetTable)
		tables.PUT("/:id", suite.handler.UpdateTable)
		tables.DELETE("/:id", suite.handler.DeleteTable)
		tables.PUT("/:id/status", suite.handler.SetTableStatus)
	}
}

// TearDownTest cleans up after each test
func (suite *TableHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTable tests creating a table
func (suite *TableHandlerTestSuite) TestCreateTable() {
	tableID := uuid.New()
	expected := &service.TableResponse{
		ID:          tableID,
		TableNumber: "T-001",
		Status:      "available",
		Location:    "West Mall",
		Capacity:    4,
	}

	suite.mockTableService.EXPECT().
		Create(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tables", map[string]interface{}{
		"table_number": "T-001",
		"location":     "West Mall",
		"capacity":     4,
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.TableResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "T-001", response.TableNumber)
	assert.Equal(suite.T(), "available", response.Status)
}

// TestCreateTableDuplicate maps the duplicate error to 409
func (suite *TableHandlerTestSuite) TestCreateTableDuplicate() {
	suite.mockTableService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrTableExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tables", map[string]interface{}{
		"table_number": "T-001",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "table")
}

// TestGetTableNotFound maps the not-found error to 404
func (suite *TableHandlerTestSuite) TestGetTableNotFound() {
	id := uuid.New()

	suite.mockTableService.EXPECT().
		GetByID(id).
		Return(nil, apperrors.ErrTableNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tables/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListTables passes the status filter through
func (suite *TableHandlerTestSuite) TestListTables() {
	suite.mockTableService.EXPECT().
		GetAll("available", 1, 50).
		Return(&service.TableListResponse{
			Tables:   []service.TableResponse{{TableNumber: "T-001", Status: "available"}},
			Total:    1,
			Page:     1,
			PageSize: 50,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tables?status=available", nil)

	var response service.TableListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestDeleteTable returns 204 on success
func (suite *TableHandlerTestSuite) TestDeleteTable() {
	id := uuid.New()

	suite.mockTableService.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/tables/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteTableWithActiveCheckout maps the conflict to 409
func (suite *TableHandlerTestSuite) TestDeleteTableWithActiveCheckout() {
	id := uuid.New()

	suite.mockTableService.EXPECT().
		Delete(id).
		Return(apperrors.ErrTableHasActiveCheckout).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/tables/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestSetTableStatusRejectsCheckedOut maps the validation error to 400
func (suite *TableHandlerTestSuite) TestSetTableStatusRejectsCheckedOut() {
	id := uuid.New()

	suite.mockTableService.EXPECT().
		SetStatus(id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("status", "must be available or maintenance")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/tables/"+id.String()+"/status", map[string]interface{}{
		"status": "checked_out",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestTableHandlerTestSuite runs the test suite
func TestTableHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TableHandlerTestSuite))
}

package handlers

import (
	"net/http"
	"testing"
	"time"

	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/mocks"
	"table-checkout-backend/internal/service"
	"table-checkout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CheckoutHandlerTestSuite defines the test suite for CheckoutHandler
type CheckoutHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCheckoutService *mocks.MockCheckoutServiceInterface
	handler             *CheckoutHandler
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CheckoutHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCheckoutService = mocks.NewMockCheckoutServiceInterface(suite.ctrl)

	suite.handler = NewCheckoutHandler(suite.mockCheckoutService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	checkouts := v1.Group("/checkouts")
	{
		checkouts.GET("", suite.handler.ListCheckouts)
		checkouts.POST("", suite.handler.CreateCheckout)
		checkouts.GET("/active", suite.handler.GetActiveCheckouts)
		checkouts.GET("/overdue", suite.handler.GetOverdueCheckouts)
		checkouts.GET("/stats", suite.handler.GetCheckoutStats)
		checkouts.GET("/:id", suite.handler.GetCheckout)
		checkouts.POST("/:id/return", suite.handler.ReturnCheckout)
	}
}

// TearDownTest cleans up after each test
func (suite *CheckoutHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCheckout tests creating a checkout
func (suite *CheckoutHandlerTestSuite) TestCreateCheckout() {
	checkoutID := uuid.New()
	tableID := uuid.New()
	expected := &service.CheckoutResponse{
		ID:                 checkoutID,
		TableID:            tableID,
		Status:             "active",
		CheckoutTime:       time.Now(),
		ExpectedReturnTime: time.Now().Add(2 * time.Hour),
	}

	suite.mockCheckoutService.EXPECT().
		Create(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts", map[string]interface{}{
		"organization_name":    "Chess Club",
		"table_id":             tableID.String(),
		"expected_return_time": time.Now().Add(2 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.CheckoutResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), checkoutID, response.ID)
	assert.Equal(suite.T(), "active", response.Status)
}

// TestCreateCheckoutTableBusy maps the availability conflict to 409
func (suite *CheckoutHandlerTestSuite) TestCreateCheckoutTableBusy() {
	suite.mockCheckoutService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrTableUnavailable).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts", map[string]interface{}{
		"organization_name":    "Chess Club",
		"table_id":             uuid.New().String(),
		"expected_return_time": time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "table")
}

// TestCreateCheckoutBannedOrganization maps the ban conflict to 409
func (suite *CheckoutHandlerTestSuite) TestCreateCheckoutBannedOrganization() {
	suite.mockCheckoutService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationBanned).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts", map[string]interface{}{
		"organization_name":    "Chess Club",
		"table_id":             uuid.New().String(),
		"expected_return_time": time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestCreateCheckoutReturnTimeInPast maps the validation error to 400
func (suite *CheckoutHandlerTestSuite) TestCreateCheckoutReturnTimeInPast() {
	suite.mockCheckoutService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrReturnTimeInPast).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts", map[string]interface{}{
		"organization_name":    "Chess Club",
		"table_id":             uuid.New().String(),
		"expected_return_time": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestReturnCheckout tests returning a checkout
func (suite *CheckoutHandlerTestSuite) TestReturnCheckout() {
	checkoutID := uuid.New()
	returnedAt := time.Now()
	expected := &service.CheckoutResponse{
		ID:               checkoutID,
		Status:           "returned",
		ActualReturnTime: &returnedAt,
	}

	suite.mockCheckoutService.EXPECT().
		Return(checkoutID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts/"+checkoutID.String()+"/return", map[string]interface{}{
		"returned_by": "front desk",
	})

	var response service.CheckoutResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "returned", response.Status)
}

// TestReturnCheckoutAlreadyReturned maps the idempotency conflict to 409
func (suite *CheckoutHandlerTestSuite) TestReturnCheckoutAlreadyReturned() {
	checkoutID := uuid.New()

	suite.mockCheckoutService.EXPECT().
		Return(checkoutID, gomock.Any()).
		Return(nil, apperrors.ErrCheckoutAlreadyReturned).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts/"+checkoutID.String()+"/return", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "checkout")
}

// TestReturnCheckoutInvalidID rejects a malformed UUID
func (suite *CheckoutHandlerTestSuite) TestReturnCheckoutInvalidID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/checkouts/not-a-uuid/return", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid checkout ID")
}

// TestListCheckoutsOverdueFilter passes the overdue flag through
func (suite *CheckoutHandlerTestSuite) TestListCheckoutsOverdueFilter() {
	suite.mockCheckoutService.EXPECT().
		GetAll("active", true, 1, 50).
		Return(&service.CheckoutListResponse{
			Checkouts: []service.CheckoutResponse{},
			Page:      1,
			PageSize:  50,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/checkouts?status=active&overdue=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetOverdueCheckouts tests the overdue listing
func (suite *CheckoutHandlerTestSuite) TestGetOverdueCheckouts() {
	suite.mockCheckoutService.EXPECT().
		GetOverdue().
		Return([]service.CheckoutResponse{{ID: uuid.New(), Status: "active", Overdue: true}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/checkouts/overdue", nil)

	var response []service.CheckoutResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
	assert.True(suite.T(), response[0].Overdue)
}

// TestGetCheckoutStats tests the dashboard counters
func (suite *CheckoutHandlerTestSuite) TestGetCheckoutStats() {
	stats := &service.CheckoutStatsResponse{}
	stats.TotalActive = 3
	stats.AvailableTables = 7

	suite.mockCheckoutService.EXPECT().
		Stats().
		Return(stats, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/checkouts/stats", nil)

	var response service.CheckoutStatsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(3), response.TotalActive)
	assert.Equal(suite.T(), int64(7), response.AvailableTables)
}

// TestCheckoutHandlerTestSuite runs the test suite
func TestCheckoutHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

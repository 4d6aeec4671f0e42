package handlers

import (
	"net/http"
	"testing"

	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/matcher"
	"table-checkout-backend/internal/mocks"
	"table-checkout-backend/internal/service"
	"table-checkout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.POST("/search-matches", suite.handler.SearchMatches)
		orgs.POST("/validate-checkout", suite.handler.ValidateCheckout)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.POST("/:id/ban", suite.handler.BanOrganization)
		orgs.POST("/:id/unban", suite.handler.UnbanOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"official_name": "Chess Club",
		"aliases":       []string{"chess"},
	}

	expectedResponse := &service.OrganizationResponse{
		ID:           orgID,
		OfficialName: "Chess Club",
		Aliases:      []string{"chess"},
		Status:       "active",
		CreatedAt:    "2026-01-01T00:00:00Z",
		UpdatedAt:    "2026-01-01T00:00:00Z",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.OfficialName, response.OfficialName)
	assert.Equal(suite.T(), expectedResponse.Status, response.Status)
}

// TestCreateOrganizationConflict maps the duplicate error to 409
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationConflict() {
	requestBody := map[string]interface{}{"official_name": "Chess Club"}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "organization")
}

// TestGetOrganizationInvalidID rejects a malformed UUID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestGetOrganizationNotFound maps the not-found error to 404
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetWithCheckouts(id).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization")
}

// TestListOrganizations passes query filters through to the service
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	suite.mockOrganizationService.EXPECT().
		GetAll("banned", "chess", 2, 10).
		Return(&service.OrganizationListResponse{
			Organizations: []service.OrganizationResponse{},
			Total:         0,
			Page:          2,
			PageSize:      10,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?status=banned&search=chess&page=2&page_size=10", nil)

	var response service.OrganizationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Page)
}

// TestSearchMatches returns the ranked matches
func (suite *OrganizationHandlerTestSuite) TestSearchMatches() {
	suite.mockOrganizationService.EXPECT().
		SearchMatches("chess club").
		Return([]matcher.Match{{Score: 100, MatchType: matcher.MatchTypeExactVariation, MatchedText: "Chess Club"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/search-matches", map[string]interface{}{
		"name": "chess club",
	})

	var response struct {
		Matches []matcher.Match `json:"matches"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Matches, 1)
	assert.Equal(suite.T(), 100, response.Matches[0].Score)
}

// TestSearchMatchesMissingName rejects an empty name
func (suite *OrganizationHandlerTestSuite) TestSearchMatchesMissingName() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/search-matches", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Organization name is required")
}

// TestValidateCheckout returns the pre-flight verdict
func (suite *OrganizationHandlerTestSuite) TestValidateCheckout() {
	suite.mockOrganizationService.EXPECT().
		ValidateCheckout("Brand New Org").
		Return(&service.ValidateCheckoutResponse{
			Allowed: true,
			Matches: []matcher.Match{},
			Message: "No existing organizations found. A new organization will be created.",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/validate-checkout", map[string]interface{}{
		"name": "Brand New Org",
	})

	var response service.ValidateCheckoutResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Allowed)
}

// TestBanOrganization tests the ban endpoint
func (suite *OrganizationHandlerTestSuite) TestBanOrganization() {
	id := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Ban(id, gomock.Any()).
		Return(&service.BanOrganizationResponse{
			Organization:          service.OrganizationResponse{ID: id, Status: "banned", BanReason: "policy violation"},
			ReturnedCheckoutCount: 1,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+id.String()+"/ban", map[string]interface{}{
		"reason":         "policy violation",
		"cascade_return": true,
	})

	var response service.BanOrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(1), response.ReturnedCheckoutCount)
	assert.Equal(suite.T(), "banned", response.Organization.Status)
}

// TestBanOrganizationBlocked maps the active-checkout conflict to 409
func (suite *OrganizationHandlerTestSuite) TestBanOrganizationBlocked() {
	id := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Ban(id, gomock.Any()).
		Return(nil, apperrors.NewConflictError("organization", "has active checkouts on table(s) T-001")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+id.String()+"/ban", map[string]interface{}{
		"reason": "policy violation",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "active checkouts")
}

// TestUnbanOrganizationNotBanned maps the not-banned conflict to 409
func (suite *OrganizationHandlerTestSuite) TestUnbanOrganizationNotBanned() {
	id := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Unban(id, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotBanned).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+id.String()+"/unban", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}

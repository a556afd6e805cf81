//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"turipack/internal/handler/api"
	reqdto "turipack/internal/handler/dto/request"
	resdto "turipack/internal/handler/dto/response"
	"turipack/internal/handler/middleware"
	"turipack/internal/pkg/errs"
	"turipack/internal/usecase/commands"
	"turipack/internal/usecase/queries"
	"turipack/tests/common/httptest"
	"turipack/tests/common/testutil"
	commandsmock "turipack/tests/mock/commands"
	queriesmock "turipack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PackageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPackageCommands
	mockQueries  *queriesmock.MockPackageQueries
	handler      *api.PackageHandler
}

func (s *PackageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPackageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPackageQueries(s.mockCtrl)
	s.handler = api.NewPackageHandler(s.mockCommands, s.mockQueries)

	session := middleware.SessionMiddleware()
	s.router.GET("/package", session, s.handler.GetPackage)
	s.router.DELETE("/package", session, s.handler.ClearPackage)
	s.router.POST("/package/items", session, s.handler.AddItem)
	s.router.DELETE("/package/items/:serviceId", session, s.handler.RemoveItem)
	s.router.PATCH("/package/items/:serviceId", session, s.handler.UpdateItem)
	s.router.PUT("/package/travelers", session, s.handler.SetTravelers)
	s.router.PUT("/package/dates", session, s.handler.SetDates)
	s.router.POST("/package/recalculate", session, s.handler.Recalculate)
	s.router.POST("/package/save", session, s.handler.SavePackage)
}

func (s *PackageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPackageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}

func emptyPackageView() *queries.PackageView {
	return &queries.PackageView{
		Status:   "draft",
		Modules:  []queries.ModuleView{},
		Currency: "COP",
	}
}

func pricedPackageView() *queries.PackageView {
	id := uuid.New()
	return &queries.PackageView{
		ID:     &id,
		Status: "draft",
		Modules: []queries.ModuleView{
			{
				Category: "lodging",
				Items: []queries.ItemView{
					{
						ServiceID:   uuid.New(),
						ServiceName: "Cabaña Mirador del Desierto",
						Persons:     5,
						Subtotal:    1000000,
					},
				},
				Subtotal: 1000000,
			},
		},
		ItemCount:    1,
		TotalPersons: 5,
		Subtotal:     1000000,
		Taxes:        190000,
		Total:        1190000,
		Currency:     "COP",
	}
}

type testCasePackage struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestGetPackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestGetPackage() {
	url := "/package"

	s.Run("success: returns empty view for a fresh session", func() {
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), gomock.Any()).
			Return(emptyPackageView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("draft", resp.Status)
		s.Empty(resp.Modules)
		s.Zero(resp.Total)
	})

	s.Run("success: issues a session ID when the header is absent", func() {
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), gomock.Any()).
			Return(emptyPackageView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		issued := httptest.ExtractSessionID(rec)
		s.NotEmpty(issued)
		_, err := uuid.Parse(issued)
		s.NoError(err)
	})

	s.Run("success: echoes the supplied session ID", func() {
		sessionID := uuid.New()
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), sessionID).
			Return(pricedPackageView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, sessionID.String())

		s.Equal(sessionID.String(), httptest.ExtractSessionID(rec))
	})

	s.Run("failure: returns 500 when the query fails", func() {
		s.mockQueries.EXPECT().GetPackage(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPackageLoadFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load package")
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *PackageHandlerTestSuite) TestAddItem() {
	url := "/package/items"

	reqBody := reqdto.AddItemRequest{
		ServiceID: uuid.New(),
		Persons:   5,
	}

	validation := []testCasePackage{
		{name: "missing field: service_id (required)", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: persons (required)", mutate: testutil.Field("persons", nil), expectCode: http.StatusBadRequest},
		{name: "persons below minimum (0)", mutate: testutil.Field("persons", 0), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "15-06-2026"), expectCode: http.StatusBadRequest},
		{name: "malformed time", mutate: testutil.Field("time", "9pm"), expectCode: http.StatusBadRequest},
		{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 200 with updated totals", func() {
		s.mockCommands.EXPECT().AddService(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pricedPackageView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(1000000), resp.Subtotal)
		s.Equal(int64(190000), resp.Taxes)
		s.Equal(int64(1190000), resp.Total)
	})

	s.Run("success: accepts optional date and time", func() {
		s.mockCommands.EXPECT().AddService(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pricedPackageView(), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("date", "2026-06-15"),
			testutil.Field("time", "21:00"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("failure: returns 404 when the service does not exist", func() {
		s.mockCommands.EXPECT().AddService(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	for _, tc := range validation {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(tc.expectCode, rec.Code, "Response: %s", rec.Body.String())
		})
	}
}

// ================================================================================
// TestRemoveItem
// ================================================================================

func (s *PackageHandlerTestSuite) TestRemoveItem() {
	serviceID := uuid.New()

	s.Run("success: returns 200 with recalculated totals", func() {
		s.mockCommands.EXPECT().RemoveService(gomock.Any(), gomock.Any(), serviceID).
			Return(emptyPackageView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/package/items/"+serviceID.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("failure: returns 400 for a malformed service ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/package/items/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})
}

// ================================================================================
// TestUpdateItem
// ================================================================================

func (s *PackageHandlerTestSuite) TestUpdateItem() {
	serviceID := uuid.New()
	url := "/package/items/" + serviceID.String()

	s.Run("success: patches persons only", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), serviceID, gomock.Any()).
			Return(pricedPackageView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"persons": 3}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("failure: returns 400 for an empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No fields to update")
	})

	s.Run("failure: returns 400 for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"date": "June 15"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestSetTravelers
// ================================================================================

func (s *PackageHandlerTestSuite) TestSetTravelers() {
	url := "/package/travelers"

	s.Run("success: returns 200 with unchanged line totals", func() {
		view := pricedPackageView()
		view.TotalPersons = 8
		s.mockCommands.EXPECT().SetTravelers(gomock.Any(), gomock.Any(), 8).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"total_persons": 8}, "")

		var resp resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(8, resp.TotalPersons)
		s.Equal(int64(1190000), resp.Total)
	})

	s.Run("failure: returns 400 for zero travelers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"total_persons": 0}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestSetDates
// ================================================================================

func (s *PackageHandlerTestSuite) TestSetDates() {
	url := "/package/dates"

	s.Run("success: returns 200 for a valid range", func() {
		s.mockCommands.EXPECT().SetDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pricedPackageView(), nil).Times(1)

		body := map[string]any{"check_in": "2026-06-15", "check_out": "2026-06-18"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("failure: returns 400 for an inverted range", func() {
		// The use case returns the validation error marked, not bare.
		err := errs.Mark(errs.New("check-in after check-out"), commands.ErrInvalidDateRange)
		s.mockCommands.EXPECT().SetDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, err).Times(1)

		body := map[string]any{"check_in": "2026-06-18", "check_out": "2026-06-15"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-in must be before check-out")
	})

	s.Run("failure: returns 400 for malformed dates", func() {
		body := map[string]any{"check_in": "15/06/2026", "check_out": "18/06/2026"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestSavePackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestSavePackage() {
	url := "/package/save"

	s.Run("success: returns 200 with saved status", func() {
		view := pricedPackageView()
		view.Status = "saved"
		s.mockCommands.EXPECT().SavePackage(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var resp resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("saved", resp.Status)
	})

	s.Run("failure: returns 404 when there is nothing to save", func() {
		s.mockCommands.EXPECT().SavePackage(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No package to save")
	})
}

// ================================================================================
// TestClearPackage
// ================================================================================

func (s *PackageHandlerTestSuite) TestClearPackage() {
	url := "/package"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ClearPackage(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("failure: returns 500 when the store fails", func() {
		s.mockCommands.EXPECT().ClearPackage(gomock.Any(), gomock.Any()).
			Return(commands.ErrSnapshotSaveFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to clear package")
	})
}

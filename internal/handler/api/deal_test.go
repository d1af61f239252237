//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"dealhub/internal/domain/deal"
	"dealhub/internal/domain/geo"
	"dealhub/internal/handler/api"
	reqdto "dealhub/internal/handler/dto/request"
	resdto "dealhub/internal/handler/dto/response"
	"dealhub/internal/pkg/ptr"
	"dealhub/internal/usecase/commands"
	"dealhub/internal/usecase/queries"
	"dealhub/tests/common/builder"
	"dealhub/tests/common/httptest"
	"dealhub/tests/common/testutil"
	commandsmock "dealhub/tests/mock/commands"
	queriesmock "dealhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DealHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDealCommands
	mockQueries  *queriesmock.MockDealQueries
	handler      *api.DealHandler
}

func (s *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDealCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDealQueries(s.mockCtrl)
	s.handler = api.NewDealHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/deals", s.handler.List)
	s.router.GET("/api/deals/:id", s.handler.Get)
	s.router.POST("/api/deals", s.handler.Create)
	s.router.POST("/api/deals/bulk", s.handler.BulkCreate)
	s.router.PUT("/api/deals/:id", s.handler.Update)
	s.router.DELETE("/api/deals/:id", s.handler.Delete)
	s.router.POST("/api/deals/:id/view", s.handler.RecordView)
	s.router.POST("/api/deals/:id/click", s.handler.RecordClick)
}

func (s *DealHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}

type testCaseDeal struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

type dealEnvelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    resdto.DealResponse `json:"data"`
}

// ================================================================================
// TestList
// ================================================================================

func (s *DealHandlerTestSuite) TestList() {
	view := builder.NewDealBuilder().BuildView()
	list := &queries.DealList{
		Deals:  []queries.ListedDeal{{DealView: view, DistanceKm: ptr.To(1.2)}},
		Count:  1,
		Center: geo.Point{Lat: 40.7128, Lng: -74.0060},
	}

	s.Run("success: origin applies the default radius", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.DealFilters{
				Category:      "coffee",
				Origin:        &geo.Point{Lat: 40.7, Lng: -74},
				MaxDistanceKm: ptr.To(50.0),
				Sort:          queries.SortHighestDiscount,
			}).
			Return(list, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/deals?lat=40.7&lng=-74&category=coffee&sort=highest-discount", nil, "")

		var body resdto.DealListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(1, body.Count)
		s.Require().Len(body.Data, 1)
		s.Equal(view.ID.String(), body.Data[0].ID)
		s.Equal(ptr.To(1.2), body.Data[0].Distance)
		s.Equal(list.Center, body.Center)
	})

	s.Run("success: explicit radius", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.DealFilters{
				Origin:        &geo.Point{Lat: 40.7, Lng: -74},
				MaxDistanceKm: ptr.To(5.0),
			}).
			Return(list, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/deals?lat=40.7&lng=-74&maxDistance=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: no origin means no distance filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.DealFilters{}).
			Return(&queries.DealList{Deals: []queries.ListedDeal{{DealView: view}}, Count: 1}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/deals", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		deals := body["data"].([]any)
		s.Require().Len(deals, 1)
		_, hasDistance := deals[0].(map[string]any)["distance"]
		s.False(hasDistance)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		cases := []testCaseDeal{
			{name: "lat without lng", expectCode: http.StatusBadRequest, expectInBody: "lat and lng must be given together"},
			{name: "unknown category", expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: category"},
			{name: "unknown sort", expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: sort"},
			{name: "latitude out of range", expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: lat"},
			{name: "non-positive radius", expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: maxDistance"},
		}
		urls := []string{
			"/api/deals?lat=40.7",
			"/api/deals?category=pharmacy",
			"/api/deals?sort=newest",
			"/api/deals?lat=95&lng=0",
			"/api/deals?lat=40&lng=-73&maxDistance=0",
		}
		for i, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, urls[i], nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/deals", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch deals")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DealHandlerTestSuite) TestGet() {
	view := builder.NewDealBuilder().BuildView()

	s.Run("success: returns the deal", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/deals/"+view.ID.String(), nil, "")

		var body dealEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(view.ID.String(), body.Data.ID)
		s.Equal(view.StoreName, body.Data.StoreName)
		s.NotNil(body.Data.Items)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrDealNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/deals/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})

	s.Run("error: 404 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/deals/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *DealHandlerTestSuite) TestCreate() {
	url := "/api/deals"

	reqBody := builder.NewDealBuilder().BuildCreateRequestDTO()
	view := builder.NewDealBuilder().BuildView()

	bound := []testCaseDeal{
		{name: "discount boundary OK (0)", mutate: testutil.Field("discount", 0), expectCode: http.StatusCreated},
		{name: "discount boundary OK (100)", mutate: testutil.Field("discount", 100), expectCode: http.StatusCreated},
		{name: "discount boundary invalid (101)", mutate: testutil.Field("discount", 101), expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: discount"},
		{name: "discount boundary invalid (-1)", mutate: testutil.Field("discount", -1), expectCode: http.StatusBadRequest},
		{name: "latitude invalid (91)", mutate: testutil.Field("location.lat", 91), expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: location.lat"},
		{name: "latitude OK (0)", mutate: testutil.Field("location.lat", 0), expectCode: http.StatusCreated},
		{name: "title too long", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseDeal{
		{name: "missing field: storeName", mutate: testutil.Field("storeName", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required field: storeName"},
		{name: "missing field: category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required field: category"},
		{name: "missing field: title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: image", mutate: testutil.Field("image", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: discount", mutate: testutil.Field("discount", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required field: discount"},
		{name: "missing field: location", mutate: testutil.Field("location", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required field: location"},
		{name: "missing field: location.lng", mutate: testutil.Field("location.lng", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required field: location.lng"},
	}

	invalid := []testCaseDeal{
		{name: "unknown category", mutate: testutil.Field("category", "pharmacy"), expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: category"},
		{name: "unknown badge", mutate: testutil.Field("badge", "hot"), expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: badge"},
		{name: "discount as string", mutate: testutil.Field("discount", "ten"), expectCode: http.StatusBadRequest, expectInBody: "Invalid value for field: discount"},
		{name: "item without title", mutate: testutil.Field("deals", []any{map[string]any{"discount": 10}}), expectCode: http.StatusBadRequest, expectInBody: "Missing required field: deals[0].title"},
	}

	allValidationTestCases := [][]testCaseDeal{bound, missing, invalid}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToParams()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body dealEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.Data.ID)
		s.Equal("Deal created successfully", body.Message)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/deals/" + view.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range allValidationTestCases {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, nil)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusCreated {
						s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
						return
					}
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
				})
			}
		}
	})

	s.Run("error: 400 on malformed json", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"storeName":`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request body")
	})

	s.Run("error: 400 when the domain rejects the deal", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, deal.ErrEmptyTitle)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "title cannot be empty")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create deal")
	})
}

// ================================================================================
// TestBulkCreate
// ================================================================================

func (s *DealHandlerTestSuite) TestBulkCreate() {
	url := "/api/deals/bulk"
	b := builder.NewDealBuilder()
	template := b.BuildTemplateRequest()
	reqBody := map[string]any{
		"deal":      template,
		"locations": []any{b.BuildLocationRequest(), b.WithLocation(41.0, -73.5).BuildLocationRequest()},
	}

	s.Run("success: one id per location", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().BulkCreate(gomock.Any(), template.ToParams(), gomock.Len(2)).Return(ids, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body struct {
			Message string                    `json:"message"`
			Data    resdto.BulkCreateResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(2, body.Data.Count)
		s.Equal([]string{ids[0].String(), ids[1].String()}, body.Data.IDs)
		s.Equal("Deals created successfully", body.Message)
	})

	s.Run("error: 400 without locations", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"deal": template, "locations": []any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "locations")
	})

	s.Run("error: 400 without the template", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"locations": reqBody["locations"]}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required field: deal")
	})

	s.Run("error: 400 names the bad location", func() {
		bad := map[string]any{
			"deal":      template,
			"locations": []any{map[string]any{"lat": 40, "lng": -73}, map[string]any{"lat": 40}},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required field: locations[1].lng")
	})

	s.Run("error: 400 when the use case rejects a location", func() {
		s.mockCommands.EXPECT().BulkCreate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrTooManyLocations)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "too many locations")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *DealHandlerTestSuite) TestUpdate() {
	view := builder.NewDealBuilder().BuildView()
	url := "/api/deals/" + view.ID.String()

	s.Run("success: only given fields are patched", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), view.ID, deal.Patch{Title: ptr.To("Two for one"), Discount: ptr.To(0)}).
			Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"title": "Two for one", "discount": 0}, "")

		var body dealEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Deal updated successfully", body.Message)
	})

	s.Run("error: 400 on invalid field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"discount": 150}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid value for field: discount")
	})

	s.Run("error: 400 on empty title", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"title": ""}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid value for field: title")
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrDealNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"title": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *DealHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 200 with message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/deals/"+id.String(), nil, "")

		var body resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("Deal deleted successfully", body.Message)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrDealNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/deals/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestCounters
// ================================================================================

func (s *DealHandlerTestSuite) TestCounters() {
	id := uuid.New()

	s.Run("view returns the new count", func() {
		s.mockCommands.EXPECT().RecordView(gomock.Any(), id).Return(7, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/deals/"+id.String()+"/view", nil, "")

		var body struct {
			Data resdto.CounterResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CounterResponse{ID: id.String(), Count: 7}, body.Data)
	})

	s.Run("click returns the new count", func() {
		s.mockCommands.EXPECT().RecordClick(gomock.Any(), id).Return(3, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/deals/"+id.String()+"/click", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown deal", func() {
		s.mockCommands.EXPECT().RecordClick(gomock.Any(), id).Return(0, commands.ErrDealNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/deals/"+id.String()+"/click", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

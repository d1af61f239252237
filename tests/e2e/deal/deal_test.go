//go:build e2e

package deal_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"dealhub/internal/handler/dto/response"
	"dealhub/internal/pkg/config"
	"dealhub/tests/common/authtest"
	"dealhub/tests/common/builder"
	"dealhub/tests/common/dbtest"
	"dealhub/tests/common/httptest"
	"dealhub/tests/common/testutil"
	"dealhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const dealsURL = "/api/deals"

// overpassBody answers every query with two Starbucks in New York and one
// across the border in Ontario.
const overpassBody = `{"elements":[
 {"type":"node","id":1,"lat":40.7580,"lon":-73.9855,"tags":{"name":"Starbucks","addr:city":"New York","addr:state":"NY"}},
 {"type":"node","id":2,"lat":40.7580,"lon":-73.9856,"tags":{"brand":"Starbucks","addr:city":"New York","addr:state":"NY"}},
 {"type":"way","id":3,"center":{"lat":42.6526,"lon":-73.7562},"tags":{"name":"Starbucks Reserve","addr:city":"Albany","addr:state":"New York"}},
 {"type":"node","id":4,"lat":43.6532,"lon":-79.3832,"tags":{"name":"Starbucks","addr:city":"Toronto","addr:state":"ON"}}
]}`

type DealSuite struct {
	e2e.SharedSuite
	overpass *stdhttptest.Server
}

func (s *DealSuite) SetupSuite() {
	s.overpass = stdhttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(overpassBody))
	}))
	s.ConfigOverride = func(cfg *config.Config) {
		cfg.Overpass.Endpoints = []string{s.overpass.URL + "/api/interpreter"}
	}
	s.SharedSuite.SetupSuite()
}

func (s *DealSuite) TearDownSuite() {
	s.overpass.Close()
}

func (s *DealSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDealSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DealSuite))
}

type dealEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    response.DealResponse `json:"data"`
}

// =============================================================================
// TestDealLifecycle - create, read, update, count, delete
// =============================================================================

func (s *DealSuite) TestDealLifecycle() {
	s.Run("Normal case: admin manages a deal end to end", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		reqBody := testutil.DtoMap(t, builder.NewDealBuilder().BuildCreateRequestDTO(),
			testutil.Field("deals", []any{map[string]any{"title": "Latte", "discount": 10}}))
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, reqBody, token)

		var created dealEnvelope
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.Equal(t, "Deal created successfully", created.Message)
		id := created.Data.ID
		httptest.AssertHeaders(t, rec, map[string]string{"Location": dealsURL + "/" + id})
		require.Len(t, created.Data.Items, 1)
		require.NotEmpty(t, created.Data.Items[0].ID)
		require.True(t, created.Data.ExpiresAt.Equal(created.Data.Items[0].ExpiresAt), "items inherit the deal expiry")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL+"/"+id, nil, "")
		var fetched dealEnvelope
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &fetched)
		require.Equal(t, "Blue Bottle", fetched.Data.StoreName)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, dealsURL+"/"+id,
			map[string]any{"discount": 40, "badge": "trending"}, token)
		var updated dealEnvelope
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &updated)
		require.Equal(t, 40, updated.Data.Discount)
		require.Equal(t, "Blue Bottle", updated.Data.StoreName, "absent fields keep stored values")
		require.Len(t, updated.Data.Items, 1, "items survive a patch that omits them")

		for i := 1; i <= 2; i++ {
			rec = httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL+"/"+id+"/view", nil, "")
			var counted struct {
				Data response.CounterResponse `json:"data"`
			}
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &counted)
			require.Equal(t, i, counted.Data.Count)
		}

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, dealsURL+"/"+id, nil, token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL+"/"+id, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Deal not found")
	})

	s.Run("Abnormal case: writes require the admin credential", func() {
		t := s.T()
		reqBody := builder.NewDealBuilder().BuildCreateRequestDTO()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, reqBody, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, reqBody, authtest.ExpiredAdminToken(t, s.Config.Admin))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, reqBody, s.Config.Admin.Password)
		require.Equal(t, http.StatusCreated, rec.Code, "the shared secret works as a bearer credential")
		require.Equal(t, 1, dbtest.CountDeals(t, s.DB))
	})

	s.Run("Abnormal case: unknown and malformed ids are 404", func() {
		t := s.T()
		token := authtest.AdminToken(t, s.Config.Admin)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, dealsURL+"/"+uuid.NewString(), map[string]any{"title": "x"}, token)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Deal not found")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL+"/nope/click", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Deal not found")
	})
}

// =============================================================================
// TestListDeals - distance filter, sorting and expiry
// =============================================================================

func (s *DealSuite) TestListDeals() {
	s.Run("Normal case: nearby deals sorted closest first", func() {
		t := s.T()
		near := dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Near", Lat: 40.7130, Lng: -74.0060, Discount: 10})
		mid := dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Mid", Lat: 40.7500, Lng: -73.9900, Discount: 60})
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Boston", Lat: 42.3601, Lng: -71.0589, Discount: 90})
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Expired", Lat: 40.7130, Lng: -74.0060, ExpiresAt: time.Now().Add(-time.Hour)})

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL+"?lat=40.7128&lng=-74.0060&maxDistance=10", nil, "")

		var body response.DealListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, 2, body.Count)
		require.Equal(t, near.String(), body.Data[0].ID)
		require.Equal(t, mid.String(), body.Data[1].ID)
		require.NotNil(t, body.Data[0].Distance)
		require.LessOrEqual(t, *body.Data[0].Distance, *body.Data[1].Distance)
	})

	s.Run("Normal case: coffee within 10km of 40,-73 closest first", func() {
		t := s.T()
		farther := dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Coffee 2km", Lat: 40.02, Lng: -73.0, Discount: 20})
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Gas 1km", Category: "gas", Lat: 40.005, Lng: -73.0, Discount: 30})
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Coffee expired", Lat: 40.001, Lng: -73.0, ExpiresAt: time.Now().Add(-time.Hour)})
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Coffee 111km", Lat: 41.0, Lng: -73.0, Discount: 50})
		closest := dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Coffee 1km", Lat: 40.01, Lng: -73.0, Discount: 10})

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			dealsURL+"?category=coffee&lat=40.0&lng=-73.0&maxDistance=10&sort=closest", nil, "")

		var body response.DealListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, 2, body.Count)
		require.Equal(t, closest.String(), body.Data[0].ID)
		require.Equal(t, farther.String(), body.Data[1].ID)
		require.Equal(t, 1.1, *body.Data[0].Distance)
		require.Equal(t, 2.2, *body.Data[1].Distance)
	})

	s.Run("Normal case: highest discount and category filter", func() {
		t := s.T()
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "A", Lat: 40.71, Lng: -74.0, Discount: 10})
		best := dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "B", Lat: 40.72, Lng: -74.0, Discount: 70})
		dbtest.InsertDeal(t, s.DB, dbtest.DealFixture{StoreName: "Gas", Category: "gas", Lat: 40.72, Lng: -74.0, Discount: 95})

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL+"?category=coffee&sort=highest-discount", nil, "")

		var body response.DealListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, 2, body.Count)
		require.Equal(t, best.String(), body.Data[0].ID)
		require.Nil(t, body.Data[0].Distance)
	})

	s.Run("Normal case: empty result centers on the default point", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL, nil, "")

		var body response.DealListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, 0, body.Count)
		require.NotNil(t, body.Data)
		require.InDelta(t, 40.7589, body.Center.Lat, 1e-9)
		require.InDelta(t, -73.9851, body.Center.Lng, 1e-9)
	})
}

// =============================================================================
// TestBulkCreate - one template, many locations
// =============================================================================

func (s *DealSuite) TestBulkCreate() {
	s.Run("Normal case: every location becomes a deal", func() {
		t := s.T()
		token := authtest.AdminToken(t, s.Config.Admin)
		b := builder.NewDealBuilder()

		locations := make([]any, 3)
		for i := range locations {
			locations[i] = b.WithLocation(40.70+float64(i)*0.01, -74.0).BuildLocationRequest()
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL+"/bulk",
			map[string]any{"deal": b.BuildTemplateRequest(), "locations": locations}, token)

		var body struct {
			Data response.BulkCreateResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
		require.Equal(t, 3, body.Data.Count)
		require.Equal(t, 3, dbtest.CountDeals(t, s.DB))
	})

	s.Run("Abnormal case: one bad location stores nothing", func() {
		t := s.T()
		token := authtest.AdminToken(t, s.Config.Admin)
		b := builder.NewDealBuilder()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL+"/bulk", map[string]any{
			"deal":      b.BuildTemplateRequest(),
			"locations": []any{b.BuildLocationRequest(), map[string]any{"lat": 95, "lng": 0}},
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		require.Equal(t, 0, dbtest.CountDeals(t, s.DB))
	})
}

// =============================================================================
// TestNationwideSearch - against a local Overpass fake
// =============================================================================

func (s *DealSuite) TestNationwideSearch() {
	url := "/api/locations/nationwide?brand=%s&state=%s"

	s.Run("Normal case: state filter, dedup and US-only results", func() {
		t := s.T()
		token := authtest.AdminToken(t, s.Config.Admin)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(url, "Starbucks", "NY"), nil, token)

		var body response.CandidateListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, 2, body.Count, "two NYC points collapse into one, Ontario is dropped")
		require.Equal(t, "New York", body.Data[0].City)
		require.Equal(t, "Albany", body.Data[1].City)
	})

	s.Run("Abnormal case: location search needs the admin credential", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(url, "Starbucks", "NY"), nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// =============================================================================
// TestUpload - storage is not configured in this environment
// =============================================================================

func (s *DealSuite) TestUpload() {
	s.Run("Abnormal case: uploads answer 503 without storage", func() {
		t := s.T()
		token := authtest.AdminToken(t, s.Config.Admin)

		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		rec := httptest.PerformMultipart(t, s.Router, "/api/uploads/images", "file", "logo.png", png, token)
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Image storage is not configured")
	})
}

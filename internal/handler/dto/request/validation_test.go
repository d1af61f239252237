//go:build unit

package request_test

import (
	"encoding/json"
	"errors"
	"testing"

	"dealhub/internal/domain/deal"
	"dealhub/internal/handler/dto/request"
	"dealhub/internal/pkg/ptr"
	"dealhub/tests/common/builder"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, v any) error {
	t.Helper()
	request.RegisterValidators()
	return binding.Validator.ValidateStruct(v)
}

func TestMessage(t *testing.T) {
	valid := builder.NewDealBuilder().BuildCreateRequestDTO()

	testCases := []struct {
		name   string
		mutate func(r *request.CreateDealRequest)
		expect string
	}{
		{name: "valid", mutate: func(r *request.CreateDealRequest) {}},
		{name: "missing embedded field", mutate: func(r *request.CreateDealRequest) { r.StoreName = "" }, expect: "Missing required field: storeName"},
		{name: "missing nested field", mutate: func(r *request.CreateDealRequest) { r.Location.Lat = nil }, expect: "Missing required field: location.lat"},
		{name: "zero discount is present", mutate: func(r *request.CreateDealRequest) { r.Discount = ptr.To(0) }},
		{name: "out of range", mutate: func(r *request.CreateDealRequest) { r.Discount = ptr.To(101) }, expect: "Invalid value for field: discount"},
		{name: "custom category tag", mutate: func(r *request.CreateDealRequest) { r.Category = "all" }, expect: "Invalid value for field: category"},
		{name: "empty badge allowed", mutate: func(r *request.CreateDealRequest) { r.Badge = ptr.To("") }},
		{name: "known badge", mutate: func(r *request.CreateDealRequest) { r.Badge = ptr.To("great-deal") }},
		{name: "unknown badge", mutate: func(r *request.CreateDealRequest) { r.Badge = ptr.To("hot") }, expect: "Invalid value for field: badge"},
		{
			name: "item inside list",
			mutate: func(r *request.CreateDealRequest) {
				r.Items = []request.DealItemRequest{{Title: "Latte", Discount: ptr.To(10)}, {Title: "Scone"}}
			},
			expect: "Missing required field: deals[1].discount",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			loc := *valid.Location
			req.Location = &loc
			tc.mutate(&req)

			err := validate(t, &req)
			if tc.expect == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expect, request.Message(err))
		})
	}
}

func TestMessage_NonValidationErrors(t *testing.T) {
	var target request.CreateDealRequest
	err := json.Unmarshal([]byte(`{"discount":"ten"}`), &target)
	require.Error(t, err)
	assert.Equal(t, "Invalid value for field: discount", request.Message(err))

	var bulk request.BulkCreateDealRequest
	err = json.Unmarshal([]byte(`{"deal":{"title":7}}`), &bulk)
	require.Error(t, err)
	assert.Equal(t, "Invalid value for field: deal.title", request.Message(err))

	assert.Equal(t, "Invalid request body", request.Message(errors.New("unexpected EOF")))
}

func TestCreateDealRequest_ToParams(t *testing.T) {
	req := builder.NewDealBuilder().BuildCreateRequestDTO()
	req.Items = []request.DealItemRequest{{Title: "Latte", Discount: ptr.To(0)}}

	p := req.ToParams()
	assert.Equal(t, "Blue Bottle", p.StoreName)
	assert.Equal(t, 25, p.Discount)
	assert.Equal(t, 40.7128, p.Location.Lat)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 0, p.Items[0].Discount)
}

func TestUpdateDealRequest_ToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		patch := request.UpdateDealRequest{Title: ptr.To("New")}.ToPatch()
		assert.Equal(t, deal.Patch{Title: ptr.To("New")}, patch)
	})

	t.Run("location is converted", func(t *testing.T) {
		patch := request.UpdateDealRequest{
			Location: &request.LocationRequest{Lat: ptr.To(1.0), Lng: ptr.To(2.0), City: "Albany"},
		}.ToPatch()
		require.NotNil(t, patch.Location)
		assert.Equal(t, deal.LocationParams{Lat: 1, Lng: 2, City: "Albany"}, *patch.Location)
	})
}

func TestBulkCreateDealRequest_ToParams(t *testing.T) {
	b := builder.NewDealBuilder()
	tmpl := b.BuildTemplateRequest()
	req := request.BulkCreateDealRequest{
		Deal:      &tmpl,
		Locations: []request.LocationRequest{*b.BuildLocationRequest(), {Lat: ptr.To(41.0), Lng: ptr.To(-73.0)}},
	}

	p, locs := req.ToParams()
	assert.Equal(t, tmpl.Title, p.Title)
	require.Len(t, locs, 2)
	assert.Equal(t, 41.0, locs[1].Lat)

	assert.NoError(t, validate(t, &req))
	req.Locations = nil
	err := validate(t, &req)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: locations", request.Message(err))
}

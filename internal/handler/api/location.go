package api

import (
	"net/http"

	"dealhub/internal/domain/geo"
	reqdto "dealhub/internal/handler/dto/request"
	resdto "dealhub/internal/handler/dto/response"
	"dealhub/internal/handler/httperr"
	"dealhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	q queries.LocationQueries
}

func NewLocationHandler(q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{q: q}
}

// @Summary Search store locations
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param q query string true "Store name"
// @Param city query string false "City"
// @Param state query string false "State"
// @Success 200 {object} resdto.CandidateListResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/locations/search [get]
func (h *LocationHandler) Search(c *gin.Context) {
	var query reqdto.LocationSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	found, err := h.q.Search(c.Request.Context(), query.Query, query.City, query.State)
	if err != nil {
		abortWithUseCaseError(c, err, "Location search failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCandidates(found))
}

// @Summary Find every location of a brand
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param brand query string true "Brand name"
// @Param state query string false "State name or code"
// @Param city query string false "City"
// @Param limit query int false "Maximum results"
// @Success 200 {object} resdto.CandidateListResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/locations/nationwide [get]
func (h *LocationHandler) Nationwide(c *gin.Context) {
	var query reqdto.NationwideSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	found, err := h.q.Nationwide(c.Request.Context(), geo.NationwideQuery{
		Brand: query.Brand,
		State: query.State,
		City:  query.City,
		Limit: query.MaxResults(),
	})
	if err != nil {
		abortWithUseCaseError(c, err, "Nationwide search failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCandidates(found))
}

// @Summary Reverse geocode a point
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/locations/reverse [get]
func (h *LocationHandler) Reverse(c *gin.Context) {
	var query reqdto.ReverseGeocodeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	found, err := h.q.Reverse(c.Request.Context(), geo.Point{Lat: *query.Lat, Lng: *query.Lng})
	if err != nil {
		abortWithUseCaseError(c, err, "Reverse geocoding failed")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(found))
}

// @Summary Geocode an address
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param address query string true "Street address"
// @Param city query string false "City"
// @Param state query string false "State"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/locations/geocode [get]
func (h *LocationHandler) Geocode(c *gin.Context) {
	var query reqdto.GeocodeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	found, err := h.q.Geocode(c.Request.Context(), query.Address, query.City, query.State)
	if err != nil {
		abortWithUseCaseError(c, err, "Geocoding failed")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(found))
}

package api

import (
	"context"
	"net/http"

	"dealhub/internal/domain/geo"
	reqdto "dealhub/internal/handler/dto/request"
	resdto "dealhub/internal/handler/dto/response"
	"dealhub/internal/handler/httperr"
	"dealhub/internal/usecase/commands"
	"dealhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultMaxDistanceKm = 50.0

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.DealQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary List deals
// @Description Active deals, optionally near a point, filtered by category and sorted
// @Tags deals
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param maxDistance query number false "Radius in km (default 50)"
// @Param category query string false "all, restaurant, grocery, gas or coffee"
// @Param sort query string false "closest, highest-discount or trending"
// @Success 200 {object} resdto.DealListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/deals [get]
func (h *DealHandler) List(c *gin.Context) {
	var query reqdto.ListDealsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	if (query.Lat == nil) != (query.Lng == nil) {
		httperr.AbortWithError(c, http.StatusBadRequest, errOriginIncomplete, "lat and lng must be given together", nil)
		return
	}

	sortBy, err := queries.ParseSortOption(query.Sort)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	filters := queries.DealFilters{
		Category: query.Category,
		Sort:     sortBy,
	}
	if query.Lat != nil {
		filters.Origin = &geo.Point{Lat: *query.Lat, Lng: *query.Lng}
		maxDistance := defaultMaxDistanceKm
		if query.MaxDistance != nil {
			maxDistance = *query.MaxDistance
		}
		filters.MaxDistanceKm = &maxDistance
	}

	list, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch deals")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(list))
}

// @Summary Get deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	id, ok := parseDealID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch deal")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromDealView(view)))
}

// @Summary Create deal
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDealRequest true "Deal"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create deal")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.Header("Location", "/api/deals/"+id.String())
	c.JSON(http.StatusCreated, resdto.OKWithMessage(resdto.FromDealView(view), "Deal created successfully"))
}

// @Summary Create one deal at many locations
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkCreateDealRequest true "Deal template and locations"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/deals/bulk [post]
func (h *DealHandler) BulkCreate(c *gin.Context) {
	var req reqdto.BulkCreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	params, locations := req.ToParams()
	ids, err := h.cmds.BulkCreate(c.Request.Context(), params, locations)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create deals")
		return
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage(
		resdto.BulkCreateResponse{IDs: out, Count: len(out)},
		"Deals created successfully",
	))
}

// @Summary Update deal
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.UpdateDealRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	id, ok := parseDealID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortWithUseCaseError(c, err, "Failed to update deal")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(resdto.FromDealView(view), "Deal updated successfully"))
}

// @Summary Delete deal
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	id, ok := parseDealID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Failed to delete deal")
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(nil, "Deal deleted successfully"))
}

// @Summary Record a deal view
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id}/view [post]
func (h *DealHandler) RecordView(c *gin.Context) {
	h.count(c, h.cmds.RecordView)
}

// @Summary Record a deal click-through
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id}/click [post]
func (h *DealHandler) RecordClick(c *gin.Context) {
	h.count(c, h.cmds.RecordClick)
}

func (h *DealHandler) count(c *gin.Context, record func(context.Context, uuid.UUID) (int, error)) {
	id, ok := parseDealID(c)
	if !ok {
		return
	}
	n, err := record(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to record event")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.CounterResponse{ID: id.String(), Count: n}))
}

func parseDealID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// unknown ids and malformed ids look the same to clients
		httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		return uuid.Nil, false
	}
	return id, true
}

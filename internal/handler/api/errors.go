package api

import (
	"errors"
	"net/http"

	"dealhub/internal/domain/geo"
	"dealhub/internal/handler/httperr"
	"dealhub/internal/pkg/errs"
	"dealhub/internal/usecase/commands"
	"dealhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the error categories shared by every use case.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMessage(err), nil)
	case errs.Is(err, errs.ErrUpstream):
		msg := "Location provider unavailable, please retry later"
		if hint := errs.Hint(err); hint != "" {
			msg += " (" + hint + ")"
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

var (
	errOriginIncomplete = errs.New("lat and lng must be given together")
	errMissingFile      = errs.New("multipart field file is required")
)

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, queries.ErrDealNotFound), errors.Is(err, commands.ErrDealNotFound):
		return "Deal not found"
	case errors.Is(err, geo.ErrLocationNotFound):
		return "Location not found"
	default:
		return "Not found"
	}
}

package api

import (
	"errors"
	"net/http"

	reqdto "dealhub/internal/handler/dto/request"
	resdto "dealhub/internal/handler/dto/response"
	"dealhub/internal/handler/httperr"
	"dealhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
}

func NewAdminHandler(cmds commands.AdminCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Start an admin session
// @Description Exchanges the admin password for a signed session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin password"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/session [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Message(err), nil)
		return
	}
	session, err := h.cmds.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminDisabled):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Admin login is not enabled", nil)
		case errors.Is(err, commands.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to start session", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.AdminSessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	}))
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifa-online/rifa-api/internal/api/handler/v1/request"
	"github.com/rifa-online/rifa-api/internal/api/handler/v1/response"
)

type AdminService interface {
	IsAdmin(senha string) bool
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleLogin godoc
// @Summary      Pre-validate the admin secret
// @Tags         admin
// @Produce      json
// @Param        request   body      request.LoginRequest false "request body"
// @Success      200      {object}   response.Login
// @Router       /admin/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	_ = ctx.ShouldBindJSON(&req) // Body is optional, the header may carry the secret.

	autorizado := h.svc.IsAdmin(ctx.GetHeader("Authorization")) || h.svc.IsAdmin(req.Senha)

	ctx.JSON(http.StatusOK, response.Login{
		Autorizado: autorizado,
	})
}

// HandleVerify godoc
// @Summary      Verify the admin secret from the Authorization header
// @Tags         admin
// @Security     AdminAuth
// @Success      200
// @Failure      401
// @Router       /api/verificar-admin [get]
func (h *AdminHandler) HandleVerify(ctx *gin.Context) {
	if !h.svc.IsAdmin(ctx.GetHeader("Authorization")) {
		ctx.Status(http.StatusUnauthorized)

		return
	}

	ctx.Status(http.StatusOK)
}

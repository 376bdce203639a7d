package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifa-online/rifa-api/internal/api/handler/v1/request"
	"github.com/rifa-online/rifa-api/internal/api/handler/v1/response"
)

type SettingService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, rifa, premio string) error
}

type SettingHandler struct {
	svc SettingService
}

func NewSettingHandler(svc SettingService) *SettingHandler {
	return &SettingHandler{
		svc: svc,
	}
}

// HandleGetSettings godoc
// @Summary      Get the displayed raffle price and prize
// @Tags         configuracoes
// @Produce      json
// @Success      200      {object}   map[string]string
// @Failure      500      {object}   response.Err
// @Router       /configuracoes [get]
func (h *SettingHandler) HandleGetSettings(ctx *gin.Context) {
	settings, err := h.svc.GetAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSettings -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleUpdateSettings godoc
// @Summary      Update the displayed raffle price and/or prize
// @Tags         configuracoes
// @Produce      json
// @Security     AdminAuth
// @Param        request   body      request.UpdateSettingsRequest true "request body"
// @Success      200      {object}   response.Message
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /configuracoes [put]
func (h *SettingHandler) HandleUpdateSettings(ctx *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Update(ctx.Request.Context(), req.Rifa, req.Premio); err != nil {
		err = fmt.Errorf("v1.HandleUpdateSettings -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "settings updated",
	})
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifa-online/rifa-api/internal/api/handler/v1/request"
	"github.com/rifa-online/rifa-api/internal/api/handler/v1/response"
	"github.com/rifa-online/rifa-api/internal/domain"
	"github.com/rifa-online/rifa-api/internal/service"
)

type ReservationService interface {
	Reserve(ctx context.Context, nome string, numeros []string) ([]domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	SetPago(ctx context.Context, numero string, pago bool) error
	Delete(ctx context.Context, numero string) error
	Clear(ctx context.Context) error
}

type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleCreate godoc
// @Summary      Reserve raffle numbers for a name
// @Tags         reservas
// @Produce      json
// @Param        request   body      request.CreateReservationRequest true "request body"
// @Success      201      {object}   response.Message
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reservas [post]
func (h *ReservationHandler) HandleCreate(ctx *gin.Context) {
	var req request.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if _, err := h.svc.Reserve(ctx.Request.Context(), req.Nome, req.Numeros); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMissingFields))

			return
		}
		if errors.Is(err, service.ErrNumeroTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrNumeroTaken))

			return
		}

		err = fmt.Errorf("v1.HandleCreate -> h.svc.Reserve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.Message{
		Message: "reservation created",
	})
}

// HandleList godoc
// @Summary      List every reservation in creation order
// @Tags         reservas
// @Produce      json
// @Success      200      {array}    domain.Reservation
// @Failure      500      {object}   response.Err
// @Router       /reservas [get]
func (h *ReservationHandler) HandleList(ctx *gin.Context) {
	reservations, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleList -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleMarkPago godoc
// @Summary      Mark a reservation as paid
// @Tags         reservas
// @Produce      json
// @Param        numero   path       string true "reservation number"
// @Success      200      {object}   response.Message
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reservas/{numero}/pago [put]
func (h *ReservationHandler) HandleMarkPago(ctx *gin.Context) {
	h.setPago(ctx, true)
}

// HandleMarkNaoPago godoc
// @Summary      Mark a reservation as unpaid
// @Tags         reservas
// @Produce      json
// @Param        numero   path       string true "reservation number"
// @Success      200      {object}   response.Message
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reservas/{numero}/nao-pago [put]
func (h *ReservationHandler) HandleMarkNaoPago(ctx *gin.Context) {
	h.setPago(ctx, false)
}

func (h *ReservationHandler) setPago(ctx *gin.Context, pago bool) {
	numero := ctx.Param("numero")

	if err := h.svc.SetPago(ctx.Request.Context(), numero, pago); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrReservationNotFound))

			return
		}

		err = fmt.Errorf("v1.setPago -> h.svc.SetPago -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "reservation updated",
	})
}

// HandleDelete godoc
// @Summary      Delete a single reservation
// @Tags         reservas
// @Produce      json
// @Security     AdminAuth
// @Param        numero   path       string true "reservation number"
// @Success      200      {object}   response.Message
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reservas/{numero} [delete]
func (h *ReservationHandler) HandleDelete(ctx *gin.Context) {
	numero := ctx.Param("numero")

	if err := h.svc.Delete(ctx.Request.Context(), numero); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrReservationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDelete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: fmt.Sprintf("reservation %v deleted", numero),
	})
}

// HandleClear godoc
// @Summary      Delete every reservation
// @Tags         reservas
// @Produce      json
// @Security     AdminAuth
// @Success      200      {object}   response.Message
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reservas [delete]
func (h *ReservationHandler) HandleClear(ctx *gin.Context) {
	if err := h.svc.Clear(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleClear -> h.svc.Clear -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "raffle cleared",
	})
}

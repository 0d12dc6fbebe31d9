package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

type BarbershopHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBarbershopHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BarbershopHandler {
	return &BarbershopHandler{
		repo:  repo,
		audit: audit,
	}
}

type UpdateBarbershopRequest struct {
	Name            *string            `json:"name"`
	Address         *string            `json:"address"`
	Phone           *string            `json:"phone"`
	Notice          *string            `json:"notice"`
	Prices          map[string]float64 `json:"prices"`
	EnabledServices []string           `json:"enabled_services"`
	Slots           []string           `json:"slots"`
	SlotDurationMin *int               `json:"slot_duration_min"`
	Timezone        *string            `json:"timezone"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	shop, err := h.repo.GetBarbershopByID(c.Request.Context(), id.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UpdateMeBarbershop changes the configuration. The slug never changes.
func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	shop, err := h.repo.GetBarbershopByID(c.Request.Context(), id.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := barbershop.Apply(shop, barbershop.Update{
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		Notice:          req.Notice,
		Prices:          req.Prices,
		EnabledServices: req.EnabledServices,
		Slots:           req.Slots,
		SlotDurationMin: req.SlotDurationMin,
		Timezone:        req.Timezone,
	}); err != nil {
		writeError(c, err)
		return
	}

	if err := h.repo.UpdateBarbershop(c.Request.Context(), shop); err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &id.UserID,
		Action:       audit.ActionBarbershopUpdated,
		Entity:       "barbershop",
		EntityID:     &shop.ID,
		RequestID:    middleware.GetRequestID(c),
		Metadata:     req,
	})

	c.JSON(http.StatusOK, shop)
}

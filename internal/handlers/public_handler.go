package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *ucBooking.GetAvailability
	commit       *ucBooking.CommitReservation
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	commit *ucBooking.CommitReservation,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		commit:       commit,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateReservationRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Time      string   `json:"time"` // HH:MM
	Services  []string `json:"services"`
}

type publicService struct {
	Kind  string  `json:"kind"`
	Price float64 `json:"price"`
}

////////////////////////////////////////////////////////
// BARBERSHOP PAGE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	shop, err := h.repo.GetBarbershopBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	offered := domain.OfferedServices(shop)
	services := make([]publicService, 0, len(offered))
	for _, k := range offered {
		services = append(services, publicService{Kind: string(k), Price: shop.Prices[string(k)]})
	}

	slots := shop.Slots
	if slots == nil {
		slots = []string{}
	}

	httpresp.OK(c, gin.H{
		"name":              shop.Name,
		"slug":              shop.Slug,
		"address":           shop.Address,
		"phone":             shop.Phone,
		"notice":            shop.Notice,
		"services":          services,
		"slots":             slots,
		"slot_duration_min": shop.SlotDurationMin,
		"timezone":          shop.Timezone,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "date_required", "Indicá la fecha (AAAA-MM-DD).")
		return
	}

	shop, err := h.repo.GetBarbershopBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.availability.Execute(c.Request.Context(), shop, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, result)
}

////////////////////////////////////////////////////////
// CREATE RESERVATION
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	shop, err := h.repo.GetBarbershopBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req PublicCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.commit.Execute(c.Request.Context(), ucBooking.CommitReservationInput{
		BarbershopID: shop.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Date:         req.Date,
		Time:         req.Time,
		Services:     req.Services,
		RequestID:    middleware.GetRequestID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	res := out.Reservation
	services := make([]string, len(out.Services))
	for i, k := range out.Services {
		services[i] = string(k)
	}

	httpresp.Created(c, dto.ReservationCreatedDTO{
		ID:           res.ID,
		BarbershopID: res.BarbershopID,
		CustomerID:   res.CustomerID,
		Date:         res.Date,
		Time:         res.Time,
		Services:     services,
		Total:        out.Total,
		Confirmed:    res.Confirmed,
		CreatedAt:    res.CreatedAt,
	})
}

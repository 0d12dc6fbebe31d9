package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER (DONO DA BARBEARIA)
// ======================================================

type ReservationHandler struct {
	repo         domain.Repository
	availability *ucBooking.GetAvailability
	list         *ucBooking.ListReservations
	cancel       *ucBooking.CancelReservation
	reminder     *ucBooking.SendReminder
}

func NewReservationHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	list *ucBooking.ListReservations,
	cancel *ucBooking.CancelReservation,
	reminder *ucBooking.SendReminder,
) *ReservationHandler {
	return &ReservationHandler{
		repo:         repo,
		availability: availability,
		list:         list,
		cancel:       cancel,
		reminder:     reminder,
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) Availability(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	shop, err := h.repo.GetBarbershopByID(c.Request.Context(), id.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = timezone.Today(timezone.NowIn(shop.Timezone), shop.Timezone)
	}

	result, err := h.availability.Execute(c.Request.Context(), shop, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	items, err := h.list.ByDate(c.Request.Context(), id.BarbershopID, strings.TrimSpace(c.Query("date")))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *ReservationHandler) Upcoming(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.BadRequest(c, "invalid_days", "Cantidad de días inválida.")
			return
		}
		days = n
	}

	items, err := h.list.Upcoming(c.Request.Context(), id.BarbershopID, days)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}
	reservationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(
		c.Request.Context(),
		id.BarbershopID,
		id.UserID,
		reservationID,
		middleware.GetRequestID(c),
	); err != nil {
		writeError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// REMINDER
// ======================================================

func (h *ReservationHandler) SendReminder(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}
	reservationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	status, err := h.reminder.Execute(
		c.Request.Context(),
		id.BarbershopID,
		id.UserID,
		reservationID,
		middleware.GetRequestID(c),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": status})
}

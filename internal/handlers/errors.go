package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// validationMessages are the user facing texts of the business codes.
var validationMessages = map[string]string{
	"first_name_required":   "El nombre es obligatorio.",
	"last_name_required":    "El apellido es obligatorio.",
	"invalid_phone":         "El celular debe tener 10 dígitos.",
	"invalid_date":          "Fecha inválida, usá el formato AAAA-MM-DD.",
	"date_in_past":          "No se puede reservar en una fecha pasada.",
	"invalid_time":          "Horario inválido, usá el formato HH:MM.",
	"time_not_offered":      "Ese horario no está disponible en esta barbería.",
	"services_required":     "Elegí al menos un servicio.",
	"unknown_service":       "Servicio desconocido.",
	"service_not_offered":   "La barbería no ofrece ese servicio.",
	"duplicate_service":     "Servicio repetido.",
	"base_service_required": "El corte siempre está incluido.",
	"invalid_days":          "Cantidad de días inválida.",
	"reminder_already_sent": "El recordatorio ya fue enviado.",
	"name_required":         "El nombre de la barbería es obligatorio.",
	"invalid_price":         "Precio inválido.",
	"service_not_togglable": "Ese servicio no se puede desactivar.",
	"invalid_slot":          "Horario inválido en la lista de turnos.",
	"duplicate_slot":        "Horario repetido en la lista de turnos.",
	"invalid_slot_duration": "Duración de turno inválida.",
	"invalid_timezone":      "Zona horaria inválida.",
}

// writeError maps booking errors to HTTP. Anything unclassified is a 500
// and is logged with its stack.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		code := domain.Code(err)
		msg, ok := validationMessages[code]
		if !ok {
			msg = "Datos inválidos."
		}
		httperr.BadRequest(c, code, msg)

	case errors.Is(err, domain.ErrSlotTaken):
		httperr.Conflict(c, "slot_taken", "Este horario ya fue reservado. Por favor, elige otro.")

	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "not_found", "Recurso no encontrado.")

	case errors.Is(err, domain.ErrUnavailable):
		log.Printf("[%s] storage unavailable: %+v", middleware.GetRequestID(c), err)
		httperr.ServiceUnavailable(c, "service_unavailable", "Servicio no disponible, intentá nuevamente.")

	case errors.Is(err, ucBooking.ErrReminderFailed):
		log.Printf("[%s] reminder failed: %+v", middleware.GetRequestID(c), err)
		httperr.BadGateway(c, "reminder_failed", "No se pudo enviar el recordatorio.")

	default:
		log.Printf("[%s] internal error: %+v", middleware.GetRequestID(c), err)
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}

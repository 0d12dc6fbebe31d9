package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// ======================================================
// LIST CUSTOMERS (DONO)
// ======================================================

// List returns the customers that booked at least once at the owner's
// barbershop. Customers are shared between shops, so the scope comes from
// the reservations.
func (h *CustomerHandler) List(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Customer{}).
		Where(
			"id IN (?)",
			h.db.Model(&models.Reservation{}).
				Select("customer_id").
				Where("barbershop_id = ?", id.BarbershopID),
		)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("last_name, first_name").
		Find(&customers).Error; err != nil {

		httperr.Write(c, http.StatusInternalServerError, "failed_to_list_customers", "Error al listar clientes.")
		return
	}

	httpresp.List(c, customers)
}

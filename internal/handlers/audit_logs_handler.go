package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditFilter struct {
	action    string
	entity    string
	entityID  uint64
	requestID string
	from      *time.Time
	to        *time.Time
	page      int
	limit     int
}

type auditLogView struct {
	ID        uint            `json:"id"`
	UserID    *uint           `json:"user_id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *uint           `json:"entity_id"`
	RequestID string          `json:"request_id,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type auditPage struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
	Logs  []auditLogView `json:"logs"`
}

// List pages through the audit trail of the owner's barbershop, newest
// first. Filters: action, entity, entity_id, request_id, from, to.
func (h *AuditLogsHandler) List(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	f, ok := parseAuditFilter(c)
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("barbershop_id = ?", id.BarbershopID)

	if f.action != "" {
		q = q.Where("action = ?", f.action)
	}
	if f.entity != "" {
		q = q.Where("entity = ?", f.entity)
	}
	if f.entityID != 0 {
		q = q.Where("entity_id = ?", f.entityID)
	}
	if f.requestID != "" {
		q = q.Where("request_id = ?", f.requestID)
	}
	if f.from != nil {
		q = q.Where("created_at >= ?", *f.from)
	}
	if f.to != nil {
		q = q.Where("created_at < ?", *f.to)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Error al contar los registros.")
		return
	}

	var rows []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.limit).
		Offset((f.page - 1) * f.limit).
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Error al listar los registros.")
		return
	}

	logs := make([]auditLogView, 0, len(rows))
	for _, r := range rows {
		v := auditLogView{
			ID:        r.ID,
			UserID:    r.UserID,
			Action:    r.Action,
			Entity:    r.Entity,
			EntityID:  r.EntityID,
			RequestID: r.RequestID,
			CreatedAt: r.CreatedAt,
		}
		if r.Metadata != "" && json.Valid([]byte(r.Metadata)) {
			v.Metadata = json.RawMessage(r.Metadata)
		}
		logs = append(logs, v)
	}

	httpresp.OK(c, auditPage{
		Page:  f.page,
		Limit: f.limit,
		Total: total,
		Logs:  logs,
	})
}

func parseAuditFilter(c *gin.Context) (auditFilter, bool) {
	f := auditFilter{
		action:    c.Query("action"),
		entity:    c.Query("entity"),
		requestID: c.Query("request_id"),
		page:      1,
		limit:     auditDefaultLimit,
	}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		f.page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= auditMaxLimit {
		f.limit = l
	}

	if raw := c.Query("entity_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_entity_id", "entity_id inválido.")
			return f, false
		}
		f.entityID = v
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Fecha 'from' inválida.")
			return f, false
		}
		f.from = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Fecha 'to' inválida.")
			return f, false
		}
		// inclusive day
		end := to.AddDate(0, 0, 1)
		f.to = &end
	}

	return f, true
}

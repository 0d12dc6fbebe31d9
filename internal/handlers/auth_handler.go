package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/identity"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/session"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

var (
	errSlugTaken  = errors.New("slug taken")
	errEmailTaken = errors.New("email taken")
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	revoker session.Revoker
	audit   *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	revoker session.Revoker,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		config:  cfg,
		revoker: revoker,
		audit:   audit,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	BarbershopName    string `json:"barbershop_name" binding:"required"`
	BarbershopSlug    string `json:"barbershop_slug"`
	BarbershopPhone   string `json:"barbershop_phone"`
	BarbershopAddress string `json:"barbershop_address"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates the owner account together with its barbershop.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.BarbershopSlug))
	if slug == "" {
		slug = barbershop.Slugify(req.BarbershopName)
	}
	if !barbershop.ValidSlug(slug) {
		httperr.BadRequest(c, "invalid_slug", "El identificador de la barbería es inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del e-mail no parece válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	tz := h.config.DefaultTimezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	shop := models.Barbershop{
		Name:            strings.TrimSpace(req.BarbershopName),
		Slug:            slug,
		Phone:           strings.TrimSpace(req.BarbershopPhone),
		Address:         strings.TrimSpace(req.BarbershopAddress),
		Prices:          map[string]float64{},
		EnabledServices: []string{},
		Slots:           barbershop.DefaultSlots(),
		SlotDurationMin: barbershop.DefaultSlotDurationMin,
		Timezone:        tz,
	}
	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "owner",
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&shop).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				return errSlugTaken
			}
			return err
		}

		user.BarbershopID = shop.ID
		if err := tx.Omit("Barbershop").Create(&user).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				return errEmailTaken
			}
			return err
		}
		return nil
	})

	switch {
	case errors.Is(err, errSlugTaken):
		httperr.Conflict(c, "slug_taken", "Ya existe una barbería con ese identificador.")
		return
	case errors.Is(err, errEmailTaken):
		httperr.Conflict(c, "email_taken", "Ese e-mail ya está registrado.")
		return
	case err != nil:
		log.Printf("[%s] register: %v", middleware.GetRequestID(c), err)
		httperr.Internal(c, "failed_to_register", "Error al registrar la barbería.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &user.ID,
		Action:       audit.ActionOwnerRegistered,
		Entity:       "user",
		EntityID:     &user.ID,
		RequestID:    middleware.GetRequestID(c),
	})

	token, err := identity.Issue(h.config.JWTSecret, h.config.JWTTTL, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error interno.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":       userView(&user),
		"barbershop": shopView(&shop),
		"token":      token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Barbershop").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail o contraseña incorrectos.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail o contraseña incorrectos.")
		return
	}

	token, err := identity.Issue(h.config.JWTSecret, h.config.JWTTTL, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error interno.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       userView(&user),
		"barbershop": shopView(user.Barbershop),
		"token":      token,
	})
}

// Logout revokes the presented token until it would have expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	if err := h.revoker.Revoke(c.Request.Context(), id.TokenID, id.ExpiresAt); err != nil {
		log.Printf("[%s] logout: %v", middleware.GetRequestID(c), err)
		httperr.ServiceUnavailable(c, "logout_failed", "No se pudo cerrar la sesión.")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Views ---------

func userView(u *models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"role":          u.Role,
		"barbershop_id": u.BarbershopID,
	}
}

func shopView(s *models.Barbershop) gin.H {
	if s == nil {
		return nil
	}
	return gin.H{
		"id":      s.ID,
		"name":    s.Name,
		"slug":    s.Slug,
		"phone":   s.Phone,
		"address": s.Address,
	}
}

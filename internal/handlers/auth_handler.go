package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/config"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/httpresp"
	"github.com/incluiaqui/incluiaqui-api/internal/middleware"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
	"github.com/incluiaqui/incluiaqui-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: dispatcher}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"omitempty,oneof=USER OWNER"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados de cadastro inválidos.", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.Write(c, http.StatusBadRequest, httperr.KindValidation,
			"O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	if count > 0 {
		httperr.Write(c, http.StatusConflict, httperr.KindConflict,
			"Este e-mail já está cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		AvatarURL:    req.AvatarURL,
		Role:         role,
		Status:       models.StatusActive,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		// The unique index on email decides concurrent registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, httperr.KindConflict,
				"Este e-mail já está cadastrado.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Credenciais inválidas.", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Write(c, http.StatusUnauthorized, httperr.KindUnauthorized,
				"E-mail ou senha incorretos.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Write(c, http.StatusUnauthorized, httperr.KindUnauthorized,
			"E-mail ou senha incorretos.")
		return
	}

	if !user.IsActive() {
		httperr.Write(c, http.StatusUnauthorized, httperr.KindUnauthorized,
			"Usuário inativo.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me returns the authenticated account, fresh from the store.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.Principal(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		First(&user, "id = ?", principal.ID).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

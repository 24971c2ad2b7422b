package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/skincare/internal/pkg/logger"
	"github.com/xyz-asif/skincare/internal/pkg/response"
	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

// AccountService is what the handler needs from Service
type AccountService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type Handler struct {
	service AccountService
}

func NewHandler(service AccountService) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if err := h.service.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.BadRequest(c, "Email already registered", "EMAIL_TAKEN")
			return
		}
		logger.Error("register %s: %v", req.Email, err)
		response.DatabaseError(c, "Failed to create user")
		return
	}

	response.Message(c, "User created successfully")
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Description Returns a bearer token whose subject is the account email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Router /token [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	accessToken, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Unauthorized(c, "Incorrect email or password", "INVALID_CREDENTIALS")
			return
		}
		logger.Error("login %s: %v", req.Email, err)
		response.DatabaseError(c, "Failed to authenticate")
		return
	}

	response.OK(c, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

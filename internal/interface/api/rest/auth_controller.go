package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	"github.com/thiagohrcosta/FastFeet-API/internal/application/services"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/auth"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteSessions, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	token, err := ac.authService.Authenticate(c.Request.Context(), req.DocumentID, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a session"},
		)
		ac.logger.Error("Authenticate() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	"github.com/thiagohrcosta/FastFeet-API/internal/application/services"
	accountDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	accountDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/middleware"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/validator"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type AccountController struct {
	accountService ports.AccountService
	logger         *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	accountService ports.AccountService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AccountController {
	ac := &AccountController{
		accountService: accountService,
		logger:         logger,
	}

	// Registration is the only unauthenticated account operation.
	r.POST(RouteAccounts, ac.CreateAccountHandler)
	r.GET(RouteAccounts, middleware.AuthMiddleware(jwtService), ac.GetAccountsHandler)
	r.GET(RouteAccount, middleware.AuthMiddleware(jwtService), ac.GetAccountHandler)
	r.PATCH(RouteAccount, middleware.AuthMiddleware(jwtService), ac.UpdateAccountHandler)
	r.DELETE(RouteAccount, middleware.AuthMiddleware(jwtService), ac.DeleteAccountHandler)
	r.GET(RouteDeliverymen, middleware.AuthMiddleware(jwtService), ac.GetDeliverymenHandler)

	return ac
}

func (ac *AccountController) CreateAccountHandler(c *gin.Context) {
	var req account.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateAccount(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.CreateAccount(
		c.Request.Context(),
		req.Name, req.DocumentID, req.Password,
		accountDomain.Role(req.Role),
	)
	if err != nil {
		if errors.Is(err, accountDB.ErrDocumentIDInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Document Id already in use."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create an account"},
		)
		ac.logger.Error("CreateAccount() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, account.ToResponseCreated(*a))
}

func (ac *AccountController) GetAccountsHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	accounts, err := ac.accountService.FindAccounts(c.Request.Context(), caller, page)
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get accounts"},
		)
		ac.logger.Error("FindAccounts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, account.ResponseData{
		Data: account.ToResponseAccounts(accounts),
	})
}

func (ac *AccountController) GetAccountHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	a, err := ac.accountService.FindAccountByIdentifier(c.Request.Context(), caller, c.Param("identifier"))
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get an account"},
		)
		ac.logger.Error("FindAccountByIdentifier() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) UpdateAccountHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, id := validator.IsUUID(c.Param("identifier"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "identifier must be a valid UUID"},
		)
		return
	}

	var req account.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdateAccount(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	patch := ports.AccountPatch{
		Name:       req.Name,
		DocumentID: req.DocumentID,
		Password:   req.Password,
	}
	if req.Role != nil {
		role := accountDomain.Role(*req.Role)
		patch.Role = &role
	}

	a, err := ac.accountService.UpdateAccount(c.Request.Context(), caller, id, patch)
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		if errors.Is(err, accountDB.ErrDocumentIDInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Document Id already in use."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update an account"},
		)
		ac.logger.Error("UpdateAccount() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) DeleteAccountHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, id := validator.IsUUID(c.Param("identifier"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "identifier must be a valid UUID"},
		)
		return
	}

	err := ac.accountService.DeleteAccount(c.Request.Context(), caller, id)
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete an account"},
		)
		ac.logger.Error("DeleteAccount() error", zap.Error(err))
		return
	}

	c.Status(http.StatusOK)
}

func (ac *AccountController) GetDeliverymenHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	deliverymen, err := ac.accountService.FindDeliverymen(c.Request.Context(), caller)
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get deliverymen"},
		)
		ac.logger.Error("FindDeliverymen() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, account.ResponseData{
		Data: account.ToResponseAccounts(deliverymen),
	})
}

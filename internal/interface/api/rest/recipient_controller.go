package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	"github.com/thiagohrcosta/FastFeet-API/internal/application/services"
	recipientDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
	deliveryDTO "github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/delivery"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/middleware"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/validator"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type RecipientController struct {
	recipientService ports.RecipientService
	logger           *zap.Logger
}

func NewRecipientController(
	r *gin.Engine,
	recipientService ports.RecipientService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *RecipientController {
	rc := &RecipientController{
		recipientService: recipientService,
		logger:           logger,
	}

	r.POST(RouteRecipients, middleware.AuthMiddleware(jwtService), rc.CreateRecipientHandler)
	r.GET(RouteRecipients, middleware.AuthMiddleware(jwtService), rc.GetRecipientsHandler)
	r.GET(RouteRecipient, middleware.AuthMiddleware(jwtService), rc.GetRecipientHandler)
	r.PATCH(RouteRecipient, middleware.AuthMiddleware(jwtService), rc.UpdateRecipientHandler)
	r.DELETE(RouteRecipient, middleware.AuthMiddleware(jwtService), rc.DeleteRecipientHandler)

	// Tokenless self-identification: the recipient proves who they are with
	// the email + document id pair instead of a bearer token.
	r.POST(RouteRecipientItems, rc.GetRecipientItemsHandler)

	return rc
}

func (rc *RecipientController) CreateRecipientHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req recipient.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateRecipient(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	created, err := rc.recipientService.CreateRecipient(c.Request.Context(), caller, recipient.ToDomain(req))
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, recipientDB.ErrDocumentIDInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Document Id already in use."})
			return
		}
		if errors.Is(err, recipientDB.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a recipient"},
		)
		rc.logger.Error("CreateRecipient() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, recipient.ToResponseRecipient(*created))
}

func (rc *RecipientController) GetRecipientsHandler(c *gin.Context) {
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

	recipients, err := rc.recipientService.FindRecipients(c.Request.Context(), caller, page)
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get recipients"},
		)
		rc.logger.Error("FindRecipients() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, recipient.ResponseData{
		Data: recipient.ToResponseRecipients(recipients),
	})
}

func (rc *RecipientController) GetRecipientHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	found, err := rc.recipientService.FindRecipientByIdentifier(c.Request.Context(), caller, c.Param("identifier"))
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, services.ErrRecipientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a recipient"},
		)
		rc.logger.Error("FindRecipientByIdentifier() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, recipient.ToResponseRecipient(*found))
}

func (rc *RecipientController) UpdateRecipientHandler(c *gin.Context) {
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

	var req recipient.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdateRecipient(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	updated, err := rc.recipientService.UpdateRecipient(c.Request.Context(), caller, id, recipient.ToDomainUpdate(req))
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, services.ErrRecipientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
			return
		}
		if errors.Is(err, recipientDB.ErrDocumentIDInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Document Id already in use."})
			return
		}
		if errors.Is(err, recipientDB.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use."})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a recipient"},
		)
		rc.logger.Error("UpdateRecipient() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, recipient.ToResponseRecipient(*updated))
}

func (rc *RecipientController) DeleteRecipientHandler(c *gin.Context) {
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

	err := rc.recipientService.DeleteRecipient(c.Request.Context(), caller, id)
	if err != nil {
		if errors.Is(err, policy.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
			return
		}
		if errors.Is(err, services.ErrRecipientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a recipient"},
		)
		rc.logger.Error("DeleteRecipient() error", zap.Error(err))
		return
	}

	c.Status(http.StatusOK)
}

func (rc *RecipientController) GetRecipientItemsHandler(c *gin.Context) {
	var req recipient.ItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}
	if errs := validator.ValidateRecipientItems(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	found, deliveries, err := rc.recipientService.FindRecipientItems(c.Request.Context(), req.Email, req.DocumentID)
	if err != nil {
		// Both failures are forbidden, not 404/401: the endpoint is tokenless
		// and must not reveal which half of the email + document id pair
		// was wrong via the status code.
		if errors.Is(err, services.ErrRecipientNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Recipient not found"})
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get recipient items"},
		)
		rc.logger.Error("FindRecipientItems() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, recipient.ItemsResponse{
		Recipient:  recipient.ToResponseRecipient(*found),
		Deliveries: deliveryDTO.ToResponseDeliveries(deliveries),
	})
}

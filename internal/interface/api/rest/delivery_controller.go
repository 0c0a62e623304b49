package rest

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	"github.com/thiagohrcosta/FastFeet-API/internal/application/services"
	deliveryDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	deliveryDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/delivery"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/delivery"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/middleware"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/validator"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

// 10MB
const maxPhotoSize = int64(10 << 20)

type DeliveryController struct {
	deliveryService ports.DeliveryService
	logger          *zap.Logger
}

func NewDeliveryController(
	r *gin.Engine,
	deliveryService ports.DeliveryService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *DeliveryController {
	dc := &DeliveryController{
		deliveryService: deliveryService,
		logger:          logger,
	}

	r.POST(RouteDeliveries, middleware.AuthMiddleware(jwtService), dc.CreateDeliveryHandler)
	r.GET(RouteDeliveries, middleware.AuthMiddleware(jwtService), dc.GetDeliveriesHandler)
	r.GET(RouteDelivery, middleware.AuthMiddleware(jwtService), dc.GetDeliveryHandler)
	r.PATCH(RouteDelivery, middleware.AuthMiddleware(jwtService), dc.UpdateDeliveryHandler)
	r.DELETE(RouteDelivery, middleware.AuthMiddleware(jwtService), dc.DeleteDeliveryHandler)
	r.GET(RouteDeliveryItems, middleware.AuthMiddleware(jwtService), dc.GetDeliveryItemsHandler)

	return dc
}

// photoFromForm reads the optional "photo" part. A missing part is not an
// error; an oversized one is.
func photoFromForm(c *gin.Context) (*multipart.FileHeader, bool) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil, true
	}
	if fh.Size <= 0 || fh.Size > maxPhotoSize {
		return nil, false
	}
	return fh, true
}

func (dc *DeliveryController) CreateDeliveryHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req delivery.Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateDelivery(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	photo, ok := photoFromForm(c)
	if !ok {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large or empty"})
		return
	}

	_, recipientID := validator.IsUUID(req.RecipientID)
	create := ports.CreateDelivery{
		Product:     req.Product,
		Status:      deliveryDomain.Status(req.Status),
		RecipientID: recipientID,
	}
	if req.DeliverymanID != "" {
		_, dmID := validator.IsUUID(req.DeliverymanID)
		create.DeliverymanID = &dmID
	}
	create.Photo = photo

	created, err := dc.deliveryService.CreateDelivery(c.Request.Context(), caller, create)
	if err != nil {
		dc.writeDeliveryError(c, err, "CreateDelivery")
		return
	}

	c.JSON(http.StatusCreated, delivery.ToResponseDelivery(*created))
}

func (dc *DeliveryController) GetDeliveriesHandler(c *gin.Context) {
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

	deliveries, err := dc.deliveryService.FindDeliveries(c.Request.Context(), caller, page)
	if err != nil {
		dc.writeDeliveryError(c, err, "FindDeliveries")
		return
	}

	c.JSON(http.StatusOK, delivery.ResponseData{
		Data: delivery.ToResponseDeliveries(deliveries),
	})
}

func (dc *DeliveryController) GetDeliveryHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, id := validator.IsUUID(c.Param("delivery_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "delivery_id must be a valid UUID"},
		)
		return
	}

	details, err := dc.deliveryService.FindDeliveryByID(c.Request.Context(), caller, id)
	if err != nil {
		dc.writeDeliveryError(c, err, "FindDeliveryByID")
		return
	}

	c.JSON(http.StatusOK, delivery.ToResponseDetails(
		*details.Delivery,
		details.Recipient,
		details.Deliveryman,
	))
}

func (dc *DeliveryController) UpdateDeliveryHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, id := validator.IsUUID(c.Param("delivery_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "delivery_id must be a valid UUID"},
		)
		return
	}

	var req delivery.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdateDelivery(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	photo, ok := photoFromForm(c)
	if !ok {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large or empty"})
		return
	}

	// Multipart fields bound to an empty string are treated as absent and
	// never clear stored values.
	var patch deliveryDomain.Update
	if req.Product != nil && *req.Product != "" {
		patch.Product = req.Product
	}
	if req.Status != nil && *req.Status != "" {
		status := deliveryDomain.Status(*req.Status)
		patch.Status = &status
	}
	if req.RecipientID != nil && *req.RecipientID != "" {
		_, rcID := validator.IsUUID(*req.RecipientID)
		patch.RecipientID = &rcID
	}
	if req.DeliverymanID != nil && *req.DeliverymanID != "" {
		_, dmID := validator.IsUUID(*req.DeliverymanID)
		patch.DeliverymanID = &dmID
	}

	updated, err := dc.deliveryService.ApplyUpdate(c.Request.Context(), caller, id, patch, photo)
	if err != nil {
		dc.writeDeliveryError(c, err, "ApplyUpdate")
		return
	}

	c.JSON(http.StatusOK, delivery.ToResponseUpdated(*updated))
}

func (dc *DeliveryController) DeleteDeliveryHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, id := validator.IsUUID(c.Param("delivery_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "delivery_id must be a valid UUID"},
		)
		return
	}

	err := dc.deliveryService.DeleteDelivery(c.Request.Context(), caller, id)
	if err != nil {
		dc.writeDeliveryError(c, err, "DeleteDelivery")
		return
	}

	c.Status(http.StatusOK)
}

func (dc *DeliveryController) GetDeliveryItemsHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, deliverymanID := validator.IsUUID(c.Param("deliveryman_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "deliveryman_id must be a valid UUID"},
		)
		return
	}

	deliveries, err := dc.deliveryService.FindDeliveryItems(c.Request.Context(), caller, deliverymanID)
	if err != nil {
		dc.writeDeliveryError(c, err, "FindDeliveryItems")
		return
	}

	c.JSON(http.StatusOK, delivery.ResponseData{
		Data: delivery.ToResponseDeliveries(deliveries),
	})
}

// writeDeliveryError maps service and policy failures onto the externally
// visible contract shared by all delivery handlers.
func (dc *DeliveryController) writeDeliveryError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, policy.ErrWrongDeliveryman):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only the deliveryman who withdrew the package can mark it as delivered.",
		})
	case errors.Is(err, policy.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access."})
	case errors.Is(err, services.ErrDeliveryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
	case errors.Is(err, services.ErrRecipientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
	case errors.Is(err, services.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, services.ErrNotDeliveryman):
		c.JSON(http.StatusBadRequest, gin.H{"error": "assigned account is not a deliveryman"})
	case errors.Is(err, deliveryDB.ErrBadReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery references an unknown recipient or account"})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to process the delivery"},
		)
		dc.logger.Error(op+"() error", zap.Error(err))
	}
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Genocadio/nitifier/models"
	"github.com/Genocadio/nitifier/services"
)

const maxBulkItems = 500

// DispatchController is the thin HTTP adapter over the dispatch service.
// All domain decisions live in the service; handlers only bind and reply.
type DispatchController struct {
	service services.DispatchService
	logger  *zap.Logger
}

func NewDispatchController(svc services.DispatchService, logger *zap.Logger) *DispatchController {
	return &DispatchController{service: svc, logger: logger}
}

func (dc *DispatchController) DispatchEmail(ctx *gin.Context) {
	var req models.DispatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result := dc.service.DispatchEmail(ctx.Request.Context(), &req)
	ctx.JSON(statusFor(result), result)
}

func (dc *DispatchController) DispatchSMS(ctx *gin.Context) {
	var req models.DispatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result := dc.service.DispatchSMS(ctx.Request.Context(), &req)
	ctx.JSON(statusFor(result), result)
}

func (dc *DispatchController) DispatchBulkEmail(ctx *gin.Context) {
	reqs, ok := dc.bindBulk(ctx)
	if !ok {
		return
	}
	results := dc.service.DispatchBulkEmail(ctx.Request.Context(), reqs)
	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

func (dc *DispatchController) DispatchBulkSMS(ctx *gin.Context) {
	reqs, ok := dc.bindBulk(ctx)
	if !ok {
		return
	}
	results := dc.service.DispatchBulkSMS(ctx.Request.Context(), reqs)
	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

func (dc *DispatchController) DispatchTrip(ctx *gin.Context) {
	var req models.TripDispatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result := dc.service.DispatchTrip(ctx.Request.Context(), &req)
	status := http.StatusOK
	if !result.Succeeded() {
		status = http.StatusBadGateway
	}
	ctx.JSON(status, result)
}

func (dc *DispatchController) ValidateEmail(ctx *gin.Context) {
	dc.validateChannel(ctx, models.ChannelEmail)
}

func (dc *DispatchController) ValidateSMS(ctx *gin.Context) {
	dc.validateChannel(ctx, models.ChannelSMS)
}

func (dc *DispatchController) validateChannel(ctx *gin.Context, channel string) {
	var req models.DispatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx.JSON(http.StatusOK, dc.service.Validate(channel, &req))
}

func (dc *DispatchController) ValidateTrip(ctx *gin.Context) {
	var req models.TripDispatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx.JSON(http.StatusOK, dc.service.ValidateTrip(&req))
}

func (dc *DispatchController) ListEventTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"eventTypes": dc.service.ListEventTypes()})
}

func (dc *DispatchController) ListLanguages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"languages": dc.service.ListLanguages()})
}

func (dc *DispatchController) GetTemplate(ctx *gin.Context) {
	tpl, ok := dc.service.GetTemplate(ctx.Param("event"), ctx.Param("lang"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	ctx.JSON(http.StatusOK, tpl)
}

func (dc *DispatchController) bindBulk(ctx *gin.Context) ([]models.DispatchRequest, bool) {
	var reqs []models.DispatchRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		dc.logger.Warn("failed to bind bulk dispatch body", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	if len(reqs) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "empty request list"})
		return nil, false
	}
	if len(reqs) > maxBulkItems {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "too many items in one batch"})
		return nil, false
	}
	return reqs, true
}

// statusFor maps a dispatch outcome to an HTTP status: validation and
// resolution failures read as 400, transport failures as 502.
func statusFor(result models.DispatchResult) int {
	if result.Success {
		return http.StatusOK
	}
	if result.Status == models.StatusFailed && result.MessageID == "" && isRequestFault(result) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func isRequestFault(result models.DispatchResult) bool {
	return strings.Contains(result.Message, "validation failed") ||
		strings.Contains(result.Error, "template not found")
}

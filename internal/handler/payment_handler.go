package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"goldscheme/internal/domain"
	"goldscheme/internal/models"
	"goldscheme/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	accounting *service.AccountingService
	log        *zap.Logger
}

func NewPaymentHandler(accounting *service.AccountingService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{accounting: accounting, log: log}
}

type CreatePaymentRequest struct {
	Phone      string  `json:"phone" binding:"required,len=10,numeric"`
	PaidAmount float64 `json:"paid_amount" binding:"gte=0"`
	UTRNumber  string  `json:"utr_number" binding:"required"`
}

// UpdatePaymentRequest addresses a payment by the created_at echoed from the
// payment listing. It must match the stored timestamp exactly.
type UpdatePaymentRequest struct {
	Phone          string `json:"phone" binding:"required"`
	CreatedAt      string `json:"created_at" binding:"required"`
	ApprovalStatus string `json:"approval_status" binding:"required,oneof=pending approved rejected"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name, err := h.accounting.Record(req.Phone, req.PaidAmount, req.UTRNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found in goldusers"})
			return
		}
		h.log.Error("create payment failed", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Payment for %s submitted successfully, pending admin approval.", name),
	})
}

func (h *PaymentHandler) Update(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdAt, err := time.Parse(time.RFC3339Nano, req.CreatedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_at: expected RFC 3339 timestamp"})
		return
	}
	if err := h.accounting.UpdateApproval(req.Phone, createdAt, req.ApprovalStatus); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found for given phone and created_at"})
			return
		}
		h.log.Error("update payment failed", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Payment updated successfully",
		"phone":           req.Phone,
		"created_at":      createdAt,
		"approval_status": req.ApprovalStatus,
	})
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.accounting.ListAll()
	if err != nil {
		h.log.Error("list payments failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

package handler

import (
	"errors"
	"net/http"

	"goldscheme/internal/domain"
	"goldscheme/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	accounting *service.AccountingService
	log        *zap.Logger
}

func NewSummaryHandler(accounting *service.AccountingService, log *zap.Logger) *SummaryHandler {
	return &SummaryHandler{accounting: accounting, log: log}
}

// Get returns one customer's entitlement summary over approved payments.
func (h *SummaryHandler) Get(c *gin.Context) {
	phone := c.Param("phone")
	sum, err := h.accounting.Summarize(phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found in goldusers"})
			return
		}
		h.log.Error("summarize failed", zap.String("phone", phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// List returns the summary for every enrolled customer; 404 only when the
// ledger holds no customers at all.
func (h *SummaryHandler) List(c *gin.Context) {
	sums, err := h.accounting.SummarizeAll()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No gold users found"})
			return
		}
		h.log.Error("summarize all failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sums)
}

// GetAuth is the customer-facing summary: phone and password as query
// parameters, plaintext equality check, and the full payment date history on
// success.
func (h *SummaryHandler) GetAuth(c *gin.Context) {
	phone := c.Query("phone")
	password := c.Query("password")
	if phone == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and password query parameters are required"})
		return
	}
	sum, err := h.accounting.SummarizeAuth(phone, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone or password"})
		default:
			h.log.Error("authenticated summarize failed", zap.String("phone", phone), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, sum)
}

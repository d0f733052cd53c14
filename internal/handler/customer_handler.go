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

const dateLayout = "2006-01-02"

type CustomerHandler struct {
	ledger *service.LedgerService
	log    *zap.Logger
}

func NewCustomerHandler(ledger *service.LedgerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{ledger: ledger, log: log}
}

type CreateCustomerRequest struct {
	Phone        string  `json:"phone" binding:"required,len=10,numeric"`
	FullName     string  `json:"full_name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Password     string  `json:"password" binding:"required"`
	SelectedPack *string `json:"selected_pack"`
	StartDate    string  `json:"start_date" binding:"required"`
	TotalMonths  int     `json:"total_months" binding:"gte=0"`
}

type UpdateCustomerRequest struct {
	Phone          string  `json:"phone" binding:"required"`
	ApprovalStatus *string `json:"approval_status" binding:"omitempty,oneof=pending approved rejected"`
	LastMonthPaid  *string `json:"last_month_paid"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format (use YYYY-MM-DD)"})
		return
	}
	err = h.ledger.Create(service.CreateCustomerInput{
		Phone:        req.Phone,
		FullName:     req.FullName,
		Address:      req.Address,
		Password:     req.Password,
		SelectedPack: req.SelectedPack,
		StartDate:    startDate,
		TotalMonths:  req.TotalMonths,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already registered"})
			return
		}
		h.log.Error("create customer failed", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer created successfully, waiting for admin approval."})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ApprovalStatus == nil && req.LastMonthPaid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update: supply approval_status and/or last_month_paid"})
		return
	}
	in := service.UpdateCustomerInput{Phone: req.Phone, ApprovalStatus: req.ApprovalStatus}
	if req.LastMonthPaid != nil {
		paid, err := time.Parse(dateLayout, *req.LastMonthPaid)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid last_month_paid format (use YYYY-MM-DD)"})
			return
		}
		in.LastMonthPaid = &paid
	}
	updated, err := h.ledger.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		h.log.Error("update customer failed", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	message := fmt.Sprintf("Customer %s updated successfully", req.Phone)
	if req.ApprovalStatus != nil {
		message = fmt.Sprintf("Customer %s has been %s successfully", req.Phone, *req.ApprovalStatus)
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "updated_fields": updated})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	phone := c.Param("phone")
	customer, endDate, err := h.ledger.Get(phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		h.log.Error("get customer failed", zap.String("phone", phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var lastMonthPaid *string
	if customer.LastMonthPaid != nil {
		s := customer.LastMonthPaid.Format(dateLayout)
		lastMonthPaid = &s
	}
	c.JSON(http.StatusOK, gin.H{
		"phone":           customer.Phone,
		"full_name":       customer.FullName,
		"address":         customer.Address,
		"selected_pack":   customer.SelectedPack,
		"start_date":      customer.StartDate.Format(dateLayout),
		"total_months":    customer.TotalMonths,
		"last_month_paid": lastMonthPaid,
		"remaining_emi":   customer.RemainingEMI,
		"end_date":        endDate.Format(dateLayout),
		"approval_status": customer.ApprovalStatus,
	})
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.ledger.ListOverview()
	if err != nil {
		h.log.Error("list customers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if customers == nil {
		customers = []models.CustomerOverview{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) ListFull(c *gin.Context) {
	customers, err := h.ledger.ListFull()
	if err != nil {
		h.log.Error("list customers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

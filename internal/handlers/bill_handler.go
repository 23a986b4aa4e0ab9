package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/services"
)

// BillHandler handles bill lifecycle requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// BillRequest represents the request payload for creating or updating a bill.
type BillRequest struct {
	Name             string                 `json:"name" binding:"required,min=1,max=100"`
	Amount           int64                  `json:"amount" binding:"required,gt=0"`
	CategoryID       uint                   `json:"category_id" binding:"required"`
	DueDate          time.Time              `json:"due_date" binding:"required"`
	IsRecurring      bool                   `json:"is_recurring"`
	RecurringPeriod  models.RecurringPeriod `json:"recurring_period" binding:"omitempty,recurring_period"`
	AutoPay          bool                   `json:"auto_pay"`
	Priority         models.BillPriority    `json:"priority" binding:"omitempty,bill_priority"`
	ThresholdWarning int64                  `json:"threshold_warning" binding:"omitempty,gte=0"`
	Notes            string                 `json:"notes" binding:"max=1000"`
}

// PartialPaymentRequest represents the request payload for a partial payment.
type PartialPaymentRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

func (r BillRequest) toInput() services.BillInput {
	return services.BillInput{
		Name:             r.Name,
		Amount:           r.Amount,
		CategoryID:       r.CategoryID,
		DueDate:          r.DueDate,
		IsRecurring:      r.IsRecurring,
		RecurringPeriod:  r.RecurringPeriod,
		AutoPay:          r.AutoPay,
		Priority:         r.Priority,
		ThresholdWarning: r.ThresholdWarning,
		Notes:            r.Notes,
	}
}

// CreateBill handles the creation of a new bill.
// @Summary     Create a bill
// @Description Create a new bill with its full amount outstanding
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Duplicate bill"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing bills for the authenticated user.
// @Summary     Get bills
// @Description Get the user's bills with status aggregates; past-due pending bills flip to overdue first
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       status      query string false "Filter by status (pending/partial/overdue/paid)"
// @Param       category_id query int    false "Filter by category"
// @Param       priority    query string false "Filter by priority (low/medium/high)"
// @Success     200 {object} map[string]interface{} "Bills and stats"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseBillFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bills, stats, err := h.billService.GetUserBills(userID, *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills, "stats": stats})
}

func parseBillFilter(c *gin.Context) (*services.BillFilter, error) {
	var filter services.BillFilter

	if v := c.Query("status"); v != "" {
		s := models.BillStatus(v)
		switch s {
		case models.BillStatusPending, models.BillStatusPartial, models.BillStatusOverdue, models.BillStatusPaid:
			filter.Status = &s
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be one of pending, partial, overdue, paid")
		}
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category_id")
		}
		cid := uint(id)
		filter.CategoryID = &cid
	}
	if v := c.Query("priority"); v != "" {
		p := models.BillPriority(v)
		switch p {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
			filter.Priority = &p
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "priority must be one of low, medium, high")
		}
	}
	return &filter, nil
}

// GetBill handles retrieving a specific bill.
// @Summary     Get bill by ID
// @Description Get a specific bill by ID
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} models.Bill "Bill details"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBill handles updating an existing bill.
// @Summary     Update bill
// @Description Update an unpaid bill; the remaining balance tracks the amount delta
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int         true "Bill ID"
// @Param       request body BillRequest true "Updated bill details"
// @Success     200 {object} models.Bill "Updated bill"
// @Failure     400 {object} ErrorResponse "Invalid input or bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.UpdateBill(userID, billID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// PayBill handles paying a bill's entire remaining balance.
// @Summary     Pay bill in full
// @Description Settle a bill's remaining balance from the wallet
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} services.BillPaymentResult "Payment result"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/pay [post]
func (h *BillHandler) PayBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.billService.PayBillFull(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": result})
}

// PayBillPartial handles a partial payment towards a bill.
// @Summary     Pay bill partially
// @Description Pay part of a bill's remaining balance from the wallet
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Bill ID"
// @Param       request body PartialPaymentRequest true "Payment amount"
// @Success     200 {object} services.BillPaymentResult "Payment result"
// @Failure     400 {object} ErrorResponse "Invalid input or bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/pay-partial [post]
func (h *BillHandler) PayBillPartial(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PartialPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.billService.PayBillPartial(userID, billID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": result})
}

// PayAllBills handles settling every payable bill at once.
// @Summary     Pay all bills
// @Description Settle every payable bill in one atomic batch
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PayAllResult "Batch payment result"
// @Failure     400 {object} ErrorResponse "No payable bills or insufficient funds for the batch"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/pay-all [post]
func (h *BillHandler) PayAllBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.billService.PayAllBills(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// DeleteBill handles deleting a bill.
// @Summary     Delete bill
// @Description Delete a bill along with its payment postings
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} MessageResponse "Bill deleted"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(userID, billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/services"
)

// SavingsHandler handles savings goal requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// SavingsAccountRequest represents the request payload for creating or
// updating a savings account.
type SavingsAccountRequest struct {
	Name              string                   `json:"name" binding:"required,min=1,max=100"`
	TargetAmount      int64                    `json:"target_amount" binding:"required,gt=0"`
	TargetDate        *time.Time               `json:"target_date"`
	Description       string                   `json:"description" binding:"max=1000"`
	Color             string                   `json:"color" binding:"omitempty,hex_color"`
	Icon              string                   `json:"icon" binding:"max=100"`
	AutoSaveAmount    int64                    `json:"auto_save_amount" binding:"omitempty,gte=0"`
	ReminderFrequency models.ReminderFrequency `json:"reminder_frequency" binding:"omitempty,reminder_frequency"`
}

// SavingsMovementRequest represents the request payload for a deposit or withdrawal.
type SavingsMovementRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=255"`
}

func (r SavingsAccountRequest) toInput() services.SavingsAccountInput {
	return services.SavingsAccountInput{
		Name:              r.Name,
		TargetAmount:      r.TargetAmount,
		TargetDate:        r.TargetDate,
		Description:       r.Description,
		Color:             r.Color,
		Icon:              r.Icon,
		AutoSaveAmount:    r.AutoSaveAmount,
		ReminderFrequency: r.ReminderFrequency,
	}
}

// CreateAccount handles opening a new savings goal.
// @Summary     Create savings account
// @Description Open a new savings goal with a zero balance
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SavingsAccountRequest true "Savings account details"
// @Success     201 {object} models.SavingsAccount "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input or target date in the past"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [post]
func (h *SavingsHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.savingsService.CreateAccount(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles listing the user's savings accounts.
// @Summary     Get savings accounts
// @Description Get all of the user's savings goals
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} []models.SavingsAccount "Savings accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [get]
func (h *SavingsHandler) GetAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.savingsService.GetUserAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccount handles retrieving a specific savings account.
// @Summary     Get savings account by ID
// @Description Get a specific savings account by ID
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Savings account ID"
// @Success     200 {object} models.SavingsAccount "Account details"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id} [get]
func (h *SavingsHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.savingsService.GetAccountByID(userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount handles editing a savings account's settings.
// @Summary     Update savings account
// @Description Edit a savings goal's settings; the balance only moves through deposits and withdrawals
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Savings account ID"
// @Param       request body SavingsAccountRequest true "Updated account details"
// @Success     200 {object} models.SavingsAccount "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input or account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id} [put]
func (h *SavingsHandler) UpdateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.savingsService.UpdateAccount(userID, accountID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// Deposit handles moving money from the wallet into a savings account.
// @Summary     Deposit to savings
// @Description Move money from the wallet into the savings account
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                    true "Savings account ID"
// @Param       request body SavingsMovementRequest true "Deposit details"
// @Success     200 {object} models.SavingsAccount "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input or account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id}/deposit [post]
func (h *SavingsHandler) Deposit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.savingsService.Deposit(userID, accountID, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// Withdraw handles moving money from a savings account back to the wallet.
// @Summary     Withdraw from savings
// @Description Move money from the savings account back into the wallet
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                    true "Savings account ID"
// @Param       request body SavingsMovementRequest true "Withdrawal details"
// @Success     200 {object} models.SavingsAccount "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input or account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id}/withdraw [post]
func (h *SavingsHandler) Withdraw(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.savingsService.Withdraw(userID, accountID, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount handles closing out a savings goal.
// @Summary     Delete savings account
// @Description Close a savings goal; any remaining balance is returned to the wallet
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Savings account ID"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id} [delete]
func (h *SavingsHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.savingsService.DeleteAccount(userID, accountID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Savings account deleted successfully"})
}

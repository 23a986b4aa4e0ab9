package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dennismwa/luidigitals/internal/services"
)

// WalletHandler handles wallet balance requests.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetWallet returns the authenticated user's wallet balance.
// @Summary     Get wallet balance
// @Description Get the user's current balance and lifetime income/expense totals
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.WalletBalance "Wallet balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	wallet, err := h.walletService.GetWallet(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

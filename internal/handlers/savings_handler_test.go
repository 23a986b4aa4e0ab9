package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/services"
)

// --- mock savings service ---

type mockSavingsService struct {
	createAccountFn    func(userID uint, in services.SavingsAccountInput) (*models.SavingsAccount, error)
	updateAccountFn    func(userID, accountID uint, in services.SavingsAccountInput) (*models.SavingsAccount, error)
	getUserAccountsFn  func(userID uint) ([]models.SavingsAccount, error)
	getAccountByIDFn   func(userID, accountID uint) (*models.SavingsAccount, error)
	depositFn          func(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error)
	withdrawFn         func(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error)
	deleteAccountFn    func(userID, accountID uint) error
	processAutoSavesFn func() (int, error)
	processRemindersFn func() (int, error)
}

func (m *mockSavingsService) CreateAccount(userID uint, in services.SavingsAccountInput) (*models.SavingsAccount, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(userID, in)
	}
	return &models.SavingsAccount{}, nil
}

func (m *mockSavingsService) UpdateAccount(userID, accountID uint, in services.SavingsAccountInput) (*models.SavingsAccount, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(userID, accountID, in)
	}
	return &models.SavingsAccount{}, nil
}

func (m *mockSavingsService) GetUserAccounts(userID uint) ([]models.SavingsAccount, error) {
	if m.getUserAccountsFn != nil {
		return m.getUserAccountsFn(userID)
	}
	return []models.SavingsAccount{}, nil
}

func (m *mockSavingsService) GetAccountByID(userID, accountID uint) (*models.SavingsAccount, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(userID, accountID)
	}
	return &models.SavingsAccount{}, nil
}

func (m *mockSavingsService) Deposit(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error) {
	if m.depositFn != nil {
		return m.depositFn(userID, accountID, amount, description)
	}
	return &models.SavingsAccount{}, nil
}

func (m *mockSavingsService) Withdraw(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error) {
	if m.withdrawFn != nil {
		return m.withdrawFn(userID, accountID, amount, description)
	}
	return &models.SavingsAccount{}, nil
}

func (m *mockSavingsService) DeleteAccount(userID, accountID uint) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(userID, accountID)
	}
	return nil
}

func (m *mockSavingsService) ProcessAutoSaves() (int, error) {
	if m.processAutoSavesFn != nil {
		return m.processAutoSavesFn()
	}
	return 0, nil
}

func (m *mockSavingsService) ProcessReminders() (int, error) {
	if m.processRemindersFn != nil {
		return m.processRemindersFn()
	}
	return 0, nil
}

var _ services.SavingsServicer = (*mockSavingsService)(nil)

func setupSavingsRouter(handler *SavingsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/savings", handler.CreateAccount)
	auth.GET("/savings", handler.GetAccounts)
	auth.GET("/savings/:id", handler.GetAccount)
	auth.PUT("/savings/:id", handler.UpdateAccount)
	auth.DELETE("/savings/:id", handler.DeleteAccount)
	auth.POST("/savings/:id/deposit", handler.Deposit)
	auth.POST("/savings/:id/withdraw", handler.Withdraw)
	return r
}

func TestSavingsHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		savingsSvc := &mockSavingsService{
			createAccountFn: func(userID uint, in services.SavingsAccountInput) (*models.SavingsAccount, error) {
				return &models.SavingsAccount{
					Base:         models.Base{ID: 1},
					UserID:       userID,
					Name:         in.Name,
					TargetAmount: in.TargetAmount,
					Status:       models.SavingsStatusActive,
				}, nil
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings",
			`{"name":"Emergency Fund","target_amount":500000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		account := result["account"].(map[string]interface{})
		if account["target_amount"] != float64(500000) {
			t.Errorf("expected target_amount 500000, got %v", account["target_amount"])
		}
	})

	t.Run("returns 400 on bad reminder frequency", func(t *testing.T) {
		handler := NewSavingsHandler(&mockSavingsService{})
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings",
			`{"name":"Emergency Fund","target_amount":500000,"reminder_frequency":"hourly"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad color", func(t *testing.T) {
		handler := NewSavingsHandler(&mockSavingsService{})
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings",
			`{"name":"Emergency Fund","target_amount":500000,"color":"blueish"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when target date is past", func(t *testing.T) {
		savingsSvc := &mockSavingsService{
			createAccountFn: func(_ uint, _ services.SavingsAccountInput) (*models.SavingsAccount, error) {
				return nil, apperrors.ErrTargetDateInPast
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings",
			`{"name":"Emergency Fund","target_amount":500000,"target_date":"2020-01-01T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TARGET_DATE_IN_PAST")
	})
}

func TestSavingsHandler_Deposit(t *testing.T) {
	t.Run("passes amount and description", func(t *testing.T) {
		var gotAmount int64
		var gotDesc string
		savingsSvc := &mockSavingsService{
			depositFn: func(_, accountID uint, amount int64, description string) (*models.SavingsAccount, error) {
				gotAmount = amount
				gotDesc = description
				return &models.SavingsAccount{Base: models.Base{ID: accountID}, CurrentAmount: amount}, nil
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings/2/deposit",
			`{"amount":20000,"description":"Monthly top-up"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotAmount != 20000 {
			t.Errorf("expected amount 20000, got %d", gotAmount)
		}
		if gotDesc != "Monthly top-up" {
			t.Errorf("expected description passed through, got %q", gotDesc)
		}
		result := parseJSON(t, rec)
		account := result["account"].(map[string]interface{})
		if account["current_amount"] != float64(20000) {
			t.Errorf("expected current_amount 20000, got %v", account["current_amount"])
		}
	})

	t.Run("returns 400 on insufficient wallet balance", func(t *testing.T) {
		savingsSvc := &mockSavingsService{
			depositFn: func(_, _ uint, _ int64, _ string) (*models.SavingsAccount, error) {
				return nil, apperrors.ErrInsufficientWalletBalance
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings/2/deposit", `{"amount":999999}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_WALLET_BALANCE")
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewSavingsHandler(&mockSavingsService{})
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings/2/deposit", `{"amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSavingsHandler_Withdraw(t *testing.T) {
	t.Run("returns 400 on insufficient savings balance", func(t *testing.T) {
		savingsSvc := &mockSavingsService{
			withdrawFn: func(_, _ uint, _ int64, _ string) (*models.SavingsAccount, error) {
				return nil, apperrors.ErrInsufficientSavings
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings/2/withdraw", `{"amount":999999}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_SAVINGS_BALANCE")
	})

	t.Run("returns 404 when account missing", func(t *testing.T) {
		savingsSvc := &mockSavingsService{
			withdrawFn: func(_, _ uint, _ int64, _ string) (*models.SavingsAccount, error) {
				return nil, apperrors.ErrSavingsAccountNotFound
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "POST", "/savings/99/withdraw", `{"amount":1000}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SAVINGS_ACCOUNT_NOT_FOUND")
	})
}

func TestSavingsHandler_GetAccounts(t *testing.T) {
	t.Run("returns account list", func(t *testing.T) {
		savingsSvc := &mockSavingsService{
			getUserAccountsFn: func(_ uint) ([]models.SavingsAccount, error) {
				return []models.SavingsAccount{
					{Base: models.Base{ID: 1}, Name: "Emergency Fund", CurrentAmount: 40000},
					{Base: models.Base{ID: 2}, Name: "Vacation", CurrentAmount: 10000},
				}, nil
			},
		}
		handler := NewSavingsHandler(savingsSvc)
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "GET", "/savings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["accounts"].([]interface{})) != 2 {
			t.Errorf("expected 2 accounts, got %v", result["accounts"])
		}
	})
}

func TestSavingsHandler_DeleteAccount(t *testing.T) {
	t.Run("returns confirmation message", func(t *testing.T) {
		handler := NewSavingsHandler(&mockSavingsService{})
		r := setupSavingsRouter(handler)

		rec := doRequest(r, "DELETE", "/savings/2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] == nil {
			t.Error("expected confirmation message")
		}
	})
}

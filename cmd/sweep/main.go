package main

import (
	"fmt"
	"os"

	"github.com/dennismwa/luidigitals/internal/config"
	"github.com/dennismwa/luidigitals/internal/database"
	"github.com/dennismwa/luidigitals/internal/logger"
	"github.com/dennismwa/luidigitals/internal/services"
)

// The sweep binary runs the periodic ledger maintenance jobs: flipping
// past-due bills to overdue, depositing scheduled auto-saves, and sending
// savings reminders. It is intended to run from cron.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Sweep error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	if _, err := config.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	db := dbManager.DB()
	settingsService := services.NewSettingsService(db)
	billService := services.NewBillService(db, settingsService)
	savingsService := services.NewSavingsService(db, settingsService)

	overdue, err := billService.MarkAllOverdueBills()
	if err != nil {
		return fmt.Errorf("overdue sweep failed: %w", err)
	}
	log.Infow("overdue sweep complete", "bills_flipped", overdue)

	saved, err := savingsService.ProcessAutoSaves()
	if err != nil {
		return fmt.Errorf("auto-save sweep failed: %w", err)
	}
	log.Infow("auto-save sweep complete", "deposits", saved)

	sent, err := savingsService.ProcessReminders()
	if err != nil {
		return fmt.Errorf("reminder sweep failed: %w", err)
	}
	log.Infow("reminder sweep complete", "reminders", sent)

	return nil
}

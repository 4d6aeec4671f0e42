package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"table-checkout-backend/internal/config"
	"table-checkout-backend/internal/database"
	"table-checkout-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	OfficialName string   `yaml:"official_name"`
	Aliases      []string `yaml:"aliases,omitempty"`
	Category     string   `yaml:"category,omitempty"`
}

type TableData struct {
	TableNumber string `yaml:"table_number"`
	Location    string `yaml:"location,omitempty"`
	Capacity    int    `yaml:"capacity,omitempty"`
	Notes       string `yaml:"notes,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type TablesFile struct {
	Tables []TableData `yaml:"tables"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	tables, err := loadTables(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	orgCreated := 0
	for _, orgData := range organizations {
		_, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.OfficialName, err)
		}
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	tableCreated := 0
	for _, tableData := range tables {
		_, created, err := createTable(db, tableData)
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", tableData.TableNumber, err)
		}
		if created {
			tableCreated++
		}
	}
	log.Printf("Tables: %d created, %d total", tableCreated, len(tables))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadTables(dataDir string) ([]TableData, error) {
	var allTables []TableData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tables") {
			var file TablesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTables = append(allTables, file.Tables...)
		}
		return nil
	})

	return allTables, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("official_name = ?", orgData.OfficialName).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				OfficialName: orgData.OfficialName,
				Aliases:      orgData.Aliases,
				Category:     orgData.Category,
				Status:       models.OrganizationStatusActive,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	return &org, false, nil // created = false (existing)
}

func createTable(db *gorm.DB, tableData TableData) (*models.Table, bool, error) {
	var table models.Table
	if err := db.Where("table_number = ?", tableData.TableNumber).First(&table).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			table = models.Table{
				TableNumber: tableData.TableNumber,
				Status:      models.TableStatusAvailable,
				Location:    tableData.Location,
				Capacity:    tableData.Capacity,
				Notes:       tableData.Notes,
			}

			if err := db.Create(&table).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create table: %w", err)
			}
			return &table, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query table: %w", err)
	}

	return &table, false, nil // created = false (existing)
}

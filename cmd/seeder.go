package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			tables := []string{"maintenance_requests", "equipment", "equipment_categories", "team_members", "teams", "profiles"}
			for _, table := range tables {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		profiles := []struct {
			Email string
			Name  string
			Role  string
		}{
			{"admin@mail.com", "Ayu Admin", "admin"},
			{"manager@mail.com", "Made Manager", "manager"},
			{"teknisi@mail.com", "Tono Teknisi", "technician"},
		}

		profileIDs := map[string]string{}
		for _, p := range profiles {
			var id string
			row := db.Raw("SELECT id FROM profiles WHERE email = ?", p.Email).Row()
			if err := row.Scan(&id); err == nil {
				fmt.Printf("profile %s already exists\n", p.Email)
				profileIDs[p.Email] = id
				continue
			}

			id = uuid.NewString()
			if err := db.Exec(
				"INSERT INTO profiles (id, email, full_name, role, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, now(), now())",
				id, p.Email, p.Name, p.Role, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert profile %s: %v", p.Email, err)
			}
			profileIDs[p.Email] = id
			fmt.Printf("Seeded profile: %s (%s)\n", p.Email, p.Role)
		}

		teamID := ""
		teamName := "Tim Mekanik"
		row := db.Raw("SELECT id FROM teams WHERE name = ?", teamName).Row()
		if err := row.Scan(&teamID); err != nil {
			teamID = uuid.NewString()
			if err := db.Exec(
				"INSERT INTO teams (id, name, description, created_at, updated_at) VALUES (?, ?, ?, now(), now())",
				teamID, teamName, "Tim perawatan mesin produksi").Error; err != nil {
				log.Fatalf("failed to insert team: %v", err)
			}
			fmt.Println("Seeded team:", teamName)
		}

		technicianID := profileIDs["teknisi@mail.com"]
		var exists int
		row = db.Raw("SELECT 1 FROM team_members WHERE team_id = ? AND user_id = ?", teamID, technicianID).Row()
		if err := row.Scan(&exists); err != nil {
			if err := db.Exec(
				"INSERT INTO team_members (id, team_id, user_id, created_at) VALUES (?, ?, ?, now())",
				uuid.NewString(), teamID, technicianID).Error; err != nil {
				log.Fatalf("failed to insert team member: %v", err)
			}
			fmt.Println("Added technician to", teamName)
		}

		categories := []struct {
			Name string
			Desc string
		}{
			{"mesin_produksi", "mesin lini produksi"},
			{"kendaraan", "kendaraan operasional"},
			{"elektronik", "perangkat elektronik dan komputer"},
			{"hvac", "pendingin dan sirkulasi udara"},
		}

		categoryIDs := map[string]string{}
		for _, c := range categories {
			var id string
			row := db.Raw("SELECT id FROM equipment_categories WHERE name = ?", c.Name).Row()
			if err := row.Scan(&id); err == nil {
				categoryIDs[c.Name] = id
				continue
			}

			id = uuid.NewString()
			if err := db.Exec(
				"INSERT INTO equipment_categories (id, name, description, created_at) VALUES (?, ?, ?, now())",
				id, c.Name, c.Desc).Error; err != nil {
				log.Fatalf("failed to insert equipment category %s: %v", c.Name, err)
			}
			categoryIDs[c.Name] = id
			fmt.Printf("Seeded equipment category: %s\n", c.Name)
		}

		equipmentName := "Mesin Bubut A-01"
		row = db.Raw("SELECT 1 FROM equipment WHERE name = ?", equipmentName).Row()
		if err := row.Scan(&exists); err != nil {
			if err := db.Exec(
				"INSERT INTO equipment (id, name, serial_number, category_id, team_id, assigned_technician_id, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, 'active', now(), now())",
				uuid.NewString(), equipmentName, "SN-2024-0001", categoryIDs["mesin_produksi"], teamID, technicianID).Error; err != nil {
				log.Fatalf("failed to insert equipment: %v", err)
			}
			fmt.Println("Seeded equipment:", equipmentName)
		}

		fmt.Println("Seeding completed successfully")
	},
}

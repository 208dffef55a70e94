// Command admin provides account management utilities for Inkwell.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go promote <user_id>      - Promote user to admin")
		fmt.Println("  go run ./cmd/admin/main.go demote <user_id>       - Demote user from admin")
		fmt.Println("  go run ./cmd/admin/main.go ban <user_id>          - Ban a user")
		fmt.Println("  go run ./cmd/admin/main.go unban <user_id>        - Lift a ban")
		fmt.Println("  go run ./cmd/admin/main.go list-admins            - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		requireUserArg("promote")
		setAdmin(db, os.Args[2], true)
	case "demote":
		requireUserArg("demote")
		setAdmin(db, os.Args[2], false)
	case "ban":
		requireUserArg("ban")
		setBanned(db, os.Args[2], true)
	case "unban":
		requireUserArg("unban")
		setBanned(db, os.Args[2], false)
	case "list-admins":
		listAdmins(db)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func requireUserArg(cmd string) {
	if len(os.Args) < 3 {
		fmt.Printf("Usage: go run ./cmd/admin/main.go %s <user_id>\n", cmd)
		os.Exit(1)
	}
}

func loadUser(db *gorm.DB, userID string) models.User {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with ID %s not found\n", userID)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}
	return user
}

func setAdmin(db *gorm.DB, userID string, admin bool) {
	user := loadUser(db, userID)

	if user.IsAdmin == admin {
		fmt.Printf("User %s (ID: %d) admin=%v already\n", user.DisplayName, user.ID, admin)
		return
	}

	user.IsAdmin = admin
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	fmt.Printf("Set admin=%v for %s (ID: %d)\n", admin, user.DisplayName, user.ID)
}

func setBanned(db *gorm.DB, userID string, banned bool) {
	user := loadUser(db, userID)

	if user.IsBanned == banned {
		fmt.Printf("User %s (ID: %d) banned=%v already\n", user.DisplayName, user.ID, banned)
		return
	}

	user.IsBanned = banned
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	fmt.Printf("Set banned=%v for %s (ID: %d)\n", banned, user.DisplayName, user.ID)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("is_admin = ?", true).Find(&admins).Error; err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found")
		return
	}

	fmt.Println("Current admins:")
	for _, admin := range admins {
		fmt.Printf("ID: %d | DisplayName: %s | Email: %s\n", admin.ID, admin.DisplayName, admin.Email)
	}
}

package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/infrastructure/database"
	"github.com/aura-ai/aura-backend/pkg/config"
	pkgjwt "github.com/aura-ai/aura-backend/pkg/jwt"
)

func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Define test users
	testUsers := []struct {
		Email   string
		Name    string
		Persona entities.UserPersona
	}{
		{Email: "alice@test.local", Name: "Alice", Persona: entities.PersonaAdmin},
		{Email: "bob@test.local", Name: "Bob", Persona: entities.PersonaEmployee},
		{Email: "charlie@test.local", Name: "Charlie", Persona: entities.PersonaEmployee},
	}

	log.Println("🗑️  Cleaning up existing test users...")
	// Delete existing sessions and users
	db.Where("user_id IN (SELECT id FROM users WHERE email LIKE ?)", "%@test.local").Delete(&entities.Session{})
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users and tokens...")

	for i, testUser := range testUsers {
		user := entities.NewUser(testUser.Email, testUser.Name, testUser.Persona)

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash password for %s: %v", testUser.Email, err)
			continue
		}
		passwordHash := string(hash)
		user.PasswordHash = &passwordHash

		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", testUser.Email, err)
			continue
		}

		// Generate access token (with default expiry)
		accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Persona))
		if err != nil {
			log.Printf("❌ Failed to generate access token for %s: %v", testUser.Email, err)
			continue
		}

		// Generate refresh token
		refreshToken, err := jwtManager.GenerateRefreshToken(user.ID)
		if err != nil {
			log.Printf("❌ Failed to generate refresh token for %s: %v", testUser.Email, err)
			continue
		}

		// Sessions store only the token hash
		tokenHash, err := jwtManager.HashToken(refreshToken)
		if err != nil {
			log.Printf("❌ Failed to hash refresh token for %s: %v", testUser.Email, err)
			continue
		}

		session := entities.NewSession(
			user.ID,
			tokenHash,
			time.Now().Add(cfg.JWT.RefreshExpiry),
		)

		if err := db.Create(session).Error; err != nil {
			log.Printf("❌ Failed to create session for %s: %v", testUser.Email, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s\n", i+1, testUser.Name)
		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("Email:        %s\n", user.Email)
		fmt.Printf("User ID:      %s\n", user.ID)
		fmt.Printf("Persona:      %s\n", user.Persona)
		fmt.Printf("Password:     password123\n")
		fmt.Printf("\n📋 Access Token (Copy to Postman):\n")
		fmt.Printf("%s\n", accessToken)
		fmt.Printf("\n🔄 Refresh Token (hash stored in DB):\n")
		fmt.Printf("%s\n", refreshToken)
		fmt.Printf("───────────────────────────────────────────────────────\n\n")
	}

	log.Println("✅ All test users created successfully!")
	log.Println("💡 Usage:")
	log.Println("   1. Copy the Access Token above")
	log.Println("   2. In Postman, set header: Authorization: Bearer <access_token>")
	log.Println("   3. Token expiry:", cfg.JWT.AccessExpiry)
	log.Println("🧹 To clean up test users, run: DELETE FROM users WHERE email LIKE '%@test.local'")
}

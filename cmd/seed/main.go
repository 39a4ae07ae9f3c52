// Command seed populates the database with sample users and training
// programs for local development.
package main

import (
	"flag"
	"log"

	"github.com/online-training-program/backend/config"
	"github.com/online-training-program/backend/models"
	"github.com/online-training-program/backend/repository"
)

func main() {
	databaseURL := flag.String("database-url", "", "Database URL (overrides OTP_DATABASE_URL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *databaseURL != "" {
		cfg.Database.URL = *databaseURL
	}

	if err := cfg.OpenDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer cfg.Close()

	users := repository.NewUserRepository(cfg.DB)
	trainings := repository.NewTrainingRepository(cfg.DB)

	sampleUsers := []models.User{
		{Name: "Admin", Email: "admin@training.local", Role: "admin"},
		{Name: "Alice Nguyen", Email: "alice@training.local", Role: "user"},
		{Name: "Bob Tran", Email: "bob@training.local", Role: "user"},
	}
	for i := range sampleUsers {
		if err := users.Save(&sampleUsers[i]); err != nil {
			log.Fatalf("Failed to seed user %q: %v", sampleUsers[i].Name, err)
		}
		log.Printf("Seeded user %d: %s", sampleUsers[i].UserID, sampleUsers[i].Name)
	}

	samplePrograms := []models.TrainingProgram{
		{ProgramName: "Go Fundamentals", Description: "Introduction to Go", Status: "active"},
		{ProgramName: "Kubernetes Basics", Description: "Container orchestration", Status: "active"},
		{ProgramName: "SQL for Analysts", Description: "Relational querying", Status: "closed"},
	}
	for i := range samplePrograms {
		if err := trainings.Save(&samplePrograms[i]); err != nil {
			log.Fatalf("Failed to seed training %q: %v", samplePrograms[i].ProgramName, err)
		}
		log.Printf("Seeded training %d: %s", samplePrograms[i].ProgramID, samplePrograms[i].ProgramName)
	}

	log.Println("Seeding complete")
}

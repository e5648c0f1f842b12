package main

import (
	"fmt"
	"os"

	"github.com/teamswap/teamswap/internal/config"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/internal/utils"
)

// Seeds a fresh database with a couple of demo accounts and projects so the
// API can be exercised without registering by hand. Safe to run once against
// an empty database only.
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := models.InitDB(&cfg.Database); err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		fmt.Printf("Failed to migrate: %v\n", err)
		os.Exit(1)
	}
	db := models.GetDB()

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		fmt.Println("Database is not empty, refusing to seed")
		os.Exit(1)
	}

	password, err := utils.HashPassword("demo1234")
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	users := []struct {
		email    string
		username string
		fullName string
		offered  []string
		learning []string
	}{
		{"alice@example.com", "alice", "Alice Chen", []string{"React", "TypeScript"}, []string{"Go"}},
		{"bob@example.com", "bob", "Bob Park", []string{"Go", "PostgreSQL"}, []string{"UI Design"}},
		{"carol@example.com", "carol", "Carol Diaz", []string{"Figma", "UI Design"}, []string{"React"}},
	}

	ids := make(map[string]string)
	for _, u := range users {
		user := models.User{Email: u.email, Password: password}
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Failed to create user %s: %v\n", u.username, err)
			os.Exit(1)
		}
		profile := models.Profile{
			ID:             user.ID,
			Username:       u.username,
			FullName:       u.fullName,
			SkillsOffered:  u.offered,
			SkillsLearning: u.learning,
		}
		if err := db.Create(&profile).Error; err != nil {
			fmt.Printf("Failed to create profile %s: %v\n", u.username, err)
			os.Exit(1)
		}
		ids[u.username] = user.ID
	}

	projects := []models.Project{
		{
			Title:          "Open source recipe planner",
			Description:    "Weekly meal planning app with shared shopping lists.",
			Category:       "Web Development",
			RequiredSkills: []string{"React", "Go"},
			CreatorID:      ids["alice"],
			MaxMembers:     5,
			MemberCount:    1,
			IsFeatured:     true,
		},
		{
			Title:           "Community garden sensor dashboard",
			Description:     "Visualize soil and weather readings from garden plots.",
			Category:        "Data Science",
			RequiredSkills:  []string{"Python", "PostgreSQL"},
			CreatorID:       ids["bob"],
			MaxMembers:      4,
			MemberCount:     1,
			DifficultyLevel: "beginner",
		},
	}
	for i := range projects {
		p := &projects[i]
		if err := db.Create(p).Error; err != nil {
			fmt.Printf("Failed to create project %q: %v\n", p.Title, err)
			os.Exit(1)
		}
		member := models.ProjectMember{
			ProjectID: p.ID,
			UserID:    p.CreatorID,
			Role:      models.RoleCreator,
			Status:    models.MemberActive,
		}
		if err := db.Create(&member).Error; err != nil {
			fmt.Printf("Failed to create membership for %q: %v\n", p.Title, err)
			os.Exit(1)
		}
	}

	swap := models.SkillSwap{
		RequesterID:     ids["carol"],
		OfferedSkill:    "Figma",
		RequestedSkill:  "React",
		Message:         "Happy to trade design reviews for React pairing sessions.",
		SessionDuration: 60,
		SwapType:        models.SwapOneTime,
	}
	if err := db.Create(&swap).Error; err != nil {
		fmt.Printf("Failed to create swap: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d users, %d projects, 1 swap (password: demo1234)\n", len(users), len(projects))
}

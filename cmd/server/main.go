package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/auth"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/config"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/database"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/handlers"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/planner"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/roster"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/store"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("could not load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// gin honors GIN_MODE on its own when set; default to release otherwise.
	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	auth.Configure(cfg.JWTSecret, cfg.MasterSecret)
	if err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Warnf("could not ensure admin user: %v", err)
	}

	st := store.New()
	switch {
	case cfg.RosterFile != "":
		input, err := roster.LoadFile(cfg.RosterFile)
		if err != nil {
			logrus.Fatalf("could not load roster: %v", err)
		}
		st.Load(input.Events, input.Workers)
		logrus.WithFields(logrus.Fields{
			"events":  len(input.Events),
			"workers": len(input.Workers),
		}).Info("Roster loaded")
	case cfg.SeedDemo:
		if err := st.SeedDemo(); err != nil {
			logrus.Fatalf("could not seed demo data: %v", err)
		}
		logrus.Info("Demo data seeded")
	}

	p := planner.New()
	if cfg.LeaderLevel > 0 {
		p.LeaderThreshold = cfg.LeaderLevel
	}

	h := &handlers.Handler{
		DB:            db,
		Store:         st,
		Planner:       p,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}

	r := gin.Default()
	h.RegisterRoutes(r)

	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("could not run server: %v", err)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/auth"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/config"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/database"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/handlers"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/planner"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/store"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("could not load configuration: %v", err)
	}

	db := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	auth.Configure(cfg.JWTSecret, cfg.MasterSecret)
	_ = auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword)

	// The serverless instance keeps its roster in memory only; callers
	// are expected to use the preview and CSV endpoints, or reseed per
	// instance via SEED_DEMO_DATA.
	st := store.New()
	if cfg.SeedDemo {
		_ = st.SeedDemo()
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

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.RegisterRoutes(r)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}

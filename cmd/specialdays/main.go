package main

import (
	"fmt"
	"os"
	"specialdays-backend/cmd/specialdays/apis"
	"specialdays-backend/cmd/specialdays/repository"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/supabase-community/gotrue-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EnvCfg struct {
	Port             int    `envconfig:"PORT" default:"8080"`
	DBHost           string `envconfig:"DB_HOST" required:"true"`
	DBPort           int    `envconfig:"DB_PORT" required:"true"`
	DBUser           string `envconfig:"DB_USER" required:"true"`
	DBPassword       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName           string `envconfig:"DB_NAME" required:"true"`
	GotrueProjectRef string `envconfig:"GOTRUE_PROJECT_REF" required:"true"`
	GotrueAPIKey     string `envconfig:"GOTRUE_API_KEY" required:"true"`
}

func dsn(cfg EnvCfg) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	var cfg EnvCfg
	err = envconfig.Process("SPECIALDAYS", &cfg)
	if err != nil {
		panic(err)
	}

	db, err := gorm.Open(postgres.Open(dsn(cfg)))
	if err != nil {
		panic(err)
	}

	supabase := gotrue.New(cfg.GotrueProjectRef, cfg.GotrueAPIKey)

	e := echo.New()

	rootg := e.Group("")
	v1g := rootg.Group("/api/v1")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	sessionRepo := repository.NewSessionRepo(supabase)
	eventRepo := repository.NewEventRepo(db)
	userRepo := repository.NewUserRepo(db)

	authAPI := apis.NewAuthAPI(sessionRepo, userRepo)
	authAPI.Setup(v1g)

	authedg := v1g.Group("", authAPI.RequireSession)

	apis.
		NewEventAPI(eventRepo).
		Setup(authedg)

	apis.
		NewProfileAPI(userRepo).
		Setup(authedg)

	e.Start(fmt.Sprintf(":%d", cfg.Port))

}

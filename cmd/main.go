// Package main is the entry point for the boltjoint-service application.
//
// @title           Bolted Joint Design API
// @version         1.0.0
// @description     Designs bolted lap, single cover butt and double cover butt joints to IS 800:2007.
//
//	Computes the design shear and bearing strength of one bolt, the governing bolt value and the number of bolts needed for a factored load.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/boltjoint-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key. Required when authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 HS256 JWT as "Bearer <token>". Accepted when JWT_SECRET_KEY is set.
//
// @tag.name        Joints
// @tag.description Bolted joint design
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/boltjoint-service/docs" // swagger docs

	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	a, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	server := app.NewServer(a.Router, cfg.Server)
	server.OnShutdown(a.Close)

	if err := server.Run(context.Background()); err != nil {
		a.Close(context.Background())
		log.Fatal().Err(err).Msg("server error")
	}
}

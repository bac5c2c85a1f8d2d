package main

import (
	"log"

	"go.uber.org/zap"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/routes"
	"artwala-io/gateway/services"
	"artwala-io/gateway/state"
)

func main() {
	cfg := configs.Load()

	logger, err := configs.NewLogger()
	if err != nil {
		log.Fatalf("unable to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	redisClient, err := configs.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("invalid redis configuration", zap.Error(err))
	}

	client := services.NewClient(cfg, logger)
	registry := state.NewRegistry(client, cfg.Fallback, logger)

	router := routes.InitRoute(registry, client, cfg, redisClient, logger)

	logger.Info("gateway listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("upstream", cfg.UpstreamBaseURL),
		zap.String("fallback", string(cfg.Fallback)))

	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/oppify/config"
	"github.com/Gunvolt24/oppify/internal/app"
	"github.com/Gunvolt24/oppify/internal/ports"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		stop()
		log.Fatalf("bootstrap: %v", err)
	}

	code := serve(ctx, a, a.Logger, cleanup)
	stop()
	os.Exit(code)
}

// runner — приложение с блокирующим Run.
type runner interface {
	Run(ctx context.Context) error
}

// serve — запускает приложение и возвращает код выхода; cleanup выполняется до возврата.
func serve(ctx context.Context, a runner, logg ports.Logger, cleanup app.Cleanup) int {
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		logg.Errorf(ctx, "service stopped with error: %v", err)
		return 1
	}
	return 0
}

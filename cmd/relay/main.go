package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jon890/order-slack-relay/internal/app"
	"github.com/jon890/order-slack-relay/internal/config"
	"github.com/jon890/order-slack-relay/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.SetupLogger(cfg.Env)

	application, err := app.NewApp(log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create app: %v", err))
	}

	go application.HTTPServer.RunWithPanic()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop app: %v", err))
	}

	log.Info("application stopped")
}

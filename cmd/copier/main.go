package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ATenderholt/rainbow-copier/internal/logging"
	"github.com/ATenderholt/rainbow-copier/internal/settings"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

const lambdaRuntimeEnv = "AWS_LAMBDA_RUNTIME_API"

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger()
}

func main() {
	cfg, output, err := settings.FromFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(output)
		os.Exit(2)
	} else if err != nil {
		fmt.Println("got error:", err)
		fmt.Println("output:\n", output)
		os.Exit(1)
	}

	logging.SetDebug(cfg.IsDebug)

	err = cfg.Validate()
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	app, err := InjectApp(cfg)
	if err != nil {
		logger.Errorf("Unable to initialize application: %v", err)
		os.Exit(1)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		s := <-c
		logger.Infof("Received signal %v", s)
		cancel()
	}()

	switch {
	case os.Getenv(lambdaRuntimeEnv) != "":
		logger.Infof("Starting Lambda runtime, copying objects to %s", cfg.DestBucket)
		lambda.Start(app.HandleEvent)
	case cfg.EventPath != "":
		err = app.HandleFile(ctx, cfg.EventPath)
		if err != nil {
			logger.Errorf("Failed to handle event from %s: %v", cfg.EventPath, err)
			os.Exit(1)
		}
	default:
		err = start(ctx, app)
		if err != nil {
			logger.Errorf("Failed to start: %v", err)
			os.Exit(1)
		}
	}
}

func start(ctx context.Context, app *App) error {
	logger.Info("Starting up ...")

	err := app.Start()
	if err != nil {
		logger.Errorf("Unable to start application: %v", err)
		return err
	}

	<-ctx.Done()

	logger.Info("Shutting down ...")
	err = app.Shutdown()
	if err != nil {
		logger.Error("Error when shutting down app")
	}

	return nil
}

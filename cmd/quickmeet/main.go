package main

import (
	"context"
	"crypto/rsa"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang-jwt/jwt/v4"

	"github.com/olegmish/quickmeet/internal/calendar"
	"github.com/olegmish/quickmeet/internal/extractor"
	"github.com/olegmish/quickmeet/internal/rest"
	"github.com/olegmish/quickmeet/internal/telegram"
	"github.com/olegmish/quickmeet/pkg/config"
	"github.com/olegmish/quickmeet/pkg/logger"
	"github.com/olegmish/quickmeet/pkg/service"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("debug").Panic(err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ext := extractor.New(log, extractor.Config{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.ExtractTimeout,
	})
	cal, err := calendar.New(ctx, log, calendar.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RefreshToken: cfg.GoogleRefreshToken,
		Timeout:      cfg.CalendarTimeout,
	})
	if err != nil {
		log.Panic(err)
	}
	app := service.New(log, ext, cal, cfg.Timezone)

	bot, err := telegram.NewBot(cfg.TelegramToken)
	if err != nil {
		log.Panic(err)
	}
	tg := telegram.New(log, bot, app)

	publicKey, err := loadPublicKey(cfg.JWTPublicKeyFile)
	if err != nil {
		log.Panic(err)
	}
	server := rest.New(log, app, cfg.Address, version, publicKey)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
		<-sigCh
		log.Info("Received signal, shutting down...")
		cancel()
	}()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tg.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err = server.Run(ctx); err != nil {
			log.Panic(err)
		}
	}()
	wg.Wait()
	log.Info("Server stopped")
}

func loadPublicKey(file string) (*rsa.PublicKey, error) {
	if file == "" {
		return nil, nil
	}
	pemBytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPublicKeyFromPEM(pemBytes)
}

package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"github.com/valyala/fasthttp"

	"enrollment-engine/internal/config"
	"enrollment-engine/internal/handler"
)

func main() {
	flags := pflag.NewFlagSet("enrollment-engine", pflag.ExitOnError)
	configFile := flags.String("config", "", "path to config file")
	flags.Int("port", 8080, "HTTP port")
	flags.Int("default_class_size", 25, "class size used when no override applies")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configFile, flags)
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	h := handler.New(cfg)
	srv := &fasthttp.Server{
		Handler:     h.Handle,
		ReadTimeout: time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
	}

	slog.Info("enrollment engine starting", "port", cfg.Port)
	if err := srv.ListenAndServe(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

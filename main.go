package main

import (
	"fmt"
	"log"

	"serversentry/config"
	"serversentry/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger.SetLogLevel(cfg.LogLevel)
	fmt.Println(banner(cfg.Address))

	srv := web.NewServer(cfg)
	if err := web.Run(srv, cfg); err != nil {
		logger.LogErr(err, "server exited")
		log.Fatal(err)
	}
}

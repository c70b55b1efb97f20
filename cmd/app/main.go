package main

import (
	"roomstay/config"
	"roomstay/di"
	"roomstay/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

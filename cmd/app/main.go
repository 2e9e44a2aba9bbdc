package main

import (
	"sunstone/config"
	"sunstone/di"
	"sunstone/shared/logger"
)

// @title Sunstone Hotel API
// @version 1.0
// @description Presentation layer for the Sunstone hotel website and admin back office.
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin_token
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

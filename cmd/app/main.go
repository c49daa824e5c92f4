package main

import (
	"luxeroom/config"
	"luxeroom/di"
	"luxeroom/shared/logger"
)

// @title LuxeRoom Booking API
// @version 1.0
// @description Hotel room booking calendar backend: rooms, bookings, occupancy and the shared activity log.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

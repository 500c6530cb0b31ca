package main

import (
	"github.com/mplarena/registration_service/config"
	"github.com/mplarena/registration_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}

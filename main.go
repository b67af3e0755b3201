package main

import (
	"log"
	"net/http"

	"opportunityhub/config"
	"opportunityhub/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := application.StartScheduler(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	log.Println("Server started on port", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, application.Router))
}

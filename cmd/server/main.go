package main

import (
	"github.com/joho/godotenv"

	"talentnest/internal/app/server"
)

func main() {
	// Missing .env is fine; real deployments set environment variables directly.
	_ = godotenv.Load()

	server.Run()
}

package main

import (
	"os"

	"savant-seeker/backend/internal/app"
)

// @title        Savant Seeker API
// @version      1.0
// @description  Chat backend with streaming replies, image generation, memories and a lifemap journal.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}

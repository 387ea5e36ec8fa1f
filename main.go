package main

import (
	"github.com/joho/godotenv"
	"github.com/nikogura/portfolio-forge/cmd"
)

func main() {
	// Load .env if present. Missing file is fine - the API key can come
	// from the environment or the config file.
	_ = godotenv.Load()

	cmd.Execute()
}

package main

import (
	"github.com/joho/godotenv"

	"github.com/Chetana10r/smart-campaign-targeting/internal/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}

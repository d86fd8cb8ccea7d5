package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/niranjandahal/portfolio/cmd"
)

func main() {
	cmd.Execute()
}

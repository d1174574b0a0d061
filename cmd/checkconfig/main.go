// Preflight check: verifies every required setting is present before the
// bot starts. Secrets are printed masked.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/olegmish/quickmeet/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using process environment")
	}

	ok := true
	for _, name := range config.RequiredVars {
		value := os.Getenv(name)
		if value == "" {
			fmt.Printf("✗ %s is not set\n", name)
			ok = false
			continue
		}
		fmt.Printf("✓ %s is set (%s)\n", name, mask(value))
	}

	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "Europe/Berlin (default)"
	}
	fmt.Printf("  timezone: %s\n", tz)

	if !ok {
		fmt.Println("configuration incomplete, fix the variables above")
		os.Exit(1)
	}
	fmt.Println("all required variables are set")
}

func mask(value string) string {
	if len(value) <= 8 {
		return "***"
	}
	return value[:4] + "..." + value[len(value)-4:]
}

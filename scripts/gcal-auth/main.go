// Command gcal-auth authorizes the Google Calendar backend for an OAuth
// desktop-app client and writes token.json next to it.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json]
//
// Without an argument the path comes from storage.gcalendar.credentials_path.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"calendar-schedule/config"
	"calendar-schedule/pkg/gcalendar"
)

func main() {
	var credsPath string
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		credsPath = cfg.Storage.GCalendar.CredentialsPath
	}
	if credsPath == "" {
		log.Fatal("No credentials file: pass one or set storage.gcalendar.credentials_path")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	cfg, err := gcalendar.InstalledAppConfig(data)
	if err != nil {
		log.Fatalf("%v\nService Account keys need no token; point storage.gcalendar.credentials_path at them directly.", err)
	}

	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(gcalendar.AuthURL(cfg))
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	if _, err := gcalendar.ExchangeAndSave(context.Background(), cfg, code, gcalendar.DefaultTokenPath); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nSaved %s. Set storage.backend=gcalendar and start the API or CLI from this directory.\n", gcalendar.DefaultTokenPath)
}

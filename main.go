// ABOUTME: Entry point for the QuickFlip terminal client
// ABOUTME: Routes to the TUI or one-shot CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/quickflip/quickflip/api"
	"github.com/quickflip/quickflip/cli"
	"github.com/quickflip/quickflip/db"
	"github.com/quickflip/quickflip/tui"
)

const version = "0.1.0"

func main() {
	// Load .env if present; real env always wins
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/quickflip/quickflip.db)")
	backend := flag.String("backend", "", "Backend origin (default: QUICKFLIP_BACKEND_URL or http://localhost:8000)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("quickflip version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backend != "" {
		cfg.BackendURL = *backend
	}
	client := api.NewClient(cfg.BackendURL)

	database, err := db.OpenDatabase(getDatabasePath(*dbPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tui":
		// The TUI owns the terminal; silence client logging
		client.SetLogger(charmlog.New(io.Discard))
		p := tea.NewProgram(tui.NewModel(client, database), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "submit":
		if err := cli.SubmitCommand(database, client, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "deals":
		if err := cli.DealsCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "set-backend":
		if len(commandArgs) != 1 {
			fmt.Println("Error: set-backend requires an origin")
			printUsage()
			os.Exit(1)
		}
		if err := cfg.SetBackendURL(commandArgs[0]); err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Printf("✓ Backend set to %s\n", commandArgs[0])

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDatabasePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	return filepath.Join(xdg.DataHome, api.AppName, "quickflip.db")
}

func printUsage() {
	fmt.Printf(`quickflip v%s - Property deal submission client

USAGE:
  quickflip [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/quickflip/quickflip.db)
  --backend <origin>     Backend origin (default: QUICKFLIP_BACKEND_URL or http://localhost:8000)

COMMANDS:
  tui                    Interactive submission workflow

  submit                 Submit a property and print the deal
    --owner <name>          Owner name (required)
    --email <email>         Owner email
    --address <street>      Street address (required)
    --city <city>           City (required)
    --state <state>         State (required)
    --zip <zip>             ZIP code (required)
    --type <type>           Property type (default: single_family)
    --beds <n>              Bedrooms
    --baths <n>             Bathrooms
    --sqft <n>              Square footage
    --price <n>             Asking price (required)
    --arv <n>               After-repair value
    --repairs <n>           Repair cost estimate
    --notes <text>          Notes

  deals                  List submitted deals
    --limit <n>             Max results (default: 50)

  set-backend <origin>   Save the backend origin to config

EXAMPLES:
  # Interactive workflow
  quickflip tui

  # One-shot submission
  quickflip submit --owner "Jane Doe" --address "1 Main St" --city Springfield \
    --state IL --zip 62701 --price 150000

  # Review past submissions
  quickflip deals

`, version)
}

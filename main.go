package main

import (
	"fmt"
	"os"
	"strings"

	"harborlight/service"
)

// CliVersion is the version reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the top-level CLI commands.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("harborlight version %s\n", CliVersion)
	case "serve":
		service.RunAppServer(os.Args[2:])
	case "app":
		service.HandleCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: harborlight <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--config <file>]        Run the website API service.
  app <subcommand>               Database management (init, clean, backup, restore).
`
	fmt.Println(helpText)
}

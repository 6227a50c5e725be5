package main

import (
	"fmt"
	"os"
	"strings"

	"postcard/service"
)

// CliVersion is the released version of the postcard binary.
const CliVersion = "1.0.0"

// exit is a variable so tests can intercept it.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command line in os.Args.
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
		fmt.Printf("postcard version %s\n", CliVersion)
	case "serve":
		if code := service.RunAppServer(os.Args[2:]); code != 0 {
			exit(code)
		}
	case "db":
		if code := service.HandleDBCommand(os.Args[2:]); code != 0 {
			exit(code)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: postcard <command> [options]
Commands:
  help                               Display this help message.
  version                            Show version information.
  serve [--addr <addr>] [--store <memory|badger|sqlite>]
                                     Run the post card web server.
  db <init|clean|backup|restore|help>
                                     Maintain the badger database.

Environment:
  ADDR, STORE, BADGER_PATH, SQLITE_PATH, POSTS_FILE, LOCALE,
  INVALID_MESSAGE, LOG_LEVEL, SHUTDOWN_TIMEOUT (read from .env when present)
`
	fmt.Println(helpText)
}

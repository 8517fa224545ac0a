package concierge

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the CLI
func Execute() error {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		printUsage()
		if len(os.Args) < 2 {
			return fmt.Errorf("no command provided")
		}
		return nil
	}

	command := os.Args[1]
	switch command {
	case "chat":
		return handleChatCommand()
	case "bookings":
		return handleBookingsCommand()
	case "config":
		return handleConfigCommand(os.Args[2:])
	case "version":
		printVersion()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("usage: concierge [-h] {chat,bookings,config,version} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {chat,bookings,config,version}")
	fmt.Println("                        Concierge CLI commands")
	fmt.Println("    chat                Start a booking conversation")
	fmt.Println("    bookings            List your bookings")
	fmt.Println("    config              Manage configuration")
	fmt.Println("    version             Show version information")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}

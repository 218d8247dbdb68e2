// Numfield-server serves currency fields to remote clients over WebSocket.
//
// Each connection to /field gets its own field controller. Clients send
// input events as JSON and receive the re-rendered text, selection and
// value notifications. The server can advertise itself over mDNS so that
// 'numfield discover' finds it.
//
// Usage:
//
//	numfield-server serve [flags]
//
// See 'numfield-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/numfield/internal/config"
	"github.com/muurk/numfield/internal/numinput"
	"github.com/muurk/numfield/internal/server"
	"github.com/muurk/numfield/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numfield-server",
	Short: "Numfield WebSocket Server",
	Long: `A WebSocket server hosting currency entry fields for remote clients.

Clients connect to /field (optionally with ?profile=<name>), send input,
focus and blur events as JSON, and receive render and notify messages.

Note: For interactive use in the terminal, use the separate 'numfield' utility.`,
	Version:      version.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	host     string
	port     int
	logLevel string
	mdns     bool
	instance string
	profile  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the WebSocket server",
	Long: `Start the numfield WebSocket server.

Sessions that do not name a profile use --profile, or the default profile
from the profiles file, or the built-in defaults. The port defaults to the
server_port preference of the profiles file.`,
	Example: `  # Start on the default port
  numfield-server serve

  # Euro fields on port 9000 with debug logging
  numfield-server serve --port 9000 --profile eur --log-level debug

  # Advertise over mDNS for 'numfield discover'
  numfield-server serve --mdns --instance "till 3"`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen address (empty = listen on all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 0, "Server port (default from preferences, 8765)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&mdns, "mdns", false, "Advertise the server over mDNS")
	serveCmd.Flags().StringVar(&instance, "instance", "", "mDNS instance name (default \"numfield on <hostname>\")")
	serveCmd.Flags().StringVar(&profile, "profile", "", "Profile for sessions that do not name one")
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	if !cmd.Flags().Changed("port") {
		port = reg.Preferences.ServerPort
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}

	opts := numinput.DefaultOptions()
	name := profile
	if name == "" {
		name = reg.Preferences.DefaultProfile
	}
	if name != "" {
		p := reg.LookupProfile(name)
		if p == nil {
			return fmt.Errorf("unknown profile %q", name)
		}
		if opts, err = p.Options(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}

	srv, err := server.New(&server.Config{
		Host:     host,
		Port:     port,
		LogLevel: logLevel,
		Options:  opts,
		Registry: reg,
		MDNS:     mdns,
		Instance: instance,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("numfield-server %s\n", version.Full())
	},
}

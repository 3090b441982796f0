// Command bountyd serves the contents of one directory over HTTP: files
// with sniffed content types, directories as generated HTML listings,
// nothing outside the root ever.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/engbent/bounty/internal/config"
	"github.com/engbent/bounty/internal/server"
)

func main() {
	addr := flag.String("addr", "", "TCP address to listen on (overrides config file)")
	root := flag.String("root", "", "Directory to serve (overrides config file)")
	configPath := flag.String("config", "", "Path to a TOML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *root != "" {
		cfg.Root = *root
	}

	if _, err := os.Stat(cfg.Root); os.IsNotExist(err) {
		log.Fatalf("Directory does not exist: %s", cfg.Root)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	if cwd, err := os.Getwd(); err == nil {
		fmt.Printf("Working directory: %s\n", cwd)
	}
	fmt.Printf("Serving %s at http://%s\n", srv.Root(), srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.Serve(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

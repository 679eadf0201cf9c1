package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-filters-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-filters-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-filters-mcp - MCP server for raster image filters")
			fmt.Println()
			fmt.Println("Usage: image-filters-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug       Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=<dir>      Directory for saved results (default %s)\n", server.EnvOutputDir, server.DefaultOutputDir)
			fmt.Printf("  %s=true        Allow replacing existing files\n", server.EnvOverwrite)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Debug {
		log.Printf("Image Filters MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Output directory: %s (overwrite=%t)", cfg.OutputDir, cfg.Overwrite)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

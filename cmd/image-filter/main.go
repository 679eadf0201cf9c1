package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/image-filters-mcp/internal/filter"
	"github.com/ironsheep/image-filters-mcp/internal/imaging"
	"github.com/ironsheep/image-filters-mcp/internal/raster"
	"github.com/ironsheep/image-filters-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var errUsage = errors.New("invalid arguments")

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "image-filter %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printUsage(stdout)
			return 0
		}
	}

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "image-filter: invalid configuration: %v\n", err)
		return 1
	}
	writer := &imaging.Writer{Dir: cfg.OutputDir, Overwrite: cfg.Overwrite}

	var path string
	if len(args) > 0 && args[0] == "compose" {
		path, err = runCompose(args[1:], writer, cfg.Debug)
	} else {
		path, err = runFilters(args, writer, cfg.Debug)
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "image-filter: %v\n\n", err)
		printUsage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "image-filter: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, path)
	return 0
}

// runFilters handles "[filters] <input> [output]".
func runFilters(args []string, writer *imaging.Writer, debug bool) (string, error) {
	var names []string
	switch len(args) {
	case 1:
		names = filter.DefaultPipeline
	case 2, 3:
		names = parseFilterList(args[0])
		args = args[1:]
	default:
		return "", fmt.Errorf("%w: expected [filters] <input> [output]", errUsage)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: empty filter list", errUsage)
	}

	input := args[0]
	output := baseName(input)
	if len(args) == 2 {
		output = args[1]
	}

	img, err := imaging.NewImageCache().Raster(input)
	if err != nil {
		return "", err
	}
	if debug {
		log.Printf("%s: %dx%d, filters %s", input, img.Width(), img.Height(), strings.Join(names, ","))
	}

	out, err := filter.Pipeline(img, names...)
	if err != nil {
		return "", err
	}
	return save(writer, output, out)
}

// runCompose handles "compose <a> <b> [output]".
func runCompose(args []string, writer *imaging.Writer, debug bool) (string, error) {
	if len(args) != 2 && len(args) != 3 {
		return "", fmt.Errorf("%w: expected compose <a> <b> [output]", errUsage)
	}

	cache := imaging.NewImageCache()
	a, err := cache.Raster(args[0])
	if err != nil {
		return "", err
	}
	b, err := cache.Raster(args[1])
	if err != nil {
		return "", err
	}
	if debug {
		log.Printf("compose %dx%d + %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}

	output := baseName(args[0]) + "-" + baseName(args[1])
	if len(args) == 3 {
		output = args[2]
	}
	return save(writer, output, filter.Compose(a, b))
}

func save(writer *imaging.Writer, name string, img *raster.Image) (string, error) {
	path, err := writer.Write(name, img)
	if errors.Is(err, imaging.ErrExists) {
		return "", fmt.Errorf("%w (set %s=true to replace it)", err, server.EnvOverwrite)
	}
	return path, err
}

func parseFilterList(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// baseName strips the directory and extension from path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "image-filter - apply raster filters to image files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  image-filter <input>                        Run "+strings.Join(filter.DefaultPipeline, ","))
	fmt.Fprintln(w, "  image-filter <filter>[,<filter>...] <input> [output]")
	fmt.Fprintln(w, "  image-filter compose <a> <b> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filters: "+strings.Join(filter.Names(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results are written as PNG; the output name defaults to the input name.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s=<dir>   Output directory (default %s)\n", server.EnvOutputDir, server.DefaultOutputDir)
	fmt.Fprintf(w, "  %s=true     Allow replacing existing files\n", server.EnvOverwrite)
	fmt.Fprintf(w, "  %s=debug    Enable debug logging\n", server.EnvLogLevel)
}

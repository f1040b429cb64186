// Command ringfinder runs the ring configurator in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"ringfinder"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	catalogPath := flag.String("catalog", "", "path to a TOML catalog overriding the built-in options")
	flag.Parse()

	cfg := ringfinder.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ringfinder.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *catalogPath != "" {
		cfg.Catalog = *catalogPath
	}

	catalogs := ringfinder.DefaultCatalogs()
	if cfg.Catalog != "" {
		var err error
		if catalogs, err = ringfinder.LoadCatalogs(cfg.Catalog); err != nil {
			log.Fatal(err)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("ringfinder: stdout is not a terminal")
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "ringfinder")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := ringfinder.NewApp(cfg, catalogs)
	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sel := app.Selection()
	fmt.Printf("metal=%s ring_style=%s diamond_shape=%s preference=%d budget=%s\n",
		sel.Metal, sel.RingStyle, sel.DiamondShape, sel.DiamondPreference, sel.Budget)
}

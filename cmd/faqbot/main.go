package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/faqbot/internal/cli"
	"github.com/alexanderramin/faqbot/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env first, then the environment; flags override both once parsed.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		Fs:     afero.NewOsFs(),
		Wire:   cli.WireServices,
	}

	// Detect an interactive terminal for the feedback prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	defer app.Close()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

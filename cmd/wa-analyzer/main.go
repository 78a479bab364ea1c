package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/app"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <msgstore.db>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Analyzes a WhatsApp message store and writes an HTML report.\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	var (
		waDB       = flag.String("wa", "", "path to wa.db for contact names (optional)")
		output     = flag.String("o", "", "output HTML file (default report.html)")
		xlsx       = flag.String("xlsx", "", "also export an XLSX workbook to this path")
		configPath = flag.String("config", "", "path to a JSON config file")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load(*configPath)
	cfg.MsgstorePath = flag.Arg(0)
	if *waDB != "" {
		cfg.WaDBPath = *waDB
	}
	if *output != "" {
		cfg.OutputFile = *output
	}
	if *xlsx != "" {
		cfg.XLSXFile = *xlsx
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

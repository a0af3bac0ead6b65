package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/config"
	"github.com/kdduha/pdf-converter/internal/models"
	"github.com/kdduha/pdf-converter/internal/term"
	"github.com/kdduha/pdf-converter/internal/ui"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  convert [-url URL] -format FORMAT [-download DIR] FILE

Formats: %s

Examples:
  convert -format docx report.pdf
  convert -url http://localhost:8080 -format xlsx -download ./out tables.pdf
`, strings.Join(models.Formats, ", "))
	flag.PrintDefaults()
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var (
		baseURL  = flag.String("url", cfg.URL, "converter base URL")
		format   = flag.String("format", "", "output format")
		download = flag.String("download", "", "directory to save the converted file into")
		verbose  = flag.Bool("v", false, "log request details")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 || *format == "" {
		usage()
		os.Exit(2)
	}
	if !slices.Contains(models.Formats, *format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if !*verbose {
		logger.SetOutput(io.Discard)
	}

	cl, err := client.New(*baseURL, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		log.Fatalf("client error: %v", err)
	}

	page := term.NewPage(os.Stdout, models.Formats)
	controller := ui.New(page, cl, logger)

	events := make(chan ui.Event, 3)
	events <- ui.FilesChosen{Files: []client.File{client.DiskFile(flag.Arg(0))}}
	events <- ui.FormatClicked{Button: page.Button(*format)}
	events <- ui.SubmitClicked{}
	close(events)

	if err := controller.Run(ctx, events); err != nil {
		log.Fatalf("interrupted: %v", err)
	}

	status, link := page.Result()
	if link == nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", status)
		os.Exit(1)
	}

	if *download != "" {
		if err := save(ctx, cl, link.Href, *download); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func save(ctx context.Context, cl *client.Client, href, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("parsing download link: %w", err)
	}
	outPath := filepath.Join(dir, path.Base(u.Path))

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	n, err := cl.Download(ctx, href, f)
	if err != nil {
		os.Remove(outPath)
		return err
	}
	fmt.Printf("Saved: %s (%s)\n", outPath, humanSize(n))
	return nil
}

func humanSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

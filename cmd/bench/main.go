package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/config"
	"github.com/kdduha/pdf-converter/internal/models"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var (
		baseURL = flag.String("url", cfg.URL, "converter base URL")
		dataDir = flag.String("data", filepath.Join(".", "data"), "directory with PDF files")
		formats = flag.String("formats", strings.Join(models.Formats, ","), "comma separated output formats")
	)
	flag.Parse()

	cl, err := client.New(*baseURL, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		log.Fatalf("client error: %v", err)
	}

	ctx := context.Background()

	docs, err := filepath.Glob(filepath.Join(*dataDir, "*.pdf"))
	if err != nil {
		log.Fatalf("list %s: %v", *dataDir, err)
	}

	var results []BenchResult
	for _, format := range strings.Split(*formats, ",") {
		for _, doc := range docs {
			res := benchmarkDocument(ctx, cl, doc, strings.TrimSpace(format))

			if res.Err != nil {
				log.Println("ERR:", res.File, res.Format, res.Err)
			} else {
				log.Printf("OK %s -> %s %v", res.File, res.Format, res.Duration)
			}

			results = append(results, res)
		}
	}

	printMarkdown(os.Stdout, results)
}

func benchmarkDocument(ctx context.Context, cl *client.Client, filePath, format string) BenchResult {
	start := time.Now()

	info, err := os.Stat(filePath)
	if err != nil {
		return BenchResult{File: filepath.Base(filePath), Format: format, Err: err}
	}

	_, err = cl.Convert(ctx, client.DiskFile(filePath), format)

	return BenchResult{
		File:     filepath.Base(filePath),
		Format:   format,
		Duration: time.Since(start),
		Err:      err,
		Size:     info.Size(),
	}
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		a := m[r.Format]
		if r.Err != nil {
			a.Failed++
			m[r.Format] = a
			continue
		}
		a.Count++
		a.TotalBytes += r.Size
		a.Total += r.Duration
		m[r.Format] = a
	}
	return m
}

func printMarkdown(w io.Writer, results []BenchResult) {
	fmt.Fprint(w, "\n## Benchmark Results\n\n")
	fmt.Fprintln(w, "| Format | Requests | Failed | Avg Time | Total Time | Avg File Size |")
	fmt.Fprintln(w, "|--------|----------|--------|----------|------------|---------------|")

	agg := aggregate(results)

	formats := make([]string, 0, len(agg))
	for format := range agg {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	var (
		totalCount    int
		totalFailed   int
		totalDuration time.Duration
		totalBytes    int64
	)

	for _, format := range formats {
		a := agg[format]
		totalFailed += a.Failed
		if a.Count == 0 {
			fmt.Fprintf(w, "| %s | 0 | %d | - | - | - |\n", format, a.Failed)
			continue
		}
		avg := a.Total / time.Duration(a.Count)
		avgSize := a.TotalBytes / int64(a.Count)
		fmt.Fprintf(w, "| %s | %d | %d | %v | %v | %s |\n",
			format,
			a.Count,
			a.Failed,
			avg.Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			humanBytes(avgSize),
		)
		totalCount += a.Count
		totalDuration += a.Total
		totalBytes += a.TotalBytes
	}

	if totalCount > 0 {
		mean := totalDuration / time.Duration(totalCount)
		avgSize := totalBytes / int64(totalCount)
		fmt.Fprintf(w, "| **ALL** | %d | %d | %v | %v | %s |\n",
			totalCount,
			totalFailed,
			mean.Round(time.Millisecond),
			totalDuration.Round(time.Millisecond),
			humanBytes(avgSize),
		)
	}
}

func humanBytes(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truestate/internal/bootstrap"
	"truestate/internal/config"
	"truestate/internal/observability"
	"truestate/internal/services"

	"github.com/joho/godotenv"
)

// Command-line tool that loads the sales dataset into the configured store.
// Rows are read from a CSV file, or generated when -synthetic is set.
func main() {
	file := flag.String("file", "", "CSV file to import (default CSV_FILE_PATH)")
	synthetic := flag.Int("synthetic", 0, "Generate this many synthetic transactions instead of reading a file")
	seed := flag.Uint64("seed", 1, "Seed for synthetic generation")
	clearFirst := flag.Bool("clear", false, "Delete existing transactions before importing")
	batch := flag.Int("batch", 0, "Rows per insert batch (default IMPORT_BATCH_SIZE)")

	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to read .env file: %v", err)
	}

	cfg := config.Load()
	if *file != "" {
		cfg.Import.CSVFilePath = *file
	}
	if *batch > 0 {
		cfg.Import.BatchSize = *batch
	}
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatal(err)
	}
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Fatal("the memory store does not outlive this process; choose postgres, sqlite or mongo")
	}

	logger := observability.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	if *clearFirst {
		deleted, err := store.Repository.DeleteAll(ctx)
		if err != nil {
			log.Fatalf("Failed to clear transactions: %v", err)
		}
		fmt.Printf("Cleared %d existing transactions\n", deleted)
	}

	importer := services.NewCSVImporter(store.Repository, cfg.Import.BatchSize, nil, services.NewQueryLogger(logger))

	var report *services.ImportReport
	if *synthetic > 0 {
		end := time.Now().UTC().Truncate(24 * time.Hour)
		generator := services.NewTransactionGenerator(*seed, end.AddDate(-1, 0, 0), end)
		report, err = importer.Load(ctx, generator.Generate(*synthetic))
	} else {
		report, err = importFile(ctx, importer, cfg.Import.CSVFilePath)
	}
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	total, err := store.Repository.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count transactions: %v", err)
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("Store:    %s\n", store.Driver)
	fmt.Printf("Read:     %d rows\n", report.RowsRead)
	fmt.Printf("Inserted: %d\n", report.Inserted)
	fmt.Printf("Skipped:  %d (already stored)\n", report.Skipped)
	fmt.Printf("Rejected: %d\n", report.Rejected)
	fmt.Printf("Batches:  %d in %s\n", report.Batches, report.Duration.Round(time.Millisecond))
	fmt.Printf("Total:    %d transactions in store\n", total)
	fmt.Println("----------------------------------------")
}

func importFile(ctx context.Context, importer *services.CSVImporter, path string) (*services.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return importer.Import(ctx, f)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/initialdata"
	"github.com/lcadata/assembly_backend/models"
)

func main() {
	path := flag.String("path", "initialdata/BR18_bilag_2_tabel_7_version_2_201222.csv", "Path to the table 7 CSV file")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}
	if err := models.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	loaded, err := initialdata.LoadTable7(ctx, *path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d table 7 EPDs\n", loaded)
}

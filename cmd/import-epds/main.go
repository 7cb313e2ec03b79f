package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/importdata"
	"github.com/lcadata/assembly_backend/models"
)

const defaultImportLimit = 100

func usage() {
	fmt.Fprintln(os.Stderr, "usage: import-epds <oko|eco> [count]")
	fmt.Fprintln(os.Stderr, "  count defaults to 100; -1 fetches everything")
	os.Exit(2)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
	}
	command := args[0]

	limit := defaultImportLimit
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid count %q: %v\n", args[1], err)
			os.Exit(2)
		}
		limit = parsed
	}

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

	importer := importdata.NewImporter()

	var err error
	switch command {
	case "oko":
		err = importer.ImportOkobau(ctx, limit)
	case "eco":
		err = importer.ImportEcoPlatform(ctx, os.Getenv("ECOPLATFORM_TOKEN"), limit)
	default:
		fmt.Fprintf(os.Stderr, "no command with that name: %s\n", command)
		usage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

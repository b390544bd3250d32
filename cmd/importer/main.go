// Command importer loads testing centers from a JSON export into the store.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"checkpoint/config"
	"checkpoint/internal/domain/entity"
	logs "checkpoint/internal/infra/log"
	"checkpoint/internal/infra/persistence/model"
	"checkpoint/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type importRecord struct {
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	City        string              `json:"city"`
	Region      string              `json:"region"`
	TestTypes   []string            `json:"test_types"`
	Category    string              `json:"category"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	Website     string              `json:"website"`
	Hours       string              `json:"hours"`
	Description string              `json:"description"`
	Social      map[string]string   `json:"social"`
	Images      []string            `json:"images"`
	Source      string              `json:"source"`
	Coordinates *entity.Coordinates `json:"coordinates"`
}

var (
	inputPath string
	batchSize int
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "import testing centers from a JSON export",
	Long: `
importer reads a JSON array of testing centers and inserts them into the
location store. Records without coordinates are picked up later by the
enrichment pipeline.
`,
	RunE: runImport,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the JSON export (required)")
	rootCmd.Flags().IntVar(&batchSize, "batch", 50, "insert batch size")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "init logger")
	}

	records, err := readRecords(inputPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		logger.Info("nothing to import")

		return nil
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}

	repo := postgres.NewLocationRepository(db, logger)

	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetDescription("Importing centers"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	imported := 0
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		locations := make([]*entity.Location, 0, end-start)
		for _, record := range records[start:end] {
			locations = append(locations, toLocation(record))
		}

		if err := repo.InsertLocations(ctx, locations); err != nil {
			return errors.Wrapf(err, "insert batch starting at %d", start)
		}

		imported += len(locations)
		_ = bar.Add(len(locations))
	}

	logger.Info("import finished", slog.Int("count", imported))

	return nil
}

func readRecords(path string) ([]importRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "parse input")
	}

	return records, nil
}

func openStore(cfg *config.Config) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connect to PostgreSQL")
	}

	if err := db.AutoMigrate(&model.LocationModel{}); err != nil {
		return nil, errors.Wrap(err, "migrate locations schema")
	}

	return db.Session(&gorm.Session{SkipDefaultTransaction: true}), nil
}

func toLocation(record importRecord) *entity.Location {
	return &entity.Location{
		Name:        record.Name,
		Address:     record.Address,
		City:        record.City,
		Region:      record.Region,
		TestTypes:   record.TestTypes,
		Category:    record.Category,
		Phone:       record.Phone,
		Email:       record.Email,
		Website:     record.Website,
		Hours:       record.Hours,
		Description: record.Description,
		Social:      record.Social,
		Images:      record.Images,
		Source:      record.Source,
		Coordinates: record.Coordinates,
	}
}

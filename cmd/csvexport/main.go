package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/services"
	"hawaiielite-properties/internal/transformers"
	"hawaiielite-properties/internal/validators"
	"hawaiielite-properties/pkg/config"
	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/redfin"
	"hawaiielite-properties/pkg/zillow"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "csvexport",
		Usage: "Write property search results to a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "configs/config.yaml",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "CSV output path (defaults to export.path from the config)",
			},
			&cli.BoolFlag{
				Name:  "sample",
				Usage: "Use the bundled sample data instead of the upstream APIs",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Export a Zillow location search",
				ArgsUsage: "<location>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Value: zillow.DefaultStatus, Usage: "forSale, forRent or recentlySold"},
					&cli.StringFlag{Name: "type", Usage: "Upstream property type"},
					&cli.StringFlag{Name: "sort", Value: zillow.DefaultSort},
					&cli.StringFlag{Name: "page", Value: zillow.DefaultPage},
					&cli.FloatFlag{Name: "min-price"},
					&cli.FloatFlag{Name: "max-price"},
					&cli.FloatFlag{Name: "min-beds"},
					&cli.FloatFlag{Name: "min-baths"},
				},
				Action: runSearch,
			},
			{
				Name:  "sold",
				Usage: "Export the Redfin recently sold feed",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "region", Usage: "Redfin region id such as 6_2446"},
					&cli.StringFlag{Name: "sold-within", Usage: "Days since sale"},
					&cli.StringFlag{Name: "sort", Usage: "price_asc, price_desc, bedrooms_asc, ..."},
				},
				Action: runSold,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.GlobalLogger.Errorf("csvexport failed: %v", err)
		os.Exit(1)
	}
}

type exporter struct {
	aggregation *services.AggregationService
	csv         *services.ExportService
}

func newExporter(cmd *cli.Command) (*exporter, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	logger.InitLogger(os.Stderr, cfg.LogLevel)

	var zillowSrc services.ZillowSource
	if cfg.Zillow.APIKey != "" {
		zillowSrc = zillow.NewClient(cfg.Zillow.BaseURL, cfg.Zillow.Host, cfg.Zillow.APIKey, cfg.Zillow.Timeout())
	}
	var redfinSrc services.RedfinSource
	if cfg.Redfin.APIKey != "" {
		redfinSrc = redfin.NewClient(cfg.Redfin.BaseURL, cfg.Redfin.Host, cfg.Redfin.APIKey, cfg.Redfin.Timeout())
	}

	addrTrans := transformers.NewAddressTransformer()
	aggregation, err := services.NewAggregationService(zillowSrc, redfinSrc, nil, addrTrans, validators.NewPropertyValidator(), services.AggregationOptions{
		UseSampleData:     cfg.Aggregation.UseSampleData || cmd.Bool("sample"),
		MapPropertyTypes:  cfg.Aggregation.MapPropertyTypes,
		DefaultRegionID:   cfg.Redfin.DefaultRegionID,
		DefaultSoldWithin: cfg.Redfin.DefaultSoldWithin,
	})
	if err != nil {
		return nil, err
	}

	path := cfg.Export.Path
	if out := cmd.String("out"); out != "" {
		path = out
	}
	return &exporter{aggregation: aggregation, csv: services.NewExportService(path, addrTrans)}, nil
}

func (e *exporter) write(props []models.Property) error {
	n, err := e.csv.ExportPropertiesToCSV(props)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d properties to %s\n", n, e.csv.Path())
	return nil
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("search takes exactly one location argument")
	}
	e, err := newExporter(cmd)
	if err != nil {
		return err
	}

	filters := models.SearchFilters{
		Status:       cmd.String("status"),
		PropertyType: cmd.String("type"),
		Sort:         cmd.String("sort"),
		Page:         cmd.String("page"),
		MinPrice:     floatFlag(cmd, "min-price"),
		MaxPrice:     floatFlag(cmd, "max-price"),
		MinBeds:      floatFlag(cmd, "min-beds"),
		MinBaths:     floatFlag(cmd, "min-baths"),
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	result, err := e.aggregation.SearchProperties(ctx, cmd.Args().First(), filters)
	if err != nil {
		return err
	}
	return e.write(result.Properties)
}

func runSold(ctx context.Context, cmd *cli.Command) error {
	e, err := newExporter(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	props, err := e.aggregation.FetchSoldProperties(ctx, cmd.String("region"), cmd.String("sold-within"))
	if err != nil {
		return err
	}
	props, err = e.aggregation.FilterAndSort(props, models.LocalFilters{}, cmd.String("sort"))
	if err != nil {
		return err
	}
	return e.write(props)
}

func floatFlag(cmd *cli.Command, name string) *float64 {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Float(name)
	return &v
}

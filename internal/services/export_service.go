package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/transformers"
	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/metrics"
)

var csvHeader = []string{
	"ID", "Slug", "Price", "Bedrooms", "Bathrooms", "Square Footage", "Property Type", "Year Built",
	"Street Address", "City", "State", "Zipcode", "Latitude", "Longitude", "Listing Status", "Main Image",
}

// ExportService writes property collections to a fixed CSV file.
type ExportService struct {
	path      string
	addrTrans transformers.AddressTransformer
	// serializes writers sharing the one output file
	mu sync.Mutex
}

func NewExportService(path string, addrTrans transformers.AddressTransformer) *ExportService {
	return &ExportService{path: path, addrTrans: addrTrans}
}

func (s *ExportService) Path() string {
	return s.path
}

// ExportPropertiesToCSV overwrites the export file with one row per property
// and returns the number of rows written. Write errors are returned as is.
func (s *ExportService) ExportPropertiesToCSV(props []models.Property) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return 0, err
	}
	for _, p := range props {
		if err := w.Write(s.row(p)); err != nil {
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	metrics.CSVRowsExportedTotal.Add(float64(len(props)))
	logger.GlobalLogger.Printf("csv export written path=%s records=%d", s.path, len(props))
	return len(props), nil
}

func (s *ExportService) row(p models.Property) []string {
	slug := s.addrTrans.Slug(transformers.SlugPartsFromProperty(p))
	if slug == "" {
		slug = p.ID
	}
	mainImage := ""
	if len(p.Images) > 0 {
		mainImage = p.Images[0]
	}
	return []string{
		p.ID,
		slug,
		formatFloat(p.Price.Current),
		strconv.Itoa(p.Details.Beds),
		formatFloat(p.Details.Baths),
		strconv.Itoa(p.Details.Sqft),
		p.Details.PropertyType,
		p.Details.YearBuilt,
		p.Address.Street,
		p.Address.City,
		p.Address.State,
		p.Address.Zipcode,
		formatCoordinate(p.Location.Lat),
		formatCoordinate(p.Location.Lng),
		p.Status,
		mainImage,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

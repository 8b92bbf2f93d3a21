package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/repositories"
	"hawaiielite-properties/internal/transformers"
	"hawaiielite-properties/internal/utils"
	"hawaiielite-properties/internal/validators"
	"hawaiielite-properties/pkg/cache"
	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/upstream"
	"hawaiielite-properties/pkg/zillow"

	"golang.org/x/sync/errgroup"
)

// ZillowSource is the subset of the Zillow client the aggregation layer needs.
type ZillowSource interface {
	Search(ctx context.Context, params url.Values) (map[string]interface{}, error)
	Property(ctx context.Context, zpid string) (map[string]interface{}, error)
	Images(ctx context.Context, zpid string) ([]string, error)
}

// RedfinSource is the subset of the Redfin client the aggregation layer needs.
type RedfinSource interface {
	SearchSold(ctx context.Context, regionID, soldWithin string) ([]map[string]interface{}, error)
	SearchSale(ctx context.Context, regionID string) ([]map[string]interface{}, error)
	Detail(ctx context.Context, propertyID string) (map[string]interface{}, error)
}

type AggregationOptions struct {
	// UseSampleData serves the bundled fixture instead of calling upstream.
	// A nil source has the same effect for that source.
	UseSampleData     bool
	MapPropertyTypes  bool
	CacheTTL          time.Duration
	DefaultRegionID   string
	DefaultSoldWithin string
}

type AggregationService struct {
	zillow     ZillowSource
	redfin     RedfinSource
	cache      repositories.SearchCache
	validator  validators.PropertyValidator
	zillowNorm transformers.PropertyNormalizer
	soldNorm   transformers.PropertyNormalizer
	saleNorm   transformers.PropertyNormalizer
	sample     []models.Property
	opts       AggregationOptions
}

func NewAggregationService(
	zillowSrc ZillowSource,
	redfinSrc RedfinSource,
	searchCache repositories.SearchCache,
	addrTrans transformers.AddressTransformer,
	validator validators.PropertyValidator,
	opts AggregationOptions,
) (*AggregationService, error) {
	s := &AggregationService{
		zillow:     zillowSrc,
		redfin:     redfinSrc,
		cache:      searchCache,
		validator:  validator,
		zillowNorm: transformers.NewZillowNormalizer(addrTrans),
		soldNorm:   transformers.NewRedfinSoldNormalizer(addrTrans),
		saleNorm:   transformers.NewRedfinSaleNormalizer(addrTrans),
		opts:       opts,
	}

	if s.zillow == nil || s.redfin == nil || opts.UseSampleData {
		records, err := utils.LoadSampleData()
		if err != nil {
			return nil, utils.WrapError(err, "load sample data")
		}
		canonical := transformers.NewCanonicalNormalizer(addrTrans)
		for _, raw := range records {
			s.sample = append(s.sample, canonical.Normalize(raw))
		}
		logger.GlobalLogger.Printf("sample data enabled records=%d zillow_live=%t redfin_live=%t",
			len(s.sample), s.zillowLive(), s.redfinLive())
	}
	return s, nil
}

func (s *AggregationService) zillowLive() bool {
	return s.zillow != nil && !s.opts.UseSampleData
}

func (s *AggregationService) redfinLive() bool {
	return s.redfin != nil && !s.opts.UseSampleData
}

// SearchProperties runs a server-side filtered search for location.
func (s *AggregationService) SearchProperties(ctx context.Context, location string, filters models.SearchFilters) (*models.SearchResult, error) {
	if err := s.validator.ValidateSearch(location, filters); err != nil {
		return nil, err
	}

	params := zillow.BuildSearchParams(location, filters)
	key := cache.SearchKey(params)

	if s.cache != nil {
		cached, err := s.cache.GetSearchResult(ctx, key)
		if err != nil {
			logger.GlobalLogger.Errorf("search cache read failed key=%s: %v", key, err)
		} else if cached != nil {
			logger.GlobalLogger.Debugf("search cache hit key=%s location=%q", key, location)
			return cached, nil
		}
	}

	var (
		props        []models.Property
		upstreamSize int
		pageSize     int
		err          error
	)
	if s.zillowLive() {
		props, upstreamSize, pageSize, err = s.searchUpstream(ctx, params)
		if err != nil {
			return nil, err
		}
	} else {
		props = SortProperties(FilterProperties(s.sampleByStatus(""), localFromSearch(filters)), filters.Sort)
	}

	props = FilterProperties(props, models.LocalFilters{PropertyType: filters.PropertyType})
	if s.opts.MapPropertyTypes {
		props = applyTypeMap(props)
	}

	total := upstreamSize
	if total == 0 {
		total = len(props)
	}
	if pageSize == 0 {
		pageSize = len(props)
	}

	result := &models.SearchResult{
		Properties:   props,
		TotalResults: total,
		Pagination: models.Pagination{
			CurrentPage: utils.ParsePage(params.Get("page")),
			TotalPages:  utils.TotalPages(total, pageSize),
			PageSize:    pageSize,
		},
	}

	if s.cache != nil && s.opts.CacheTTL > 0 {
		if err := s.cache.SetSearchResult(ctx, key, result, s.opts.CacheTTL); err != nil {
			logger.GlobalLogger.Errorf("search cache write failed key=%s: %v", key, err)
		}
	}
	return result, nil
}

func (s *AggregationService) searchUpstream(ctx context.Context, params url.Values) ([]models.Property, int, int, error) {
	raw, err := s.zillow.Search(ctx, params)
	if err != nil {
		return nil, 0, 0, err
	}
	items, ok := raw["props"].([]interface{})
	if !ok {
		return nil, 0, 0, &upstream.PayloadError{Source: "zillow", Path: "/propertyExtendedSearch", Reason: "response has no props array"}
	}

	props := make([]models.Property, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		props = append(props, s.zillowNorm.Normalize(record))
	}

	total, _ := intField(raw, "totalResultCount")
	pageSize, _ := intField(raw, "resultsPerPage")
	return props, total, pageSize, nil
}

// GetPropertyDetails joins the property record with its image gallery.
// Both calls run concurrently and either failure fails the whole request.
func (s *AggregationService) GetPropertyDetails(ctx context.Context, id string) (*models.PropertyDetail, error) {
	if !s.zillowLive() {
		p, err := s.sampleByID(id, "/property")
		if err != nil {
			return nil, err
		}
		return &models.PropertyDetail{Property: p, LotSize: p.Details.LotSize, HomeType: p.Details.PropertyType, HomeStatus: p.Status}, nil
	}

	var (
		raw    map[string]interface{}
		images []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.zillow.Property(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = s.zillow.Images(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := transformers.NormalizeDetail(s.zillowNorm, raw)
	if len(images) > 0 {
		detail.Images = images
	}
	if s.opts.MapPropertyTypes {
		detail.Details.PropertyType = MapPropertyType(detail.Details.PropertyType)
	}
	return &detail, nil
}

// GetPropertyImages returns the raw image list. Unlike the normalized record,
// an empty gallery stays empty.
func (s *AggregationService) GetPropertyImages(ctx context.Context, id string) (*models.PropertyImages, error) {
	var images []string
	if s.zillowLive() {
		var err error
		images, err = s.zillow.Images(ctx, id)
		if err != nil {
			return nil, err
		}
	} else {
		p, err := s.sampleByID(id, "/images")
		if err != nil {
			return nil, err
		}
		for _, img := range p.Images {
			if img != models.PlaceholderImage {
				images = append(images, img)
			}
		}
	}
	if images == nil {
		images = []string{}
	}
	return &models.PropertyImages{Images: images, TotalImages: len(images)}, nil
}

// FetchSoldProperties returns recently sold homes in a Redfin region.
func (s *AggregationService) FetchSoldProperties(ctx context.Context, regionID, soldWithin string) ([]models.Property, error) {
	if err := validators.ValidateRegion(regionID); err != nil {
		return nil, err
	}
	if regionID == "" {
		regionID = s.opts.DefaultRegionID
	}
	if soldWithin == "" {
		soldWithin = s.opts.DefaultSoldWithin
	}

	if !s.redfinLive() {
		return s.sampleByStatus("SOLD"), nil
	}
	records, err := s.redfin.SearchSold(ctx, regionID, soldWithin)
	if err != nil {
		return nil, err
	}
	return s.normalizeAll(s.soldNorm, records), nil
}

// FetchPropertiesForSale returns active listings in a Redfin region.
func (s *AggregationService) FetchPropertiesForSale(ctx context.Context, regionID string) ([]models.Property, error) {
	if err := validators.ValidateRegion(regionID); err != nil {
		return nil, err
	}
	if regionID == "" {
		regionID = s.opts.DefaultRegionID
	}

	if !s.redfinLive() {
		return s.sampleByStatus("FOR_SALE"), nil
	}
	records, err := s.redfin.SearchSale(ctx, regionID)
	if err != nil {
		return nil, err
	}
	return s.normalizeAll(s.saleNorm, records), nil
}

func (s *AggregationService) GetRedfinPropertyDetails(ctx context.Context, id string) (*models.PropertyDetail, error) {
	if !s.redfinLive() {
		p, err := s.sampleByID(id, "/properties/detail")
		if err != nil {
			return nil, err
		}
		return &models.PropertyDetail{Property: p, LotSize: p.Details.LotSize, HomeType: p.Details.PropertyType, HomeStatus: p.Status}, nil
	}
	raw, err := s.redfin.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := transformers.NormalizeDetail(s.saleNorm, raw)
	return &detail, nil
}

// FilterAndSort applies the client-side filter mode to a fetched feed.
func (s *AggregationService) FilterAndSort(props []models.Property, filters models.LocalFilters, sortKey string) ([]models.Property, error) {
	if err := s.validator.ValidateLocalFilters(filters); err != nil {
		return nil, err
	}
	out := SortProperties(FilterProperties(props, filters), sortKey)
	if s.opts.MapPropertyTypes {
		out = applyTypeMap(out)
	}
	return out, nil
}

func (s *AggregationService) normalizeAll(n transformers.PropertyNormalizer, records []map[string]interface{}) []models.Property {
	out := make([]models.Property, 0, len(records))
	for _, r := range records {
		out = append(out, n.Normalize(r))
	}
	return out
}

// sampleByStatus copies the fixture; an empty status selects everything.
func (s *AggregationService) sampleByStatus(status string) []models.Property {
	out := make([]models.Property, 0, len(s.sample))
	for _, p := range s.sample {
		if status == "" || strings.EqualFold(p.Status, status) {
			out = append(out, p)
		}
	}
	return out
}

func (s *AggregationService) sampleByID(id, path string) (models.Property, error) {
	for _, p := range s.sample {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, &upstream.StatusError{
		Source:     "sample",
		Path:       path,
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("no sample property with id %s", id),
	}
}

// localFromSearch projects the server-side bounds the fixture can honour.
func localFromSearch(f models.SearchFilters) models.LocalFilters {
	return models.LocalFilters{
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		MinBeds:  f.MinBeds,
		MinBaths: f.MinBaths,
	}
}

func intField(m map[string]interface{}, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pawhootz/storefront-backend/internal/catalog"
	apperrors "github.com/pawhootz/storefront-backend/internal/errors"
	"github.com/pawhootz/storefront-backend/internal/models"
)

// CatalogService owns the storefront catalog. It loads the live catalog
// from the vendor once, falls back to the bundled demo catalog when live
// inventory is unavailable, and holds the session-lifetime review state.
type CatalogService struct {
	client     *GHLClient
	normalizer *catalog.Normalizer
	logger     *log.Logger

	mu       sync.Mutex
	loaded   bool
	demo     bool
	products []models.Product
}

func NewCatalogService(client *GHLClient, normalizer *catalog.Normalizer, logger *log.Logger) *CatalogService {
	return &CatalogService{
		client:     client,
		normalizer: normalizer,
		logger:     logger,
	}
}

// FetchCatalog retrieves and normalizes the live vendor catalog. The
// product list and the media library are fetched concurrently. A 404 on
// the product route rebuilds the catalog from media files alone; a
// malformed payload does the same, or yields an empty catalog when there
// are no media files either.
func (s *CatalogService) FetchCatalog(ctx context.Context) ([]models.Product, error) {
	var (
		wg       sync.WaitGroup
		vendor   []catalog.VendorProduct
		fetchErr error
		media    []models.MediaFile
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		vendor, fetchErr = s.client.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		media = s.client.FetchMediaFiles(ctx)
	}()
	wg.Wait()

	switch {
	case errors.Is(fetchErr, ErrCatalogRouteMissing):
		if len(media) > 0 {
			s.logger.Printf("Product API returned 404, constructing catalog from %d media files", len(media))
			return s.fromMedia(media), nil
		}
		return nil, apperrors.NewExternalError("ghl", fetchErr)
	case errors.Is(fetchErr, ErrMalformedCatalog):
		if len(media) > 0 {
			s.logger.Printf("Product payload malformed, constructing catalog from %d media files", len(media))
			return s.fromMedia(media), nil
		}
		return []models.Product{}, nil
	case fetchErr != nil:
		return nil, fetchErr
	}

	products := make([]models.Product, 0, len(vendor))
	for _, vp := range vendor {
		products = append(products, s.normalizer.Normalize(vp, media))
	}
	return products, nil
}

func (s *CatalogService) fromMedia(files []models.MediaFile) []models.Product {
	products := make([]models.Product, 0, len(files))
	for _, f := range files {
		products = append(products, s.normalizer.FromMediaFile(f))
	}
	return products
}

// Products returns the served catalog, loading it on first use. The
// second return value reports whether the shopper should see the
// "live inventory unavailable" banner.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	// Copy the slice so review prepends never race a caller still
	// holding the previous snapshot.
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, s.demo
}

// ensureLoaded must be called with the mutex held.
func (s *CatalogService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}

	products, err := s.FetchCatalog(ctx)
	switch {
	case err != nil:
		s.logger.Printf("Live catalog unavailable, serving demo catalog: %v", err)
		s.products, s.demo = models.DemoCatalog(), true
	case len(products) == 0:
		// The original storefront quietly shows samples here, without the
		// unavailability banner.
		s.logger.Printf("Vendor returned an empty catalog, serving demo catalog")
		s.products, s.demo = models.DemoCatalog(), false
	default:
		s.products, s.demo = products, false
	}
	s.loaded = true
}

// ProductByID returns the catalog product with the given id.
func (s *CatalogService) ProductByID(ctx context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, apperrors.NewNotFoundError("product " + id)
}

// AddReview prepends a shopper review to the product, newest first.
// Reviews live only as long as the loaded catalog; they are never written
// back to the vendor.
func (s *CatalogService) AddReview(ctx context.Context, productID, author string, rating int, comment string) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, apperrors.NewValidationError("rating must be between 1 and 5")
	}

	review := models.Review{
		ID:      "r-" + uuid.NewString(),
		Author:  author,
		Rating:  rating,
		Comment: comment,
		Date:    time.Now().Format("2006-01-02"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Reviews = append([]models.Review{review}, s.products[i].Reviews...)
			return review, nil
		}
	}
	return models.Review{}, apperrors.NewNotFoundError("product " + productID)
}

// FilterProducts narrows a catalog by category key and free-text query.
// The query matches product names and descriptions, case-insensitively.
func FilterProducts(products []models.Product, category, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" && string(p.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

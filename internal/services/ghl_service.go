package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pawhootz/storefront-backend/internal/catalog"
	apperrors "github.com/pawhootz/storefront-backend/internal/errors"
	"github.com/pawhootz/storefront-backend/internal/models"
)

const (
	defaultBaseURL  = "https://services.leadconnectorhq.com"
	defaultVersion  = "2021-07-28"
	defaultRelayURL = "https://corsproxy.io/"
	pageLimit       = 100
)

var (
	// ErrCatalogRouteMissing marks a 404 on the vendor's product route. It
	// signals "rebuild the catalog from the media library" rather than a
	// hard failure.
	ErrCatalogRouteMissing = errors.New("vendor product route missing")

	// ErrMalformedCatalog marks an OK response whose body is not a
	// recognizable product list.
	ErrMalformedCatalog = errors.New("vendor product payload is not a list")
)

// GHLClient manages interactions with the vendor commerce API.
type GHLClient struct {
	BaseURL    string
	APIToken   string
	LocationID string
	Version    string
	RelayURL   string
	HTTPClient *http.Client
	logger     *log.Logger
}

// NewGHLClient creates a new instance of GHLClient.
func NewGHLClient(apiToken, locationID string, logger *log.Logger) *GHLClient {
	return &GHLClient{
		BaseURL:    defaultBaseURL,
		APIToken:   apiToken,
		LocationID: locationID,
		Version:    defaultVersion,
		RelayURL:   defaultRelayURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (c *GHLClient) do(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIToken)
	req.Header.Set("Version", c.Version)
	req.Header.Set("Accept", "application/json")

	return c.HTTPClient.Do(req)
}

// fetchWithFallback issues the request directly and, for outcomes a relay
// could plausibly fix, retries exactly once through the configured CORS
// relay. 404 and 2xx responses pass through to the caller; auth failures
// and 5xx are raised immediately since a relay cannot repair either. The
// relay attempt's outcome is final.
func (c *GHLClient) fetchWithFallback(ctx context.Context, rawURL string) (*http.Response, error) {
	res, err := c.do(ctx, rawURL)
	if err == nil {
		switch {
		case res.StatusCode == http.StatusNotFound:
			return res, nil
		case res.StatusCode >= 200 && res.StatusCode < 300:
			return res, nil
		case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
			status := res.StatusCode
			res.Body.Close()
			return nil, apperrors.NewUpstreamAuthError("ghl", status)
		case res.StatusCode >= 500:
			status := res.StatusCode
			res.Body.Close()
			return nil, apperrors.NewUpstreamServerError("ghl", status)
		default:
			res.Body.Close()
		}
	}

	c.logger.Printf("Direct fetch of %s failed, attempting relay fallback (err=%v)", rawURL, err)

	relayURL := strings.TrimRight(c.RelayURL, "?") + "?" + url.QueryEscape(rawURL)
	res, err = c.do(ctx, relayURL)
	if err != nil {
		return nil, apperrors.NewExternalError("ghl", err)
	}
	return res, nil
}

// FetchProducts retrieves the vendor product list. The payload may be a
// bare array or an object with a products key; anything else is reported
// as ErrMalformedCatalog. A 404 is reported as ErrCatalogRouteMissing.
func (c *GHLClient) FetchProducts(ctx context.Context) ([]catalog.VendorProduct, error) {
	endpoint := fmt.Sprintf("%s/products/?locationId=%s&limit=%d", c.BaseURL, url.QueryEscape(c.LocationID), pageLimit)

	res, err := c.fetchWithFallback(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrCatalogRouteMissing
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, apperrors.NewExternalError("ghl", fmt.Errorf("unexpected status %d", res.StatusCode))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("ghl", err)
	}

	var wrapped struct {
		Products []catalog.VendorProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products, nil
	}

	var list []catalog.VendorProduct
	if err := json.Unmarshal(body, &list); err == nil && list != nil {
		return list, nil
	}

	return nil, ErrMalformedCatalog
}

// FetchMediaFiles lists the vendor media library, descending into a
// "Products" folder when one exists, and keeps only image files. Every
// failure on this path degrades to an empty list; matched images are a
// best-effort garnish, never a reason to fail the catalog.
func (c *GHLClient) FetchMediaFiles(ctx context.Context) []models.MediaFile {
	root, err := c.listFiles(ctx, "")
	if err != nil {
		c.logger.Printf("Media library unavailable: %v", err)
		return nil
	}

	all := root
	if folder := findProductFolder(root); folder != nil {
		folderID := folder.AltID
		if folderID == "" {
			folderID = folder.ID
		}
		inner, err := c.listFiles(ctx, folderID)
		if err != nil {
			c.logger.Printf("Product folder %s unavailable: %v", folderID, err)
		} else {
			all = append(all, inner...)
		}
	}

	return filterImages(all)
}

func (c *GHLClient) listFiles(ctx context.Context, folderID string) ([]models.MediaFile, error) {
	endpoint := fmt.Sprintf("%s/medias/files?locationId=%s&limit=%d", c.BaseURL, url.QueryEscape(c.LocationID), pageLimit)
	if folderID != "" {
		endpoint += "&altId=" + url.QueryEscape(folderID)
	}

	res, err := c.fetchWithFallback(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var payload struct {
		Files []models.MediaFile `json:"files"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse media list: %v", err)
	}
	return payload.Files, nil
}

func findProductFolder(files []models.MediaFile) *models.MediaFile {
	for i, f := range files {
		if (f.IsDir || f.Type == "folder") && strings.Contains(strings.ToLower(f.Name), "product") {
			return &files[i]
		}
	}
	return nil
}

var imageExtension = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

func filterImages(files []models.MediaFile) []models.MediaFile {
	var images []models.MediaFile
	for _, f := range files {
		if strings.HasPrefix(f.Type, "image") || (f.URL != "" && imageExtension.MatchString(f.URL)) {
			images = append(images, f)
		}
	}
	return images
}

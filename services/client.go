package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/models"
)

// Upstream resource paths, relative to the configured API base.
const (
	ResourceProducts    = "/products/products/"
	ResourceCategories  = "/products/categories/"
	ResourceArtists     = "/artists/profiles/"
	ResourceAnalytics   = "/artists/profiles/analytics/"
	ResourceCommissions = "/commissions/requests/"
	ResourceForums      = "/community/forums/"
	ResourcePosts       = "/community/posts/"
	ResourceChapters    = "/chapters/chapters/"
)

// Client reads the ArtWala backend's REST resources. It issues plain
// unauthenticated GETs, no pagination or filter parameters, and never
// retries: a failed fetch is terminal for that load cycle.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(cfg configs.Config, log *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.UpstreamBaseURL,
		http:    &http.Client{Timeout: cfg.UpstreamTimeout},
		log:     log,
	}
}

// FetchCollection GETs a resource and normalizes the response body into a
// record sequence. Transport and HTTP-status failures are returned to the
// caller, which owns the fallback policy; shape failures are absorbed by the
// normalizer and come back as an empty sequence.
func (c *Client) FetchCollection(ctx context.Context, resourcePath string) ([]json.RawMessage, error) {
	body, err := c.get(ctx, resourcePath)
	if err != nil {
		return nil, err
	}

	return Normalize(c.log, resourcePath, body), nil
}

func (c *Client) get(ctx context.Context, resourcePath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+resourcePath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", resourcePath)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", resourcePath)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetching %s: unexpected status %d", resourcePath, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s response", resourcePath)
	}

	return body, nil
}

// decodeRecords unmarshals each raw record into T. A record that does not
// decode is logged and skipped rather than failing the whole collection.
func decodeRecords[T any](log *zap.Logger, resource string, records []json.RawMessage) []T {
	out := make([]T, 0, len(records))
	for _, raw := range records {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Warn("skipping undecodable record",
				zap.String("resource", resource),
				zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	records, err := c.FetchCollection(ctx, ResourceProducts)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Product](c.log, ResourceProducts, records), nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	records, err := c.FetchCollection(ctx, ResourceCategories)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Category](c.log, ResourceCategories, records), nil
}

func (c *Client) FetchArtists(ctx context.Context) ([]models.ArtistProfile, error) {
	records, err := c.FetchCollection(ctx, ResourceArtists)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.ArtistProfile](c.log, ResourceArtists, records), nil
}

// FetchAnalytics reads the single-object analytics resource. It is the one
// endpoint that does not serve a collection, so it bypasses the normalizer.
func (c *Client) FetchAnalytics(ctx context.Context) (models.ArtistAnalytics, error) {
	var analytics models.ArtistAnalytics

	body, err := c.get(ctx, ResourceAnalytics)
	if err != nil {
		return analytics, err
	}

	if err := json.Unmarshal(body, &analytics); err != nil {
		return models.ArtistAnalytics{}, errors.Wrap(err, "decoding analytics")
	}

	return analytics, nil
}

func (c *Client) FetchCommissions(ctx context.Context) ([]models.CommissionRequest, error) {
	records, err := c.FetchCollection(ctx, ResourceCommissions)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.CommissionRequest](c.log, ResourceCommissions, records), nil
}

func (c *Client) FetchForums(ctx context.Context) ([]models.Forum, error) {
	records, err := c.FetchCollection(ctx, ResourceForums)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Forum](c.log, ResourceForums, records), nil
}

func (c *Client) FetchPosts(ctx context.Context) ([]models.Post, error) {
	records, err := c.FetchCollection(ctx, ResourcePosts)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Post](c.log, ResourcePosts, records), nil
}

func (c *Client) FetchChapters(ctx context.Context) ([]models.Chapter, error) {
	records, err := c.FetchCollection(ctx, ResourceChapters)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Chapter](c.log, ResourceChapters, records), nil
}

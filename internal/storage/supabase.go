package storage

import (
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// Client wraps the Supabase storage API for the image bucket. The
// admin dashboard uploads straight to the bucket; the backend only
// resolves public URLs and removes objects that lost their catalog
// row. A nil *Client means no image host is configured.
type Client struct {
	client  *storage.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

func NewClient(supabaseURL, publishableKey, bucket string, logger *zap.Logger) (*Client, error) {
	if supabaseURL == "" || publishableKey == "" {
		return nil, fmt.Errorf("supabase url and key are required")
	}

	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", publishableKey, nil)

	return &Client{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func (c *Client) Bucket() string {
	return c.bucket
}

// PublicBaseURL is the prefix the dashboard prepends to a public_id to
// display an image.
func (c *Client) PublicBaseURL() string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s", c.baseURL, c.bucket)
}

func (c *Client) PublicURL(publicID string) string {
	return fmt.Sprintf("%s/%s", c.PublicBaseURL(), publicID)
}

// Remove deletes hosted objects by their public_id paths. Cleanup is
// best effort: failures are logged and never fail the request that
// triggered them.
func (c *Client) Remove(publicIDs ...string) {
	if len(publicIDs) == 0 {
		return
	}
	if _, err := c.client.RemoveFile(c.bucket, publicIDs); err != nil {
		c.logger.Warn("failed to remove hosted images",
			zap.Strings("public_ids", publicIDs),
			zap.Error(err),
		)
	}
}

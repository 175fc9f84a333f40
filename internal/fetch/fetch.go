// Package fetch downloads article header images so exports can embed them.
package fetch

import (
	"context"
	"encoding/base64"
	"io"
	"mime"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apperrors "github.com/diogo/seodraft/internal/errors"
	"github.com/diogo/seodraft/internal/logging"
)

// MaxImageSize caps how much of a header image is read.
const MaxImageSize = 10 << 20

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Doer sends a request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// Client downloads images with a browser TLS fingerprint, since many image
// CDNs reject default Go clients.
type Client struct {
	http Doer
	log  logging.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) ClientOption {
	return func(c *Client) {
		c.http = d
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Client whose requests time out after timeout.
func NewClient(timeout time.Duration, opts ...ClientOption) (*Client, error) {
	c := &Client{log: logging.NoOp()}
	for _, opt := range opts {
		opt(c)
	}
	if c.http != nil {
		return c, nil
	}

	seconds := int(timeout / time.Second)
	if seconds <= 0 {
		seconds = 30
	}
	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(seconds),
		tls_client.WithClientProfile(profiles.Chrome_120),
	)
	if err != nil {
		return nil, err
	}
	c.http = httpClient
	return c, nil
}

// IsDataURL reports whether url already carries its payload inline.
func IsDataURL(url string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(url)), "data:")
}

// EmbedImage returns url as a data: URL. Data URLs are returned unchanged;
// http(s) URLs are downloaded and must answer 200 with an image content type.
func (c *Client) EmbedImage(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if IsDataURL(url) {
		return url, nil
	}
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "", apperrors.NewDownloadError("unsupported image URL scheme", url)
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, url, nil)
	if err != nil {
		return "", apperrors.NewDownloadError("failed to create request: "+err.Error(), url)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	log := logging.WithContext(c.log, ctx)
	log.Debug("downloading header image", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.NewDownloadNetworkError(url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != fhttp.StatusOK {
		return "", apperrors.NewDownloadErrorWithStatus(url, resp.StatusCode)
	}

	mediaType, ok := imageMediaType(resp.Header.Get("Content-Type"))
	if !ok {
		return "", apperrors.NewDownloadError("response is not an image: "+resp.Header.Get("Content-Type"), url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageSize+1))
	if err != nil {
		return "", apperrors.NewDownloadError("failed to read response: "+err.Error(), url)
	}
	if len(data) > MaxImageSize {
		return "", apperrors.NewDownloadError("image exceeds size limit", url)
	}

	log.Debug("header image embedded", "url", url, "bytes", len(data), "type", mediaType)
	return DataURL(mediaType, data), nil
}

// DataURL encodes data as a base64 data: URL.
func DataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func imageMediaType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	return mediaType, strings.HasPrefix(mediaType, "image/")
}

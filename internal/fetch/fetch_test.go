package fetch

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/diogo/seodraft/internal/errors"
	"github.com/diogo/seodraft/internal/logging"
)

type fakeDoer struct {
	status      int
	contentType string
	body        string
	err         error

	requests []*fhttp.Request
}

func (f *fakeDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	header := fhttp.Header{}
	if f.contentType != "" {
		header.Set("Content-Type", f.contentType)
	}
	return &fhttp.Response{
		StatusCode: f.status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func newTestClient(t *testing.T, d Doer) *Client {
	t.Helper()
	c, err := NewClient(time.Second, WithDoer(d))
	require.NoError(t, err)
	return c
}

func TestEmbedImage_Downloads(t *testing.T) {
	doer := &fakeDoer{status: 200, contentType: "image/png; charset=binary", body: "\x89PNG fake"}
	c := newTestClient(t, doer)

	got, err := c.EmbedImage(context.Background(), " https://cdn.example.com/cover.png ")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("\x89PNG fake")), got)
	require.Len(t, doer.requests, 1)
	assert.Equal(t, "https://cdn.example.com/cover.png", doer.requests[0].URL.String())
	assert.NotEmpty(t, doer.requests[0].Header.Get("User-Agent"))
}

type debugRecorder struct {
	logging.Logger
	messages []string
}

func (r *debugRecorder) Debug(msg string, _ ...any) {
	r.messages = append(r.messages, msg)
}

func TestEmbedImage_LogsThroughRequestLogger(t *testing.T) {
	rec := &debugRecorder{Logger: logging.NoOp()}
	c, err := NewClient(time.Second, WithDoer(&fakeDoer{status: 200, contentType: "image/jpeg", body: "jpg"}), WithLogger(rec))
	require.NoError(t, err)

	_, err = c.EmbedImage(context.Background(), "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"downloading header image", "header image embedded"}, rec.messages)
}

func TestEmbedImage_DataURLPassthrough(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(t, doer)

	in := "data:image/jpeg;base64,/9j/4AAQ"
	got, err := c.EmbedImage(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Empty(t, doer.requests)
}

func TestEmbedImage_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		doer   *fakeDoer
		status int
	}{
		{"not found", "https://x.test/a.png", &fakeDoer{status: 404, contentType: "image/png"}, 404},
		{"html instead of image", "https://x.test/a.png", &fakeDoer{status: 200, contentType: "text/html"}, 0},
		{"missing content type", "https://x.test/a.png", &fakeDoer{status: 200}, 0},
		{"network failure", "https://x.test/a.png", &fakeDoer{err: errors.New("connection reset")}, 0},
		{"unsupported scheme", "ftp://x.test/a.png", &fakeDoer{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.doer)

			_, err := c.EmbedImage(context.Background(), tt.url)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrDownloadFailed))

			var dlErr *apperrors.DownloadError
			require.True(t, errors.As(err, &dlErr))
			assert.Equal(t, tt.url, dlErr.URL)
			assert.Equal(t, tt.status, dlErr.StatusCode)
		})
	}
}

func TestEmbedImage_TooLarge(t *testing.T) {
	doer := &fakeDoer{status: 200, contentType: "image/png", body: strings.Repeat("x", MaxImageSize+1)}
	c := newTestClient(t, doer)

	_, err := c.EmbedImage(context.Background(), "https://x.test/huge.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/png;base64,AA"))
	assert.True(t, IsDataURL("  DATA:image/png;base64,AA"))
	assert.False(t, IsDataURL("https://example.com/data:x"))
	assert.False(t, IsDataURL(""))
}

func TestNewClient_DefaultTransport(t *testing.T) {
	c, err := NewClient(0)
	require.NoError(t, err)
	assert.NotNil(t, c.http)
}

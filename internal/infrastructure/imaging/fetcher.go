package imaging

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Register decoders for the formats listing images come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/guardify/backend/internal/domain"
)

// maxImageBytes caps how much of a response body is read before decoding.
const maxImageBytes = 20 << 20 // 20 MiB

// Fetcher downloads and decodes listing images over HTTP
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher whose requests time out after the given
// duration. Redirect chains are capped at 3 hops.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
	}
}

// FetchImage downloads one image and decodes it. Every failure mode maps
// to domain.ErrImageFetch; the analyzer treats it as a per-URL skip.
func (f *Fetcher) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	req.Header.Set("User-Agent", "Guardify/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrImageFetch, resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrImageFetch, err)
	}
	return img, nil
}

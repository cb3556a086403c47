package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/oticaisis/storefront/core/cache"
)

const (
	maxEdge      = 1600
	webpQuality  = 80
	mediaTag     = "media"
	maxBodyBytes = 10 << 20
)

// Proxy fetches remote product images, resizes them and re-encodes as webp.
// Results are cached in memory keyed by source URL and dimensions.
type Proxy struct {
	httpClient *http.Client
	memory     *cache.Cache
	ttl        time.Duration
}

func NewProxy(memory *cache.Cache, ttl time.Duration) *Proxy {
	if memory == nil {
		memory = cache.New()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Proxy{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		memory:     memory,
		ttl:        ttl,
	}
}

// Thumbnail returns the webp-encoded thumbnail of src fit into w×h.
func (p *Proxy) Thumbnail(ctx context.Context, src string, w, h int) ([]byte, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return nil, fmt.Errorf("media: unsupported source %q", src)
	}
	if w <= 0 || w > maxEdge {
		w = 400
	}
	if h <= 0 || h > maxEdge {
		h = 400
	}

	key := cache.Key(mediaTag, src, fmt.Sprint(w), fmt.Sprint(h))
	if cached, ok := p.memory.Get(key); ok {
		return cached.([]byte), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	res, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media fetch: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media fetch: status %d", res.StatusCode)
	}

	img, err := imaging.Decode(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("media decode: %w", err)
	}

	thumb := imaging.Fit(img, w, h, imaging.Lanczos)
	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("media encode: %w", err)
	}

	out := buf.Bytes()
	p.memory.Set(key, out, p.ttl, []string{mediaTag})
	return out, nil
}

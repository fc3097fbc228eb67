package dogceo

import (
	"context"
	"strings"
	"time"

	"dogs-adoption/internal/platform/httpclient"
	"dogs-adoption/internal/platform/logger"
	"dogs-adoption/internal/platform/metrics"
)

const (
	DefaultURL      = "https://dog.ceo/api/breeds/image/random"
	DefaultFallback = "https://bit.ly/3gDmzHO"
	DefaultTimeout  = 5 * time.Second
)

type Config struct {
	URL      string
	Fallback string
	Timeout  time.Duration
}

// Client implementa dogs.PictureSource contra la API pública dog.ceo.
type Client struct {
	http     *httpclient.Client
	url      string
	fallback string
	log      logger.Logger
}

func New(cfg Config, log logger.Logger) *Client {
	return NewWithHTTP(cfg, httpclient.New(timeoutOrDefault(cfg.Timeout)), log)
}

// NewWithHTTP permite inyectar el httpclient (tests).
func NewWithHTTP(cfg Config, hc *httpclient.Client, log logger.Logger) *Client {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	fallback := strings.TrimSpace(cfg.Fallback)
	if fallback == "" {
		fallback = DefaultFallback
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		http:     hc,
		url:      url,
		fallback: fallback,
		log:      log.With(map[string]any{"adapter": "dogceo"}),
	}
}

type randomImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Picture devuelve una URL aleatoria o el fallback ante cualquier falla (sin reintentos).
func (c *Client) Picture(ctx context.Context) string {
	var out randomImageResponse
	if err := c.http.GetJSON(ctx, c.url, &out); err != nil {
		c.log.Warn("picture fetch failed, using fallback", map[string]any{"error": err})
		metrics.PictureFallback()
		return c.fallback
	}

	msg := strings.TrimSpace(out.Message)
	if msg == "" {
		c.log.Warn("picture response without message, using fallback", nil)
		metrics.PictureFallback()
		return c.fallback
	}

	metrics.PictureFetched()
	return msg
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Package thumbnail downloads a video thumbnail and fits it to the size the
// windows reserve above the info text.
package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Geometry of the thumbnail slot: scale to 600x450, then keep 336 rows
const (
	ScaledWidth  = 600
	ScaledHeight = 450
	CropHeight   = 336
)

// Fetch limits
const (
	DefaultTimeout = 15 * time.Second
	MaxImageBytes  = 10 << 20
)

// Anchor picks which rows survive the crop
type Anchor int

const (
	// AnchorCenter keeps the middle rows (downloader window)
	AnchorCenter Anchor = iota
	// AnchorTop keeps the top rows (music window)
	AnchorTop
)

// ErrEmptyURL is returned when the video has no thumbnail URL
var ErrEmptyURL = errors.New("thumbnail URL is empty")

// Fetcher downloads thumbnails over HTTP
type Fetcher struct {
	client *http.Client
	anchor Anchor
}

// NewFetcher creates a fetcher. A nil client gets one with DefaultTimeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Fetcher{client: client}
}

// SetAnchor changes how fetched images are cropped
func (f *Fetcher) SetAnchor(anchor Anchor) {
	f.anchor = anchor
}

// Fetch downloads and decodes the image at url, then fits it to the slot
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch thumbnail: unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}

	return FitAnchored(img, f.anchor), nil
}

// Fit scales img to ScaledWidth x ScaledHeight and crops the vertical centre
// to CropHeight rows.
func Fit(img image.Image) image.Image {
	return FitAnchored(img, AnchorCenter)
}

// FitAnchored is Fit with a choice of which rows to keep
func FitAnchored(img image.Image, anchor Anchor) image.Image {
	scaled := image.NewRGBA(image.Rect(0, 0, ScaledWidth, ScaledHeight))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	top := 0
	if anchor == AnchorCenter {
		top = (ScaledHeight - CropHeight) / 2
	}
	crop := image.Rect(0, top, ScaledWidth, top+CropHeight)

	out := image.NewRGBA(image.Rect(0, 0, ScaledWidth, CropHeight))
	draw.Draw(out, out.Bounds(), scaled, crop.Min, draw.Src)
	return out
}

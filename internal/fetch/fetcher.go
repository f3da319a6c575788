// Package fetch downloads enrollment images referenced by URL. Each
// download is staged through a temporary file in the configured storage
// directory and removed on every exit path, success or failure.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// maxImageSize caps downloaded enrollment images at 10MB.
const maxImageSize = 10 * 1024 * 1024

type Fetcher struct {
	httpClient *http.Client
	dir        string
}

// New creates a Fetcher staging files under dir. The directory is created
// if missing.
func New(dir string, timeout time.Duration) (*Fetcher, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		dir:        dir,
	}, nil
}

// Fetch downloads the image at rawURL and returns its bytes. Only https
// URLs are accepted; anything else is a validation failure, not a fetch
// attempt.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(f.dir, "face-*.img")
	if err != nil {
		return nil, domain.ErrInternal.WithError(fmt.Errorf("create temp file: %w", err))
	}
	path := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(path)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.ErrImageFetchFailed.WithError(err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrImageFetchFailed.WithError(fmt.Errorf("download timed out: %w", err))
		}
		return nil, domain.ErrImageFetchFailed.WithError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrImageFetchFailed.WithError(
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL))
	}

	n, err := io.Copy(tmp, io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, domain.ErrImageFetchFailed.WithError(err)
	}
	if n > maxImageSize {
		return nil, domain.ErrInvalidImage.WithError(fmt.Errorf("image exceeds %d bytes", maxImageSize))
	}
	if n == 0 {
		return nil, domain.ErrInvalidImage.WithError(errors.New("empty image body"))
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}
	data, err := io.ReadAll(tmp)
	if err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	return data, nil
}

// Dir returns the staging directory.
func (f *Fetcher) Dir() string {
	return filepath.Clean(f.dir)
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ErrValidationFailed.WithError(fmt.Errorf("invalid face_image_url: %w", err))
	}
	if u.Scheme != "https" {
		return domain.ErrValidationFailed.WithError(
			fmt.Errorf("face_image_url must use https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return domain.ErrValidationFailed.WithError(errors.New("face_image_url has no host"))
	}
	return nil
}

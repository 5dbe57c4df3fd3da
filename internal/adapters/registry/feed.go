package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/zerr"
)

// indexResponse is the flat-container version listing of one package.
type indexResponse struct {
	Versions []string `json:"versions"`
}

// statusError is returned for unexpected HTTP status codes.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.code)
}

// retryable reports whether a request failing with err may succeed when repeated.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}
	return true
}

func isFileFeed(base string) bool {
	return strings.HasPrefix(strings.ToLower(base), "file://")
}

// fetchVersions reads {base}/{id}/index.json.
func (c *Client) fetchVersions(ctx context.Context, repo domain.Repository, id string) ([]string, error) {
	rc, err := c.open(ctx, repo, id, "index.json")
	if err != nil {
		return nil, zerr.With(err, "module", id)
	}
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}

	var resp indexResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "module", id)
	}

	return resp.Versions, nil
}

// open returns the feed resource at base/segments.
// A missing resource is ErrModuleNotFound.
func (c *Client) open(ctx context.Context, repo domain.Repository, segments ...string) (io.ReadCloser, error) {
	u, err := url.Parse(repo.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrUnsupportedRepository.Error()), "repository", repo.Name)
	}

	switch u.Scheme {
	case "file":
		return openFile(filepath.Join(append([]string{filepath.FromSlash(u.Path)}, segments...)...))
	case "http", "https":
		return c.get(ctx, u.JoinPath(segments...).String())
	default:
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedRepository, "repository", repo.Name), "url", repo.URL)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	//nolint:gosec // Path is built from the configured feed and validated names
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrModuleNotFound, "path", path)
		}
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	return f, nil
}

// get performs a GET request, retrying transport errors and server failures.
func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	c.mu.RLock()
	retries, backoff := c.retries, c.backoff
	c.mu.RUnlock()

	var body io.ReadCloser
	err := withRetry(ctx, retries+1, backoff, func(attempt int) (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
		if err != nil {
			return false, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			return true, err
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			_ = resp.Body.Close()
			return false, domain.ErrModuleNotFound
		case resp.StatusCode != http.StatusOK:
			_ = resp.Body.Close()
			serr := &statusError{code: resp.StatusCode}
			if retryable(serr) && attempt < retries {
				c.logger.Warn(fmt.Sprintf("request to %s failed with status %d, retrying", rawURL, resp.StatusCode))
			}
			return retryable(serr), serr
		}

		body = resp.Body
		return false, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrModuleNotFound) || errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return nil, zerr.With(err, "url", rawURL)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "url", rawURL)
	}
	return body, nil
}

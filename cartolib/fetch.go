package cartolib

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru"
	"github.com/juju/errors"
	"github.com/spf13/afero"
)

const fetcherCacheSize = 16

// Fetcher opens source locations: local files or http(s) URLs. Remote
// locations are downloaded with retries and exponential backoff.
// Downloaded bodies are kept in LRU cache so the same URL configured
// for several sources is fetched once.
type Fetcher struct {
	fs          afero.Fs
	client      HTTPClient
	cache       *lru.Cache
	retries     uint64
	maxInterval time.Duration
}

// Open returns a content of the location.
func (f *Fetcher) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !isURL(location) {
		file, err := f.fs.Open(location)
		if err != nil {
			return nil, errors.Annotatef(err, "cannot open %s", location)
		}

		return file, nil
	}

	if cached, ok := f.cache.Get(location); ok {
		return io.NopCloser(bytes.NewReader(cached.([]byte))), nil
	}

	var body []byte

	policy := backoff.NewExponentialBackOff()

	if f.maxInterval > 0 {
		policy.MaxInterval = f.maxInterval

		if policy.InitialInterval > f.maxInterval {
			policy.InitialInterval = f.maxInterval
		}
	}

	err := backoff.Retry(func() error {
		data, err := f.download(ctx, location)
		if err != nil {
			var statusErr *HTTPStatusError

			if errors.As(err, &statusErr) && !statusErr.Temporary() {
				return backoff.Permanent(err)
			}

			return err
		}

		body = data

		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, f.retries), ctx))
	if err != nil {
		return nil, errors.Annotatef(err, "cannot download %s", location)
	}

	f.cache.Add(location, body)

	return io.NopCloser(bytes.NewReader(body)), nil
}

func (f *Fetcher) download(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Annotate(err, "cannot build a request"))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "cannot read a response")
	}

	return data, nil
}

func isURL(location string) bool {
	lowered := strings.ToLower(location)

	return strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://")
}

// NewFetcher returns a new fetcher. retries is a number of additional
// attempts for remote locations.
func NewFetcher(fs afero.Fs, client HTTPClient, retries uint, maxInterval time.Duration) *Fetcher {
	cache, _ := lru.New(fetcherCacheSize)

	return &Fetcher{
		fs:          fs,
		client:      client,
		cache:       cache,
		retries:     uint64(retries),
		maxInterval: maxInterval,
	}
}

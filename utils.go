package main

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/config"
	"github.com/9seconds/cartographer/providers"
	"github.com/juju/errors"
	"github.com/spf13/afero"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeSources(conf *config.Config) ([]cartolib.PipelineSource, error) {
	rv := make([]cartolib.PipelineSource, 0, len(conf.Sources))

	for _, v := range conf.Sources {
		source, err := providers.New(v.Kind)
		if err != nil {
			return nil, errors.Annotatef(err, "cannot create source %s", v.GetName())
		}

		rv = append(rv, cartolib.PipelineSource{
			Name:     v.GetName(),
			Source:   source,
			Location: v.Location,
			Family:   v.GetFamily(),
		})
	}

	return rv, nil
}

func makeFetcher(fs afero.Fs, conf config.HTTP) *cartolib.Fetcher {
	return cartolib.NewFetcher(fs,
		makeHTTPClient(conf),
		conf.GetRetries(),
		conf.GetRetryMaxInterval())
}

func makeHTTPClient(conf config.HTTP) cartolib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: conf.GetTimeout(),
		Jar:     jar,
	}

	userAgent := conf.GetUserAgent()
	if conf.UserAgent == "" {
		userAgent += "/" + version
	}

	return cartolib.NewHTTPClient(httpClient,
		userAgent,
		conf.GetRateLimitInterval(),
		conf.GetRateLimitBurst())
}

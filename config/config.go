package config

import (
	"io"
	"time"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/providers"
	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

const (
	DefaultWorkerPoolSize    = 4
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultRateLimitInterval = 100 * time.Millisecond
	DefaultRateLimitBurst    = 10
	DefaultRetries           = 3
	DefaultRetryMaxInterval  = 10 * time.Second
	DefaultUserAgent         = "cartographer"
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

// HTTP is a section of parameters for remote sources.
type HTTP struct {
	Timeout           duration `toml:"timeout"`
	RateLimitInterval duration `toml:"rate_limit_interval"`
	RateLimitBurst    uint     `toml:"rate_limit_burst"`
	Retries           *uint    `toml:"retries"`
	RetryMaxInterval  duration `toml:"retry_max_interval"`
	UserAgent         string   `toml:"user_agent"`
}

func (h HTTP) GetTimeout() time.Duration {
	if h.Timeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return h.Timeout.Duration
}

func (h HTTP) GetRateLimitInterval() time.Duration {
	if h.RateLimitInterval.Duration == 0 {
		return DefaultRateLimitInterval
	}

	return h.RateLimitInterval.Duration
}

func (h HTTP) GetRateLimitBurst() int {
	if h.RateLimitBurst == 0 {
		return DefaultRateLimitBurst
	}

	return int(h.RateLimitBurst)
}

// GetRetries returns a number of retries. Explicit 0 disables retries.
func (h HTTP) GetRetries() uint {
	if h.Retries == nil {
		return DefaultRetries
	}

	return *h.Retries
}

func (h HTTP) GetRetryMaxInterval() time.Duration {
	if h.RetryMaxInterval.Duration == 0 {
		return DefaultRetryMaxInterval
	}

	return h.RetryMaxInterval.Duration
}

func (h HTTP) GetUserAgent() string {
	if h.UserAgent == "" {
		return DefaultUserAgent
	}

	return h.UserAgent
}

// Source is a single [[sources]] table.
type Source struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`
	Location string `toml:"location"`
	Family   string `toml:"family"`
}

// GetName returns a name of the source. It is a kind if name is not
// set.
func (s Source) GetName() string {
	if s.Name != "" {
		return s.Name
	}

	return s.Kind
}

func (s Source) GetFamily() cartolib.Family {
	family, _ := cartolib.ParseFamily(s.Family)

	return family
}

// Config is a configuration of the build command.
type Config struct {
	Dataset        string   `toml:"dataset"`
	Output         string   `toml:"output"`
	MMDB           string   `toml:"mmdb"`
	WorkerPoolSize uint     `toml:"worker_pool_size"`
	Reserved       []string `toml:"reserved"`
	HTTP           HTTP     `toml:"http"`
	Sources        []Source `toml:"sources"`
}

// GetOutput returns a path to write consolidated dataset to. Dataset
// is rewritten in place if output is not set.
func (c *Config) GetOutput() string {
	if c.Output != "" {
		return c.Output
	}

	return c.Dataset
}

func (c *Config) GetWorkerPoolSize() int {
	if c.WorkerPoolSize == 0 {
		return DefaultWorkerPoolSize
	}

	return int(c.WorkerPoolSize)
}

// Parse reads and validates a TOML configuration.
func Parse(r io.Reader) (*Config, error) {
	conf := &Config{}

	meta, err := toml.NewDecoder(r).Decode(conf)
	if err != nil {
		return nil, errors.Annotate(err, "cannot parse config file")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.NotValidf("unknown key %s", undecoded[0])
	}

	if err := validate(conf); err != nil {
		return nil, errors.Annotate(err, "invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.Dataset == "" {
		return errors.NotValidf("empty dataset path")
	}

	if len(conf.Sources) == 0 {
		return errors.NotValidf("empty list of sources")
	}

	if _, err := cartolib.NewReservedSet(conf.Reserved...); err != nil {
		return errors.Annotate(err, "incorrect reserved ranges")
	}

	seenNames := map[string]bool{}

	for idx, v := range conf.Sources {
		switch {
		case !providers.IsKnown(v.Kind):
			return errors.NotValidf("kind %q of source %d", v.Kind, idx)
		case v.Location == "":
			return errors.NotValidf("empty location of source %s", v.GetName())
		case seenNames[v.GetName()]:
			return errors.Errorf("source name %s is duplicated", v.GetName())
		}

		if _, err := cartolib.ParseFamily(v.Family); err != nil {
			return errors.Annotatef(err, "incorrect family of source %s", v.GetName())
		}

		seenNames[v.GetName()] = true
	}

	return nil
}

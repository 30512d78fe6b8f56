package config

import (
	"strings"
	"testing"
	"time"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/assert"
)

func TestConfigOk(t *testing.T) {
	text := `dataset = "/var/lib/cartographer/dataset.json"
		output = "/var/lib/cartographer/consolidated.json"
		mmdb = "/var/lib/cartographer/geo.mmdb"
		worker_pool_size = 2
		reserved = ["100.100.0.0/16"]

		[http]
		timeout = "1m"
		rate_limit_interval = "1s"
		rate_limit_burst = 3
		retries = 0
		user_agent = "geo-bot/1.0"

		[[sources]]
		kind = "aws"
		location = "https://ip-ranges.amazonaws.com/ip-ranges.json"
		family = "ipv4"

		[[sources]]
		name = "office"
		kind = "geofeed"
		location = "/etc/cartographer/office.csv"`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, "/var/lib/cartographer/consolidated.json", conf.GetOutput())
	assert.Equal(t, "/var/lib/cartographer/geo.mmdb", conf.MMDB)
	assert.Equal(t, 2, conf.GetWorkerPoolSize())
	assert.Equal(t, []string{"100.100.0.0/16"}, conf.Reserved)

	assert.Equal(t, time.Minute, conf.HTTP.GetTimeout())
	assert.Equal(t, time.Second, conf.HTTP.GetRateLimitInterval())
	assert.Equal(t, 3, conf.HTTP.GetRateLimitBurst())
	assert.EqualValues(t, 0, conf.HTTP.GetRetries())
	assert.Equal(t, "geo-bot/1.0", conf.HTTP.GetUserAgent())

	assert.Len(t, conf.Sources, 2)
	assert.Equal(t, "aws", conf.Sources[0].GetName())
	assert.Equal(t, cartolib.FamilyIPv4, conf.Sources[0].GetFamily())
	assert.Equal(t, "office", conf.Sources[1].GetName())
	assert.Equal(t, cartolib.FamilyAll, conf.Sources[1].GetFamily())
}

func TestConfigDefaults(t *testing.T) {
	text := `dataset = "dataset.json"

		[[sources]]
		kind = "hetrix"
		location = "hetrix.txt"`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, "dataset.json", conf.GetOutput())
	assert.Empty(t, conf.MMDB)
	assert.Equal(t, DefaultWorkerPoolSize, conf.GetWorkerPoolSize())
	assert.Equal(t, DefaultHTTPTimeout, conf.HTTP.GetTimeout())
	assert.Equal(t, DefaultRateLimitInterval, conf.HTTP.GetRateLimitInterval())
	assert.Equal(t, DefaultRateLimitBurst, conf.HTTP.GetRateLimitBurst())
	assert.EqualValues(t, DefaultRetries, conf.HTTP.GetRetries())
	assert.Equal(t, DefaultRetryMaxInterval, conf.HTTP.GetRetryMaxInterval())
	assert.Equal(t, DefaultUserAgent, conf.HTTP.GetUserAgent())
}

func TestIncorrectConfigs(t *testing.T) {
	testData := map[string]string{
		"syntax":       `dataset = `,
		"no-dataset":   "[[sources]]\nkind = \"aws\"\nlocation = \"aws.json\"",
		"no-sources":   `dataset = "dataset.json"`,
		"unknown-kind": "dataset = \"d.json\"\n[[sources]]\nkind = \"maxmind\"\nlocation = \"m.csv\"",
		"no-location":  "dataset = \"d.json\"\n[[sources]]\nkind = \"aws\"",
		"family":       "dataset = \"d.json\"\n[[sources]]\nkind = \"aws\"\nlocation = \"a.json\"\nfamily = \"ipx\"",
		"duplicate":    "dataset = \"d.json\"\n[[sources]]\nkind = \"aws\"\nlocation = \"a.json\"\n[[sources]]\nkind = \"aws\"\nlocation = \"b.json\"",
		"reserved":     "dataset = \"d.json\"\nreserved = [\"10.0.0.0/99\"]\n[[sources]]\nkind = \"aws\"\nlocation = \"a.json\"",
		"duration":     "dataset = \"d.json\"\n[http]\ntimeout = \"soon\"\n[[sources]]\nkind = \"aws\"\nlocation = \"a.json\"",
		"unknown-key":  "dataset = \"d.json\"\nprecision = \"city\"\n[[sources]]\nkind = \"aws\"\nlocation = \"a.json\"",
	}

	for name, text := range testData {
		text := text

		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(text))
			assert.NotNil(t, err)
		})
	}
}

package providers

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

type pingdomFeed struct {
	Items []struct {
		IP      string `xml:"http://www.pingdom.com/ns/PingdomRSSNamespace ip"`
		IPv6    string `xml:"http://www.pingdom.com/ns/PingdomRSSNamespace ipv6"`
		City    string `xml:"http://www.pingdom.com/ns/PingdomRSSNamespace city"`
		Country struct {
			Code string `xml:"code,attr"`
		} `xml:"http://www.pingdom.com/ns/PingdomRSSNamespace country"`
	} `xml:"channel>item"`
}

// pingdomProvider reads RSS feed of Pingdom probe servers
// https://my.pingdom.com/probes/feed. Each probe has IPv4 and IPv6
// addresses, both are emitted as host prefixes.
type pingdomProvider struct{}

func (p pingdomProvider) Name() string {
	return NamePingdom
}

func (p pingdomProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	feed := pingdomFeed{}

	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, errors.Annotate(err, "cannot parse pingdom feed")
	}

	entries := []cartolib.Entry{}

	for _, item := range feed.Items {
		record := cartolib.Record{
			CountryCode: normalizeCountry(item.Country.Code),
			City:        strings.TrimSpace(item.City),
		}

		found := false

		for _, address := range []string{item.IP, item.IPv6} {
			if entry, ok := hostEntry(address, record); ok {
				entries = append(entries, entry)
				found = true
			}
		}

		if !found {
			logger.SourceSkipped(NamePingdom, record.City, "probe has no addresses")
		}
	}

	if isDone(ctx) {
		return nil, cartolib.ErrContextIsClosed
	}

	return entries, nil
}

func NewPingdom() cartolib.Source {
	return pingdomProvider{}
}

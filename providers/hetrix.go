package providers

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

var (
	hetrixLineRegexp = regexp.MustCompile(`^(\S+)\s+(\S+)`)
	hetrixNodeRegexp = regexp.MustCompile(`^([a-zA-Z]+[0-9]+)`)
)

// hetrixProvider reads https://hetrixtools.com/resources/uptime-monitor-ips.txt.
// Each line is a hostname and an address of monitoring node.
type hetrixProvider struct{}

func (h hetrixProvider) Name() string {
	return NameHetrix
}

func (h hetrixProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	scanner := bufio.NewScanner(r)
	entries := []cartolib.Entry{}
	reported := map[string]bool{}

	for scanner.Scan() {
		if isDone(ctx) {
			return nil, cartolib.ErrContextIsClosed
		}

		chunks := hetrixLineRegexp.FindStringSubmatch(scanner.Text())
		if chunks == nil {
			continue
		}

		hostname, address := chunks[1], chunks[2]

		node := hetrixNodeRegexp.FindStringSubmatch(hostname)
		if node == nil {
			logger.SourceSkipped(NameHetrix, hostname, "unexpected hostname")

			continue
		}

		name := strings.ToLower(node[1])

		record, ok := hetrixLocations[name]
		if !ok {
			if !reported[name] {
				reported[name] = true
				logger.SourceSkipped(NameHetrix, name, "node is not mapped")
			}

			continue
		}

		if entry, ok := hostEntry(address, record); ok {
			entries = append(entries, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Annotate(err, "cannot read hetrix nodes")
	}

	return entries, nil
}

func NewHetrix() cartolib.Source {
	return hetrixProvider{}
}

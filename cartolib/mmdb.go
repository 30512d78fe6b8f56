package cartolib

import (
	"io"
	"net"
	"net/netip"
	"sort"

	"github.com/juju/errors"
	"github.com/maxmind/mmdbwriter"
	"github.com/maxmind/mmdbwriter/mmdbtype"
	"github.com/oschwald/maxminddb-golang"
	"go4.org/netipx"
)

// MMDBDatabaseType is a database type which is written into MMDB
// metadata. Readers like geoip2 accept only known types so it has to
// mimic a City database.
const MMDBDatabaseType = "GeoIP2-City"

type mmdbRecord struct {
	Country struct {
		IsoCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
	Subdivisions []struct {
		IsoCode string `maxminddb:"iso_code"`
	} `maxminddb:"subdivisions"`
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Postal struct {
		Code string `maxminddb:"code"`
	} `maxminddb:"postal"`
	Location struct {
		Latitude  *float64 `maxminddb:"latitude"`
		Longitude *float64 `maxminddb:"longitude"`
	} `maxminddb:"location"`
}

func (m mmdbRecord) Record() Record {
	rv := Record{
		CountryCode: m.Country.IsoCode,
		City:        m.City.Names["en"],
		PostalCode:  m.Postal.Code,
	}

	if len(m.Subdivisions) > 0 {
		rv.Subdivision = m.Subdivisions[0].IsoCode
	}

	if m.Location.Latitude != nil {
		value := Coordinate(*m.Location.Latitude)
		rv.Lat = &value
	}

	if m.Location.Longitude != nil {
		value := Coordinate(*m.Location.Longitude)
		rv.Lng = &value
	}

	return rv
}

// exportedRecord is a record as it goes into MMDB: unresolved country
// code is not a country code.
func exportedRecord(record Record) Record {
	if record.CountryCode == UnresolvedCountryCode {
		record.CountryCode = ""
	}

	return record
}

func toMMDBType(record Record) mmdbtype.Map {
	rv := mmdbtype.Map{}
	location := mmdbtype.Map{}

	if record.CountryCode != "" {
		rv["country"] = mmdbtype.Map{"iso_code": mmdbtype.String(record.CountryCode)}
	}

	if record.Subdivision != "" {
		rv["subdivisions"] = mmdbtype.Slice{
			mmdbtype.Map{"iso_code": mmdbtype.String(record.Subdivision)},
		}
	}

	if record.City != "" {
		rv["city"] = mmdbtype.Map{
			"names": mmdbtype.Map{"en": mmdbtype.String(record.City)},
		}
	}

	if record.PostalCode != "" {
		rv["postal"] = mmdbtype.Map{"code": mmdbtype.String(record.PostalCode)}
	}

	if record.Lat != nil {
		location["latitude"] = mmdbtype.Float64(float64(*record.Lat))
	}

	if record.Lng != nil {
		location["longitude"] = mmdbtype.Float64(float64(*record.Lng))
	}

	if len(location) > 0 {
		rv["location"] = location
	}

	return rv
}

type mmdbEntry struct {
	prefix netip.Prefix
	record Record
}

func sortedMMDBEntries(dataset *Dataset, logger Logger) []mmdbEntry {
	entries := make([]mmdbEntry, 0, dataset.Len())

	for _, v := range dataset.entries {
		prefix, err := ParsePrefix(v.Prefix)
		if err != nil {
			logger.EntryInvalid(v.Prefix, err)

			continue
		}

		entries = append(entries, mmdbEntry{
			prefix: prefix,
			record: exportedRecord(v.Record),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return ComparePrefixes(entries[i].prefix, entries[j].prefix) < 0
	})

	return entries
}

// WriteMMDB writes a dataset as IPv6 MaxMind DB with City-like
// records. Supernets are inserted before subnets so the most specific
// prefix wins on lookup. It returns a dataset of entries which were
// actually written.
func WriteMMDB(w io.Writer, dataset *Dataset, logger Logger) (*Dataset, error) {
	tree, err := mmdbwriter.New(mmdbwriter.Options{
		DatabaseType:            MMDBDatabaseType,
		Description:             map[string]string{"en": "cartographer: consolidated IP range geolocation"},
		IPVersion:               6,
		RecordSize:              28,
		IncludeReservedNetworks: true,
		DisableIPv4Aliasing:     true,
	})
	if err != nil {
		return nil, errors.Annotate(err, "cannot create mmdb tree")
	}

	written := NewDataset()

	for _, v := range sortedMMDBEntries(dataset, logger) {
		if err := tree.Insert(netipx.PrefixIPNet(v.prefix), toMMDBType(v.record)); err != nil {
			logger.EntryInvalid(v.prefix.String(), errors.Annotate(err, "cannot insert into mmdb"))

			continue
		}

		written.append(Entry{Prefix: v.prefix.String(), Record: v.record})
	}

	if _, err := tree.WriteTo(w); err != nil {
		return nil, errors.Annotate(err, "cannot write mmdb")
	}

	return written, nil
}

// VerifyMMDB reopens written database and checks that a network address
// of each prefix resolves to a record of the most specific prefix of
// the dataset which contains it.
func VerifyMMDB(data []byte, dataset *Dataset) error {
	reader, err := maxminddb.FromBytes(data)
	if err != nil {
		return errors.Annotate(err, "cannot open mmdb")
	}

	defer reader.Close()

	if reader.Metadata.DatabaseType != MMDBDatabaseType {
		return errors.Errorf("unexpected database type %s", reader.Metadata.DatabaseType)
	}

	index := newPrefixIndex()
	entries := sortedMMDBEntries(dataset, nopLogger{})

	for _, v := range entries {
		if err := index.Insert(v.prefix, exportedRecord(v.record)); err != nil {
			return errors.Annotate(err, "cannot build verification index")
		}
	}

	for _, v := range entries {
		addr := v.prefix.Addr()
		expected, ok := index.Containing(addr, addr.BitLen())

		if !ok {
			return errors.Errorf("%s is not indexed", v.prefix)
		}

		result := mmdbRecord{}

		_, found, err := reader.LookupNetwork(net.IP(addr.AsSlice()), &result)
		if err != nil {
			return errors.Annotatef(err, "cannot lookup %s", addr)
		}

		actual := result.Record()

		if !found && !expected.record.Empty() {
			return errors.Errorf("%s is not found in mmdb", addr)
		}

		if !actual.Equal(expected.record) {
			return errors.Errorf("%s resolves to %s instead of %s", addr, actual, expected.record)
		}
	}

	return nil
}

type nopLogger struct{}

func (nopLogger) MergeConflict(string, Record, Record)     {}
func (nopLogger) EntryInvalid(string, error)               {}
func (nopLogger) EntryDropped(string, DropReason)          {}
func (nopLogger) EntryOverlaps(string, string, DropReason) {}
func (nopLogger) CountryUnresolved(string, string)         {}
func (nopLogger) SourceSkipped(string, string, string)     {}

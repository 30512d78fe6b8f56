package cartolib

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Coordinate is a latitude or a longitude. Some feeds send them as
// JSON numbers, some as strings so both are accepted on input. It is
// always serialized as a number.
type Coordinate float64

// UnmarshalJSON is to conform json.Unmarshaler interface.
func (c *Coordinate) UnmarshalJSON(b []byte) error {
	var value interface{}

	if err := json.Unmarshal(b, &value); err != nil {
		return errors.Annotate(err, "cannot parse coordinate")
	}

	var parsed float64

	switch v := value.(type) {
	case float64:
		parsed = v
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Annotatef(err, "cannot parse coordinate %q", v)
		}

		parsed = num
	default:
		return errors.NotValidf("coordinate %v", value)
	}

	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return errors.NotValidf("coordinate %v", parsed)
	}

	*c = Coordinate(parsed)

	return nil
}

// ParseCoordinate parses a raw JSON value into optional coordinate.
// null and empty string mean absence.
func ParseCoordinate(raw json.RawMessage) (*Coordinate, error) {
	raw = bytes.TrimSpace(raw)

	switch string(raw) {
	case "", "null", `""`:
		return nil, nil
	}

	value := new(Coordinate)

	if err := value.UnmarshalJSON(raw); err != nil {
		return nil, err
	}

	return value, nil
}

func equalCoordinates(one, another *Coordinate) bool {
	if one == nil || another == nil {
		return one == nil && another == nil
	}

	return *one == *another
}

func copyCoordinate(c *Coordinate) *Coordinate {
	if c == nil {
		return nil
	}

	value := *c

	return &value
}

// Record is a location of some network. All fields are optional, an
// empty string or nil pointer mean that a value is absent.
type Record struct {
	CountryCode string      `json:"country_code,omitempty"`
	Subdivision string      `json:"subdivision_1_iso_code,omitempty"`
	City        string      `json:"city,omitempty"`
	PostalCode  string      `json:"postal_code,omitempty"`
	Lat         *Coordinate `json:"lat,omitempty"`
	Lng         *Coordinate `json:"lng,omitempty"`
}

// UnmarshalJSON is to conform json.Unmarshaler interface. Empty
// strings and nulls are treated as absent fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	raw := struct {
		CountryCode string          `json:"country_code"`
		Subdivision string          `json:"subdivision_1_iso_code"`
		City        string          `json:"city"`
		PostalCode  string          `json:"postal_code"`
		Lat         json.RawMessage `json:"lat"`
		Lng         json.RawMessage `json:"lng"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Annotate(err, "cannot parse record")
	}

	lat, err := ParseCoordinate(raw.Lat)
	if err != nil {
		return errors.Annotate(err, "incorrect lat")
	}

	lng, err := ParseCoordinate(raw.Lng)
	if err != nil {
		return errors.Annotate(err, "incorrect lng")
	}

	*r = Record{
		CountryCode: raw.CountryCode,
		Subdivision: raw.Subdivision,
		City:        raw.City,
		PostalCode:  raw.PostalCode,
		Lat:         lat,
		Lng:         lng,
	}

	return nil
}

// Empty tells if record has no fields set.
func (r Record) Empty() bool {
	return r.CountryCode == "" &&
		r.Subdivision == "" &&
		r.City == "" &&
		r.PostalCode == "" &&
		r.Lat == nil &&
		r.Lng == nil
}

// Equal checks that both records have the same set of fields with the
// same values.
func (r Record) Equal(another Record) bool {
	return r.CountryCode == another.CountryCode &&
		r.Subdivision == another.Subdivision &&
		r.City == another.City &&
		r.PostalCode == another.PostalCode &&
		equalCoordinates(r.Lat, another.Lat) &&
		equalCoordinates(r.Lng, another.Lng)
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	r.Lat = copyCoordinate(r.Lat)
	r.Lng = copyCoordinate(r.Lng)

	return r
}

func (r Record) String() string {
	data, _ := json.Marshal(r)

	return string(data)
}

package cartolib_test

import (
	"errors"
	"testing"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/suite"
)

type MergeTestSuite struct {
	suite.Suite
}

func (suite *MergeTestSuite) TestEqual() {
	record := cartolib.Record{CountryCode: "US", City: "Austin"}

	merged, err := cartolib.Merge(record, record)

	suite.NoError(err)
	suite.True(merged.Equal(record))
}

func (suite *MergeTestSuite) TestUnion() {
	merged, err := cartolib.Merge(cartolib.Record{CountryCode: "US"},
		cartolib.Record{CountryCode: "US", City: "Dallas", Lat: coord(32.7)})

	suite.NoError(err)
	suite.True(merged.Equal(cartolib.Record{
		CountryCode: "US",
		City:        "Dallas",
		Lat:         coord(32.7),
	}))
}

func (suite *MergeTestSuite) TestUnionDisjoint() {
	merged, err := cartolib.Merge(cartolib.Record{PostalCode: "10115"},
		cartolib.Record{Subdivision: "DE-BE"})

	suite.NoError(err)
	suite.Equal("10115", merged.PostalCode)
	suite.Equal("DE-BE", merged.Subdivision)
}

func (suite *MergeTestSuite) TestConflict() {
	existing := cartolib.Record{CountryCode: "US"}
	incoming := cartolib.Record{CountryCode: "CA", City: "Toronto"}

	merged, err := cartolib.Merge(existing, incoming)

	suite.True(merged.Equal(existing))

	conflict := &cartolib.MergeConflictError{}

	suite.True(errors.As(err, &conflict))
	suite.True(conflict.Incoming.Equal(incoming))
	suite.Contains(err.Error(), "conflicting records")
}

func (suite *MergeTestSuite) TestConflictCoordinates() {
	_, err := cartolib.Merge(cartolib.Record{Lat: coord(1)}, cartolib.Record{Lat: coord(2)})

	suite.Error(err)
}

func (suite *MergeTestSuite) TestSymmetricOnCompatible() {
	one := cartolib.Record{CountryCode: "FR", Lng: coord(2.35)}
	another := cartolib.Record{City: "Paris", Lng: coord(2.35)}

	first, err := cartolib.Merge(one, another)
	suite.NoError(err)

	second, err := cartolib.Merge(another, one)
	suite.NoError(err)

	suite.True(first.Equal(second))
}

func TestMerge(t *testing.T) {
	suite.Run(t, &MergeTestSuite{})
}

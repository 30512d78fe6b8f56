package providers_test

import (
	"testing"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/providers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GeofeedTestSuite struct {
	ProviderTestSuite
}

func (suite *GeofeedTestSuite) SetupTest() {
	suite.ProviderTestSuite.SetupTest()

	suite.source = providers.NewGeofeed()
}

func (suite *GeofeedTestSuite) TestCollect() {
	entries, err := suite.collect(`# RFC 8805 geofeed
192.0.2.0/24,us,us-ca,San Francisco,94107
2001:db8::/32,DE,,,
198.51.100.5,GB
`)

	suite.NoError(err)
	suite.Equal([]string{"192.0.2.0/24", "2001:db8::/32", "198.51.100.5"}, suite.prefixes(entries))
	suite.Equal(cartolib.Record{
		CountryCode: "US",
		Subdivision: "US-CA",
		City:        "San Francisco",
		PostalCode:  "94107",
	}, entries[0].Record)
	suite.Equal(cartolib.Record{CountryCode: "DE"}, entries[1].Record)
	suite.Equal(cartolib.Record{CountryCode: "GB"}, entries[2].Record)
}

func (suite *GeofeedTestSuite) TestIncompleteRows() {
	suite.logMock.On("SourceSkipped", providers.NameGeofeed, "192.0.2.0/24", mock.Anything).Once()
	suite.logMock.On("SourceSkipped", providers.NameGeofeed, ",US", mock.Anything).Once()

	entries, err := suite.collect("192.0.2.0/24\n,US\n203.0.113.0/24,AU\n")

	suite.NoError(err)
	suite.Equal([]string{"203.0.113.0/24"}, suite.prefixes(entries))
}

func TestGeofeed(t *testing.T) {
	suite.Run(t, &GeofeedTestSuite{})
}

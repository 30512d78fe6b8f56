package providers_test

import (
	"testing"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/providers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RangesTestSuite struct {
	ProviderTestSuite
}

func (suite *RangesTestSuite) SetupTest() {
	suite.ProviderTestSuite.SetupTest()

	suite.source = providers.NewRanges()
}

func (suite *RangesTestSuite) TestCollect() {
	entries, err := suite.collect(`# start,finish,country,region,city,postal
93.94.95.0,93.94.96.255,ru,RU-NIZ,Nizhniy Novgorod,603000
2001:db8::,2001:db8::ffff,NL
`)

	suite.NoError(err)
	suite.Equal([]string{
		"93.94.95.0/24",
		"93.94.96.0/24",
		"2001:db8::/112",
	}, suite.prefixes(entries))
	suite.Equal(cartolib.Record{
		CountryCode: "RU",
		Subdivision: "RU-NIZ",
		City:        "Nizhniy Novgorod",
		PostalCode:  "603000",
	}, entries[1].Record)
	suite.Equal("NL", entries[2].Record.CountryCode)
}

func (suite *RangesTestSuite) TestIncorrectRows() {
	suite.logMock.On("SourceSkipped", providers.NameRanges, mock.Anything, mock.Anything).Times(3)

	entries, err := suite.collect(`1.0.0.0,1.0.0.255
1.0.0.255,1.0.0.0,AU
1.0.0.0,2001:db8::,AU
1.0.1.0,1.0.1.255,CN
`)

	suite.NoError(err)
	suite.Equal([]string{"1.0.1.0/24"}, suite.prefixes(entries))
}

func TestRanges(t *testing.T) {
	suite.Run(t, &RangesTestSuite{})
}

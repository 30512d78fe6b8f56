package cartolib_test

import (
	"context"
	"strings"
	"testing"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DatasetTestSuite struct {
	suite.Suite

	logMock *LoggerMock
}

func (suite *DatasetTestSuite) SetupTest() {
	suite.logMock = &LoggerMock{}
}

func (suite *DatasetTestSuite) TearDownTest() {
	suite.logMock.AssertExpectations(suite.T())
}

func (suite *DatasetTestSuite) TestAdd() {
	dataset := cartolib.NewDataset()

	result, err := dataset.Add("1.2.3.0/24", cartolib.Record{CountryCode: "US"})
	suite.NoError(err)
	suite.Equal(cartolib.AddResultInserted, result)

	result, err = dataset.Add("1.2.3.0/24", cartolib.Record{City: "Austin"})
	suite.NoError(err)
	suite.Equal(cartolib.AddResultMerged, result)

	result, err = dataset.Add("1.2.3.0/24", cartolib.Record{CountryCode: "US"})
	suite.NoError(err)
	suite.Equal(cartolib.AddResultUnchanged, result)

	result, err = dataset.Add("1.2.3.0/24", cartolib.Record{CountryCode: "CA"})
	suite.Error(err)
	suite.Equal(cartolib.AddResultConflict, result)

	record, ok := dataset.Get("1.2.3.0/24")

	suite.True(ok)
	suite.True(record.Equal(cartolib.Record{CountryCode: "US", City: "Austin"}))
	suite.Equal(1, dataset.Len())
}

func (suite *DatasetTestSuite) TestMarshalKeepsOrder() {
	dataset := cartolib.NewDataset()

	dataset.Add("9.9.9.0/24", cartolib.Record{CountryCode: "US"}) // nolint: errcheck
	dataset.Add("1.1.1.0/24", cartolib.Record{City: "Sydney"})    // nolint: errcheck

	data, err := dataset.MarshalJSON()

	suite.NoError(err)
	suite.Equal(`{"9.9.9.0/24":{"country_code":"US"},"1.1.1.0/24":{"city":"Sydney"}}`, string(data))
}

func (suite *DatasetTestSuite) TestDecodeObject() {
	doc := `{
        "1.2.3.0/24": {"country_code": "US", "lat": "30.1"},
        "1.2.3.0/24": {"city": "Austin"},
        "2001:db8::/32": {"country_code": "DE", "unknown": 1}
    }`

	dataset, err := cartolib.DecodeDataset(context.Background(), strings.NewReader(doc), suite.logMock)

	suite.NoError(err)
	suite.Equal(3, dataset.Len())

	entries := dataset.Entries()

	suite.Equal("1.2.3.0/24", entries[0].Prefix)
	suite.Equal(cartolib.Coordinate(30.1), *entries[0].Record.Lat)
	suite.Equal("Austin", entries[1].Record.City)
	suite.Equal("DE", entries[2].Record.CountryCode)
}

func (suite *DatasetTestSuite) TestDecodeArray() {
	doc := `[
        {"ip_range": "5.6.7.0/24", "country_code": "FR"},
        {"country_code": "FR"},
        {"ip_range": "5.6.8.0/24", "city": "Paris"}
    ]`

	suite.logMock.On("EntryInvalid", mock.Anything, mock.Anything).Once()

	dataset, err := cartolib.DecodeDataset(context.Background(), strings.NewReader(doc), suite.logMock)

	suite.NoError(err)
	suite.Equal(2, dataset.Len())

	record, ok := dataset.Get("5.6.8.0/24")

	suite.True(ok)
	suite.Equal("Paris", record.City)
}

func (suite *DatasetTestSuite) TestDecodeSkipsMalformedRecords() {
	doc := `{
        "1.0.0.0/24": {"country_code": 42},
        "2.0.0.0/24": {"lat": "north"},
        "3.0.0.0/24": "string",
        "4.0.0.0/24": {"country_code": "AU"}
    }`

	suite.logMock.On("EntryInvalid", "1.0.0.0/24", mock.Anything).Once()
	suite.logMock.On("EntryInvalid", "2.0.0.0/24", mock.Anything).Once()
	suite.logMock.On("EntryInvalid", "3.0.0.0/24", mock.Anything).Once()

	dataset, err := cartolib.DecodeDataset(context.Background(), strings.NewReader(doc), suite.logMock)

	suite.NoError(err)
	suite.Equal(1, dataset.Len())
}

func (suite *DatasetTestSuite) TestDecodeEmpty() {
	dataset, err := cartolib.DecodeDataset(context.Background(), strings.NewReader(""), suite.logMock)

	suite.NoError(err)
	suite.Equal(0, dataset.Len())
}

func (suite *DatasetTestSuite) TestDecodeBroken() {
	testData := []string{
		`"string"`,
		`{"1.0.0.0/24": {`,
		`[{"ip_range": "1.0.0.0/24"}`,
	}

	for _, v := range testData {
		_, err := cartolib.DecodeDataset(context.Background(), strings.NewReader(v), suite.logMock)

		suite.Error(err, v)
	}
}

func TestDataset(t *testing.T) {
	suite.Run(t, &DatasetTestSuite{})
}

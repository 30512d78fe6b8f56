package providers_test

import (
	"context"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) MergeConflict(prefix string, existing, incoming cartolib.Record) {
	m.Called(prefix, existing, incoming)
}

func (m *LoggerMock) EntryInvalid(prefix string, err error) {
	m.Called(prefix, err)
}

func (m *LoggerMock) EntryDropped(prefix string, reason cartolib.DropReason) {
	m.Called(prefix, reason)
}

func (m *LoggerMock) EntryOverlaps(prefix, accepted string, reason cartolib.DropReason) {
	m.Called(prefix, accepted, reason)
}

func (m *LoggerMock) CountryUnresolved(prefix, code string) {
	m.Called(prefix, code)
}

func (m *LoggerMock) SourceSkipped(source, item, reason string) {
	m.Called(source, item, reason)
}

type ProviderTestSuite struct {
	suite.Suite

	logMock *LoggerMock
	source  cartolib.Source
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.logMock = &LoggerMock{}
}

func (suite *ProviderTestSuite) TearDownTest() {
	suite.logMock.AssertExpectations(suite.T())
}

func (suite *ProviderTestSuite) collect(data string) ([]cartolib.Entry, error) {
	return suite.source.Collect(context.Background(), strings.NewReader(data), suite.logMock)
}

func (suite *ProviderTestSuite) prefixes(entries []cartolib.Entry) []string {
	rv := make([]string, 0, len(entries))

	for _, v := range entries {
		rv = append(rv, v.Prefix)
	}

	return rv
}

func coord(value float64) *cartolib.Coordinate {
	rv := cartolib.Coordinate(value)

	return &rv
}

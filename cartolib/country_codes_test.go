package cartolib_test

import (
	"testing"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/suite"
)

type CountryCodeTestSuite struct {
	suite.Suite
}

func (suite *CountryCodeTestSuite) TestAlpha3ToAlpha2() {
	code, ok := cartolib.Alpha3ToAlpha2("rus")

	suite.True(ok)
	suite.Equal("RU", code)

	_, ok = cartolib.Alpha3ToAlpha2("XYZ")

	suite.False(ok)

	_, ok = cartolib.Alpha3ToAlpha2("RU")

	suite.False(ok)
}

func (suite *CountryCodeTestSuite) TestNormalizeCountryCode() {
	testData := map[string]string{
		"USA":                          "US",
		"aus":                          "AU",
		"US":                           "US",
		"":                             "",
		"XYZ":                          cartolib.UnresolvedCountryCode,
		cartolib.UnresolvedCountryCode: cartolib.UnresolvedCountryCode,
	}

	for k, v := range testData {
		code, _ := cartolib.NormalizeCountryCode(k)

		suite.Equal(v, code, k)
	}
}

func (suite *CountryCodeTestSuite) TestNormalizeCountryCodeReportsUnresolved() {
	_, ok := cartolib.NormalizeCountryCode("XYZ")
	suite.False(ok)

	_, ok = cartolib.NormalizeCountryCode("DEU")
	suite.True(ok)

	_, ok = cartolib.NormalizeCountryCode(cartolib.UnresolvedCountryCode)
	suite.True(ok)
}

func TestCountryCode(t *testing.T) {
	suite.Run(t, &CountryCodeTestSuite{})
}

package cartolib

import (
	"strings"

	"github.com/pariz/gountries"
)

// UnresolvedCountryCode is a value which is set instead of 3-letter
// country code which is not known.
const UnresolvedCountryCode = "Not found"

var countryCodeQuery = gountries.New()

// Alpha3ToAlpha2 maps 3-letter string of ISO3166 to 2-letter one.
func Alpha3ToAlpha2(alpha3 string) (string, bool) {
	alpha3 = strings.ToUpper(alpha3)

	if len(alpha3) != 3 {
		return "", false
	}

	country, err := countryCodeQuery.FindCountryByAlpha(alpha3)
	if err != nil || country.Alpha2 == "" {
		return "", false
	}

	return strings.ToUpper(country.Alpha2), true
}

// NormalizeCountryCode returns a normalized country code and a flag
// if it was resolved. Only 3-letter codes are touched: they are
// converted to 2-letter ones or to UnresolvedCountryCode.
func NormalizeCountryCode(code string) (string, bool) {
	if len(code) != 3 {
		return code, true
	}

	if alpha2, ok := Alpha3ToAlpha2(code); ok {
		return alpha2, true
	}

	return UnresolvedCountryCode, false
}

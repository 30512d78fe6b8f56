package cartolib_test

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/suite"
)

type StatsTestSuite struct {
	suite.Suite
}

func (suite *StatsTestSuite) TestMarshal() {
	total, _ := new(big.Int).SetString("79228162514264337593543950592", 10)
	stats := cartolib.Stats{
		Accepted:            2,
		TotalIPs:            total,
		IgnoredPrivateCIDRs: 3,
		Elapsed:             time.Second,
	}

	data, err := json.Marshal(stats)

	suite.NoError(err)
	suite.JSONEq(`{
        "accepted": 2,
        "total_ips": "79228162514264337593543950592",
        "overlapped_cidrs": 0,
        "ignored_private_cidrs": 3,
        "duplicated_cidrs": 0,
        "invalid_cidrs": 0,
        "empty_records": 0,
        "unresolved_country_codes": 0,
        "elapsed": "1s"
    }`, string(data))
}

func (suite *StatsTestSuite) TestMarshalNoTotal() {
	data, err := json.Marshal(cartolib.Stats{})

	suite.NoError(err)
	suite.Contains(string(data), `"total_ips":"0"`)
}

func TestStats(t *testing.T) {
	suite.Run(t, &StatsTestSuite{})
}

package cartolib_test

import (
	"context"
	"testing"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite

	fs      afero.Fs
	logMock *LoggerMock
	store   *cartolib.Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.logMock = &LoggerMock{}
	suite.store = cartolib.NewStore(suite.fs, suite.logMock)
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.logMock.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestLoadAbsent() {
	dataset, err := suite.store.Load(context.Background(), "/data/absent.json")

	suite.NoError(err)
	suite.Equal(0, dataset.Len())
}

func (suite *StoreTestSuite) TestSaveLoad() {
	dataset := cartolib.NewDataset()

	dataset.Add("1.2.3.0/24", cartolib.Record{CountryCode: "US", Lat: coord(1.25)}) // nolint: errcheck
	dataset.Add("2001:db8::/32", cartolib.Record{City: "Berlin"})                   // nolint: errcheck

	suite.NoError(suite.store.Save("/data/dataset.json", dataset))

	loaded, err := suite.store.Load(context.Background(), "/data/dataset.json")

	suite.NoError(err)
	suite.Equal(dataset.Entries(), loaded.Entries())

	files, err := afero.ReadDir(suite.fs, "/data")

	suite.NoError(err)
	suite.Len(files, 1)
}

func (suite *StoreTestSuite) TestSaveOverwrites() {
	suite.NoError(afero.WriteFile(suite.fs, "/dataset.json", []byte("garbage"), 0o644))

	dataset := cartolib.NewDataset()
	dataset.Add("1.2.3.0/24", cartolib.Record{CountryCode: "US"}) // nolint: errcheck

	suite.NoError(suite.store.Save("/dataset.json", dataset))

	data, err := afero.ReadFile(suite.fs, "/dataset.json")

	suite.NoError(err)
	suite.JSONEq(`{"1.2.3.0/24": {"country_code": "US"}}`, string(data))
}

func (suite *StoreTestSuite) TestLoadBroken() {
	suite.NoError(afero.WriteFile(suite.fs, "/dataset.json", []byte("{"), 0o644))

	_, err := suite.store.Load(context.Background(), "/dataset.json")

	suite.Error(err)
}

func (suite *StoreTestSuite) TestSaveReadOnly() {
	store := cartolib.NewStore(afero.NewReadOnlyFs(suite.fs), suite.logMock)

	suite.Error(store.Save("/dataset.json", cartolib.NewDataset()))
}

func TestStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{})
}

package cartolib_test

import (
	"context"
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/stretchr/testify/mock"
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

func (m *LoggerMock) AllowAll() {
	m.On("MergeConflict", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("EntryInvalid", mock.Anything, mock.Anything).Maybe()
	m.On("EntryDropped", mock.Anything, mock.Anything).Maybe()
	m.On("EntryOverlaps", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("CountryUnresolved", mock.Anything, mock.Anything).Maybe()
	m.On("SourceSkipped", mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func coord(value float64) *cartolib.Coordinate {
	rv := cartolib.Coordinate(value)

	return &rv
}

type SourceMock struct {
	mock.Mock
}

func (m *SourceMock) Name() string {
	return m.Called().String(0)
}

func (m *SourceMock) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, string(data), logger)

	return args.Get(0).([]cartolib.Entry), args.Error(1)
}

package picker_test

import (
	"testing"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider simulates a calendar backend using `testify/mock`.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Of(year, month, day int) (hijri.Date, error) {
	args := m.Called(year, month, day)
	return args.Get(0).(hijri.Date), args.Error(1)
}

func (m *MockProvider) Now() hijri.Date {
	return m.Called().Get(0).(hijri.Date)
}

func (m *MockProvider) LengthOfMonth(year, month int) (int, error) {
	args := m.Called(year, month)
	return args.Int(0), args.Error(1)
}

func (m *MockProvider) FromEpochDay(day int64) (hijri.Date, error) {
	args := m.Called(day)
	return args.Get(0).(hijri.Date), args.Error(1)
}

// today is 1 Ramadan 1447 for every fixture provider.
var today = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

func newProvider() *hijri.Tabular {
	return hijri.NewTabular(hijri.WithClock(hijri.FixedClock(today)), hijri.WithLocation(time.UTC))
}

func mustDate(t *testing.T, year, month, day int) hijri.Date {
	t.Helper()
	d, err := newProvider().Of(year, month, day)
	require.NoError(t, err)
	return d
}

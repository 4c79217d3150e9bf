//go:build unit

package facility_test

import (
	"strings"
	"testing"
	"time"

	"facility-booking/internal/domain/facility"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC)

func validSpec() facility.Spec {
	return facility.Spec{
		Name:        "Main Hall",
		Location:    "Building A, 1F",
		Description: "Large hall with projector",
		Capacity:    10,
		Active:      true,
	}
}

type testCase struct {
	name   string
	mutate func(*facility.Spec)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			if tc.mutate != nil {
				tc.mutate(&spec)
			}
			f, err := facility.NewFacility(spec, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
		})
	}
}

func TestNewFacility(t *testing.T) {
	t.Run("valid facility", func(t *testing.T) {
		f, err := facility.NewFacility(validSpec(), now)
		require.NoError(t, err)

		opts := cmp.AllowUnexported(facility.OpeningHours{}, facility.TimeOfDay{})
		if diff := cmp.Diff(validSpec(), f.Spec(), opts); diff != "" {
			t.Errorf("Spec mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, f.IsActive())
		assert.Equal(t, now, f.CreatedAt())
		assert.Equal(t, now, f.UpdatedAt())
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "100 characters OK", mutate: func(s *facility.Spec) { s.Name = strings.Repeat("a", 100) }},
			{name: "multibyte counted as characters", mutate: func(s *facility.Spec) { s.Name = strings.Repeat("会", 100) }},
			{name: "101 characters NG", mutate: func(s *facility.Spec) { s.Name = strings.Repeat("a", 101) }, errIs: facility.ErrInvalidName},
			{name: "blank NG", mutate: func(s *facility.Spec) { s.Name = "   " }, errIs: facility.ErrInvalidName},
		})
	})

	t.Run("location", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "200 characters OK", mutate: func(s *facility.Spec) { s.Location = strings.Repeat("b", 200) }},
			{name: "201 characters NG", mutate: func(s *facility.Spec) { s.Location = strings.Repeat("b", 201) }, errIs: facility.ErrInvalidLocation},
			{name: "empty NG", mutate: func(s *facility.Spec) { s.Location = "" }, errIs: facility.ErrInvalidLocation},
		})
	})

	t.Run("capacity", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "1 OK", mutate: func(s *facility.Spec) { s.Capacity = 1 }},
			{name: "0 NG", mutate: func(s *facility.Spec) { s.Capacity = 0 }, errIs: facility.ErrInvalidCapacity},
			{name: "negative NG", mutate: func(s *facility.Spec) { s.Capacity = -3 }, errIs: facility.ErrInvalidCapacity},
		})
	})
}

func TestFacility_Update(t *testing.T) {
	f, err := facility.NewFacility(validSpec(), now)
	require.NoError(t, err)

	spec := f.Spec()
	spec.Capacity = 4
	spec.Active = false
	later := now.Add(time.Hour)
	require.NoError(t, f.Update(spec, later))

	assert.Equal(t, 4, f.Capacity().Int())
	assert.False(t, f.IsActive())
	assert.Equal(t, later, f.UpdatedAt())
	assert.Equal(t, now, f.CreatedAt())

	bad := f.Spec()
	bad.Capacity = 0
	require.ErrorIs(t, f.Update(bad, later.Add(time.Hour)), facility.ErrInvalidCapacity)
	assert.Equal(t, 4, f.Capacity().Int(), "failed update must not modify the facility")
	assert.Equal(t, later, f.UpdatedAt())
}

func TestCapacity_Admits(t *testing.T) {
	c, err := facility.NewCapacity(10)
	require.NoError(t, err)
	assert.True(t, c.Admits(9))
	assert.True(t, c.Admits(10))
	assert.False(t, c.Admits(11))
}

func TestOpeningHours(t *testing.T) {
	opens, err := facility.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	closes, err := facility.ParseTimeOfDay("21:30")
	require.NoError(t, err)

	hours, err := facility.NewOpeningHours(opens, closes)
	require.NoError(t, err)
	assert.Equal(t, "09:00", hours.Opens().String())
	assert.Equal(t, "21:30", hours.Closes().String())

	_, err = facility.NewOpeningHours(closes, opens)
	require.ErrorIs(t, err, facility.ErrInvalidOpeningHours)

	_, err = facility.NewOpeningHours(opens, opens)
	require.ErrorIs(t, err, facility.ErrInvalidOpeningHours)

	for _, bad := range []string{"24:00", "9am", "", "12:60"} {
		_, err := facility.ParseTimeOfDay(bad)
		assert.ErrorIs(t, err, facility.ErrInvalidTimeOfDay, bad)
	}

	_, err = facility.TimeOfDayFromOffset(24 * time.Hour)
	require.ErrorIs(t, err, facility.ErrInvalidTimeOfDay)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		now      time.Time
		want     AssetAge
	}{
		{
			name:     "same day",
			purchase: date(2025, time.March, 10),
			now:      date(2025, time.March, 10),
			want:     AssetAge{},
		},
		{
			name:     "exact years",
			purchase: date(2020, time.June, 15),
			now:      date(2025, time.June, 15),
			want:     AssetAge{Years: 5},
		},
		{
			name:     "day borrow from previous month",
			purchase: date(2024, time.January, 31),
			now:      date(2024, time.March, 1),
			// feb 2024 has 29 days
			want: AssetAge{Years: 0, Months: 1, Days: 1},
		},
		{
			name:     "month borrow from previous year",
			purchase: date(2023, time.November, 10),
			now:      date(2024, time.February, 10),
			want:     AssetAge{Years: 0, Months: 3, Days: 0},
		},
		{
			name:     "one day short of a year",
			purchase: date(2020, time.June, 15),
			now:      date(2021, time.June, 14),
			want:     AssetAge{Years: 0, Months: 11, Days: 30},
		},
		{
			name:     "both borrows at once",
			purchase: date(2020, time.December, 31),
			now:      date(2021, time.January, 1),
			want:     AssetAge{Years: 0, Months: 0, Days: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AgeAt(tc.purchase, tc.now))
		})
	}
}

func TestForcesDisposal(t *testing.T) {
	now := date(2025, time.June, 15)

	tests := []struct {
		name     string
		purchase time.Time
		want     bool
	}{
		{name: "brand new", purchase: date(2025, time.June, 1), want: false},
		{name: "one day short of five years", purchase: date(2020, time.June, 16), want: false},
		{name: "exactly five years", purchase: date(2020, time.June, 15), want: true},
		{name: "well past five years", purchase: date(2018, time.January, 1), want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ForcesDisposal(tc.purchase, now))
		})
	}
}

func TestAssetAgeString(t *testing.T) {
	age := AssetAge{Years: 2, Months: 3, Days: 4}
	assert.Equal(t, "2y 3m 4d", age.String())
}

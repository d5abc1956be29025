package progression

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-07")
	assert.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 7), d)

	_, err = ParseDate("07.03.2026")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	d := NewDate(2026, time.January, 31)
	assert.Equal(t, NewDate(2026, time.February, 1), d.AddDays(1))
	assert.Equal(t, NewDate(2026, time.January, 1), d.AddDays(-30))

	// 2026 is not a leap year
	assert.Equal(t, NewDate(2026, time.March, 1), NewDate(2026, time.February, 28).AddDays(1))
}

func TestDaysSince(t *testing.T) {
	start := NewDate(2026, time.January, 1)
	assert.Equal(t, 0, start.DaysSince(start))
	assert.Equal(t, 9, NewDate(2026, time.January, 10).DaysSince(start))
	assert.Equal(t, 364, NewDate(2026, time.December, 31).DaysSince(start))
	assert.Equal(t, -1, NewDate(2025, time.December, 31).DaysSince(start))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.July, 4)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-07-04"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &parsed))
}

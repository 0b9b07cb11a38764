package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatetimeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "calendar date",
			input: `"1985-05-15"`,
			want:  time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339",
			input: `"2024-03-20T14:30:00Z"`,
			want:  time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339 with offset",
			input: `"2024-03-20T14:30:00+02:00"`,
			want:  time.Date(2024, 3, 20, 12, 30, 0, 0, time.UTC),
		},
		{
			name:  "no timezone",
			input: `"2024-03-20T14:30:00"`,
			want:  time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Datetime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %v, want %v", d.Time, tt.want)
		})
	}
}

func TestDatetimeUnmarshalJSONInvalid(t *testing.T) {
	var d Datetime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDatetimeTimePtr(t *testing.T) {
	var d *Datetime
	assert.Nil(t, d.TimePtr())

	d = &Datetime{Time: time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC)}
	ptr := d.TimePtr()
	require.NotNil(t, ptr)
	assert.Equal(t, d.Time, *ptr)
}

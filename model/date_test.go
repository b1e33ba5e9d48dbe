package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: `"1990-05-01"`, want: NewDate(1990, time.May, 1)},
		{name: "rfc3339 timestamp", input: `"1990-05-01T00:00:00Z"`, want: NewDate(1990, time.May, 1)},
		{name: "null", input: `null`, want: Date{}},
		{name: "not a date", input: `"ayer"`, wantErr: true},
		{name: "number", input: `19900501`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %s", d)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, time.March, 4, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2023-03-04", d.String())

	require.NoError(t, d.Scan([]byte("2021-12-31")))
	assert.Equal(t, "2021-12-31", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2020, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestUserPatch_Columns(t *testing.T) {
	name := "Ana"
	phone := "0999999999"
	patch := UserPatch{FirstName: &name, Phone: &phone}

	cols := patch.Columns()
	assert.Equal(t, map[string]interface{}{
		"NOMBRE_USUARIO":   "Ana",
		"Telefono_Usuario": "0999999999",
	}, cols)

	assert.Empty(t, UserPatch{}.Columns())
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string  `json:"foodName" validate:"required,max=255"`
	Session string  `json:"session" validate:"required,session"`
	Date    string  `json:"date" validate:"required,date"`
	Mass    float64 `json:"mass" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		input  sample
		fields []string
	}{
		{
			name:  "valid",
			input: sample{Name: "Táo", Session: "Snack", Date: "2025-01-01", Mass: 182},
		},
		{
			name:   "unknown session",
			input:  sample{Name: "Táo", Session: "Brunch", Date: "2025-01-01"},
			fields: []string{"session"},
		},
		{
			name:   "bad date and negative mass",
			input:  sample{Name: "Táo", Session: "Snack", Date: "2025-13-01", Mass: -1},
			fields: []string{"date", "mass"},
		},
		{
			name:   "missing name",
			input:  sample{Session: "Morning", Date: "2025-01-01"},
			fields: []string{"foodName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.fields) == 0 {
				require.NoError(t, err)

				return
			}

			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)

			got := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				got = append(got, fe.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{
		{Field: "Mass", Rule: "gte", Param: "0"},
		{Field: "Date", Rule: "date"},
	}

	assert.Equal(t, "Mass failed gte=0; Date failed date", err.Error())
}

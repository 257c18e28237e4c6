package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required"`
	Time     string   `json:"time" validate:"omitempty,hhmm"`
	Category string   `json:"category" validate:"omitempty,category"`
	Date     string   `json:"date" validate:"omitempty,isodate"`
	Times    []string `json:"times" validate:"dive,hhmm"`
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{
		Name:     "ok",
		Time:     "07:30",
		Category: "Gratidão",
		Date:     "2024-02-29",
		Times:    []string{"06:00", "21:45"},
	}))

	err := v.Validate(&sample{
		Time:     "7h",
		Category: "yoga",
		Date:     "2023-02-29",
		Times:    []string{"06:00", "24:10"},
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "hhmm", fields["time"])
	assert.Equal(t, "category", fields["category"])
	assert.Equal(t, "isodate", fields["date"])
	assert.Equal(t, "hhmm", fields["times[1]"])
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

package models_test

import (
	"testing"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"12.50", 1250},
		{"0.005", 1},
		{"1", 100},
		{"0.004", 0},
		{"90000000000000000", 9000000000000000000},
	}
	for _, tc := range cases {
		got, err := models.ToCents(tc.amount)
		require.NoError(t, err, tc.amount)
		assert.Equal(t, tc.want, got, tc.amount)
	}
}

func TestToCents_OutOfRange(t *testing.T) {
	for _, amount := range []string{"1e17", "1e300", "1e400", "-1e300"} {
		got, err := models.ToCents(amount)
		assert.ErrorIs(t, err, models.ErrAmountTooLarge, amount)
		assert.Zero(t, got)
	}

	_, err := models.ToCents("NaN")
	assert.Error(t, err)
	_, err = models.ToCents("abc")
	assert.Error(t, err)
}

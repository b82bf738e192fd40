package api

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDate("2024-01-15T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), *got)

	got, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDate("15.01.2024")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

package quality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dataopscli/pkg/contracts/domain"
)

func TestCheckTimestamps(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fully parsed", func(t *testing.T) {
		col := domain.NewTimeColumn("timestamp", []time.Time{t0, t0.Add(time.Hour)})
		result := CheckTimestamps(col)
		assert.True(t, result.IsDatetime)
		assert.True(t, result.Parsed())
		assert.Zero(t, result.NullCount)
		assert.Equal(t, domain.KindDatetime, result.Kind)
	})

	t.Run("empty and unparseable cells are null", func(t *testing.T) {
		col := domain.NewTimeColumn("timestamp", []time.Time{t0, {}, {}, t0})
		col.Unparsed = 1
		result := CheckTimestamps(col)
		assert.Equal(t, 2, result.NullCount)
		assert.Equal(t, 1, result.Unparsed)
		assert.False(t, result.Parsed())
	})

	t.Run("non datetime column", func(t *testing.T) {
		col := domain.NewStringColumn("timestamp", []string{"yesterday"})
		result := CheckTimestamps(col)
		assert.False(t, result.IsDatetime)
		assert.False(t, result.Parsed())
		assert.Equal(t, domain.KindString, result.Kind)
	})
}

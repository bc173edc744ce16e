package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardParser_NextSchedule(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 10, 0, 30, 0, time.UTC)

	tests := []struct {
		spec string
		want time.Time
	}{
		{spec: "0 */1 * * * *", want: time.Date(2026, 1, 1, 10, 1, 0, 0, time.UTC)},
		{spec: "*/10 * * * * *", want: time.Date(2026, 1, 1, 10, 0, 40, 0, time.UTC)},
		{spec: "@hourly", want: time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			schedule, err := StandardParser().Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, schedule.Next(base))
		})
	}
}

func TestStandardParser_RejectsFiveFields(t *testing.T) {
	t.Parallel()

	_, err := StandardParser().Parse("*/5 * * * *")
	assert.Error(t, err)
}

package zxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZXID_EpochAndCounter(t *testing.T) {
	tests := []struct {
		name    string
		epoch   int32
		counter int32
	}{
		{
			name: "zero",
		},
		{
			name:    "first proposal of first epoch",
			epoch:   1,
			counter: 1,
		},
		{
			name:    "large values",
			epoch:   1 << 20,
			counter: 1<<31 - 1,
		},
		{
			name:    "negative counter does not leak into the epoch",
			epoch:   3,
			counter: -1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			z := NewZXID(test.epoch, test.counter)
			assert.Equal(t, test.epoch, z.GetEpoch())
			assert.Equal(t, test.counter, z.GetCounter())
		})
	}
}

func TestZXID_Ordering(t *testing.T) {
	z := NewZXID(1, 41)
	next := z.Next()
	assert.Equal(t, int32(42), next.GetCounter())
	assert.Greater(t, next, z)

	epoch := next.NextEpoch()
	assert.Equal(t, int32(2), epoch.GetEpoch())
	assert.Equal(t, int32(0), epoch.GetCounter())
	assert.Greater(t, epoch, next)
}

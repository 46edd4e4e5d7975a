package frequencycounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeOfEmptyCounter(t *testing.T) {
	counter := NewFrequencyCounter[string](Ascending[string])
	_, ok := counter.Mode()
	assert.False(t, ok)
	assert.True(t, counter.IsEmpty())
}

func TestModeReturnsMostFrequentValue(t *testing.T) {
	counter := NewFrequencyCounter[int](Ascending[int])
	for _, hour := range []int{8, 17, 17, 9, 17, 8} {
		counter.UpdateCounter(hour)
	}

	mode, ok := counter.Mode()
	require.True(t, ok)
	assert.Equal(t, ValueCount[int]{Value: 17, Count: 3}, mode)
}

func TestModeTieReturnsSmallestValue(t *testing.T) {
	counter := NewFrequencyCounter[string](Ascending[string])
	for _, station := range []string{"Wood St", "Clark St", "Wood St", "Clark St"} {
		counter.UpdateCounter(station)
	}

	mode, ok := counter.Mode()
	require.True(t, ok)
	assert.Equal(t, "Clark St", mode.Value)
	assert.Equal(t, 2, mode.Count)
}

func TestValueCountsOrder(t *testing.T) {
	counter := NewFrequencyCounter[string](Ascending[string])
	for _, userType := range []string{"Subscriber", "Dependent", "Customer", "Subscriber", "Customer", "Subscriber"} {
		counter.UpdateCounter(userType)
	}

	assert.Equal(t, []ValueCount[string]{
		{Value: "Subscriber", Count: 3},
		{Value: "Customer", Count: 2},
		{Value: "Dependent", Count: 1},
	}, counter.ValueCounts())
}

package frequencycounter

import (
	"sort"
)

// FrequencyCounter counts how many times each value appears
// + counters: map with the following structure: {value: amount of appearances}
// + order: values in the order they were first seen
// + less: order used to break ties between values with the same amount of appearances
type FrequencyCounter[K comparable] struct {
	counters map[K]int
	order    []K
	less     func(a K, b K) bool
}

// ValueCount is a value with the amount of times it appeared
type ValueCount[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

func NewFrequencyCounter[K comparable](less func(a K, b K) bool) *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counters: make(map[K]int),
		less:     less,
	}
}

func (fc *FrequencyCounter[K]) UpdateCounter(value K) {
	if _, ok := fc.counters[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counters[value] += 1
}

func (fc *FrequencyCounter[K]) IsEmpty() bool {
	return len(fc.order) == 0
}

// Mode returns the most frequent value. If two values have the same amount of appearances
// the smaller one according to less is returned. The boolean is false if nothing was counted.
func (fc *FrequencyCounter[K]) Mode() (ValueCount[K], bool) {
	var mode ValueCount[K]
	if fc.IsEmpty() {
		return mode, false
	}

	for idx, value := range fc.order {
		counter := fc.counters[value]
		if idx == 0 || counter > mode.Count || (counter == mode.Count && fc.less(value, mode.Value)) {
			mode = ValueCount[K]{Value: value, Count: counter}
		}
	}
	return mode, true
}

// ValueCounts returns every value with its amount of appearances, most frequent first.
// Ties are ordered with less.
func (fc *FrequencyCounter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(fc.order))
	for _, value := range fc.order {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: fc.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		if valueCounts[i].Count != valueCounts[j].Count {
			return valueCounts[i].Count > valueCounts[j].Count
		}
		return fc.less(valueCounts[i].Value, valueCounts[j].Value)
	})
	return valueCounts
}

// Ascending is the natural order of strings and numbers
func Ascending[K ~int | ~string](a K, b K) bool {
	return a < b
}

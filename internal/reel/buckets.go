package reel

import "github.com/yola1107/reelforge/internal/model"

// buckets is the sequencer's working set for one attempt: special
// stacks in stable enumeration order, plus high/low stacks bucketed
// by length so a length can be popped in O(1).
type buckets struct {
	special []model.Stack
	high    map[int][]model.Stack
	low     map[int][]model.Stack
}

func newBuckets(h model.Histogram, classes *model.SymbolClasses) *buckets {
	b := &buckets{
		high: make(map[int][]model.Stack),
		low:  make(map[int][]model.Stack),
	}
	for _, st := range h.Stacks() {
		switch classes.ClassOf(st.Symbol) {
		case model.ClassSpecial:
			b.special = append(b.special, st)
		case model.ClassHigh:
			b.high[st.Length] = append(b.high[st.Length], st)
		default:
			b.low[st.Length] = append(b.low[st.Length], st)
		}
	}
	return b
}

// popRandomHigh pops a uniformly random stack of the given length
// from the high bucket, pop-swapping with the last element.
func (b *buckets) popRandomHigh(length int, idx int) model.Stack {
	return popAt(b.high, length, idx)
}

func (b *buckets) popRandomLow(length int, idx int) model.Stack {
	return popAt(b.low, length, idx)
}

func popAt(bucket map[int][]model.Stack, length, idx int) model.Stack {
	list := bucket[length]
	st := list[idx]
	last := len(list) - 1
	list[idx] = list[last]
	bucket[length] = list[:last]
	return st
}

func (b *buckets) highCount(length int) int { return len(b.high[length]) }
func (b *buckets) lowCount(length int) int  { return len(b.low[length]) }

// flattenByLength flattens a length->stacks bucket into one slice,
// ordered by ascending length then insertion order, matching the
// suffix builder's flattening contract.
func flattenByLength(bucket map[int][]model.Stack) []model.Stack {
	var lengths []int
	for l := range bucket {
		lengths = append(lengths, l)
	}
	for i := 1; i < len(lengths); i++ {
		for j := i; j > 0 && lengths[j-1] > lengths[j]; j-- {
			lengths[j-1], lengths[j] = lengths[j], lengths[j-1]
		}
	}
	var out []model.Stack
	for _, l := range lengths {
		out = append(out, bucket[l]...)
	}
	return out
}

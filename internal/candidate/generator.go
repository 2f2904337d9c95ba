// Package candidate enumerates the variable-index tuples tried at a given
// layer, per spec.md §4.3: lexicographic L-subsets for Combi, one-feature
// extensions for Multi, and unordered pairs for Mia/Ria. Generation order is
// the tie-break authority used throughout the engine (spec.md §4.3, §5).
package candidate

// CombiSubsets enumerates every L-subset of {0,...,F-1} in lexicographic
// order.
func CombiSubsets(f, l int) [][]int {
	if l <= 0 || l > f {
		return nil
	}
	var out [][]int
	combo := make([]int, l)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == l {
			tuple := make([]int, l)
			copy(tuple, combo)
			out = append(out, tuple)
			return
		}
		for v := start; v < f; v++ {
			combo[depth] = v
			rec(v+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// MultiExtensions extends each survivor tuple (ordered by ascending error,
// as produced by the previous layer) with one not-yet-used original feature
// index, in ascending index order. Parent carries the index, in survivors,
// of the tuple being extended, so callers can trace provenance.
type Extension struct {
	Tuple  []int
	Parent int
}

func MultiExtensions(survivors [][]int, f int) []Extension {
	var out []Extension
	for parent, tuple := range survivors {
		used := make(map[int]bool, len(tuple))
		for _, idx := range tuple {
			used[idx] = true
		}
		for v := 0; v < f; v++ {
			if used[v] {
				continue
			}
			next := make([]int, len(tuple)+1)
			copy(next, tuple)
			next[len(tuple)] = v
			out = append(out, Extension{Tuple: next, Parent: parent})
		}
	}
	return out
}

// Pair is an unordered variable-pool index pair (i < j).
type Pair struct {
	I, J int
}

// MiaPairs enumerates unordered pairs (i,j), i<j, over a pool of poolSize
// variables (layer-1 originals, or layer L>1 survivor outputs), in
// lexicographic order.
func MiaPairs(poolSize int) []Pair {
	var out []Pair
	for i := 0; i < poolSize; i++ {
		for j := i + 1; j < poolSize; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}

// RiaPairsLayer1 enumerates all unordered pairs of the original F features,
// identical to MiaPairs(f) but named for clarity at the call site.
func RiaPairsLayer1(f int) []Pair {
	return MiaPairs(f)
}

// RiaPairs enumerates, for layer L>1, every cross pair (orig, F+s) where
// orig ranges over the F original feature indices (0..F-1) and s ranges
// over the survivorCount survivor-output indices, offset by F per the
// global index convention (originals occupy 0..F-1, previous-layer outputs
// occupy F..F+survivorCount-1). Pairs are lexicographic over the pool, and
// survivor-survivor / original-original pairs are never emitted at L>1.
func RiaPairs(survivorCount, f int) []Pair {
	var out []Pair
	for orig := 0; orig < f; orig++ {
		for s := 0; s < survivorCount; s++ {
			out = append(out, Pair{I: orig, J: f + s})
		}
	}
	return out
}

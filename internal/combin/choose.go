// Package combin implements exact combinatorics: n_choose_r and the
// parallel combination enumerator used to generate board runouts, grounded
// on original_source's src/analysis/math.rs and src/analysis/search_space.rs.
package combin

// Choose computes C(n, r), the number of r-subsets of an n-set, memoized
// over the single call's recursion the way original_source's
// n_choose_r_memoized does. n and r are small in this engine (n <= 52), so
// a per-call map is cheap and avoids a global cache invalidation story.
func Choose(n, r int) int {
	memo := make(map[[2]int]int)
	return choose(n, r, memo)
}

func choose(n, r int, memo map[[2]int]int) int {
	if n < r {
		return 0
	}
	if r == 0 {
		return 1
	}
	if r == 1 {
		return n
	}
	key := [2]int{n, r}
	if v, ok := memo[key]; ok {
		return v
	}
	v := choose(n-1, r, memo) + choose(n-1, r-1, memo)
	memo[key] = v
	return v
}

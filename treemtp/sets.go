package treemtp

import "sort"

func union(sets ...map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for _, s := range sets {
		for k := range s {
			out[k] = true
		}
	}
	return out
}

func singleton(id int) map[int]bool { return map[int]bool{id: true} }

func sortedSlice(s map[int]bool) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func pathSet(path []int) map[int]bool {
	out := make(map[int]bool, len(path))
	for _, v := range path {
		out[v] = true
	}
	return out
}

package core

import "sort"

// Blocks expands a barrier set into the member-node blocks it induces:
// every node's block owner is itself (if it is a barrier) or its nearest
// barrier ancestor. Blocks are returned sorted by their barrier's ID, and
// each block's members are sorted ascending.
//
// Complexity: O(V log V).
func Blocks(g *ServiceGraph, barriers []int) [][]int {
	barr := make(map[int]bool, len(barriers))
	for _, b := range barriers {
		barr[b] = true
	}

	owner := make(map[int]int)
	groups := make(map[int][]int)

	root := g.Root()
	owner[root] = root
	groups[root] = append(groups[root], root)

	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.Successors(n) {
			if barr[c] {
				owner[c] = c
			} else {
				owner[c] = owner[n]
			}
			groups[owner[c]] = append(groups[owner[c]], c)
			stack = append(stack, c)
		}
	}

	blocks := make([][]int, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)
		blocks = append(blocks, members)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })
	return blocks
}

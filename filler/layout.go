package filler

import (
	"fmt"

	"github.com/sprintertech/signet-orders/orders"
)

// OrderLayout orders signed orders so that every order is settled after the
// orders it depends on, keeping the input order otherwise.
//
// B depends on A when A pays B's owner, on the rollup, a token B spends as
// input. Such dependencies are mandatory and a cycle fails with
// ErrDependencyCycle. When A's inputs, released to the filler, can fund a
// rollup output of B, A is placed first unless that contradicts a mandatory
// dependency or an earlier placement.
func OrderLayout(signed []*orders.SignedOrder, system orders.SystemConstants) ([]*orders.SignedOrder, error) {
	n := len(signed)
	edges := make([]map[int]bool, n)
	for i := range edges {
		edges[i] = make(map[int]bool)
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a != b && fundsOwner(signed[a], signed[b], system) {
				edges[a][b] = true
			}
		}
	}
	if hasCycle(edges) {
		return nil, fmt.Errorf("%w: between %d orders", orders.ErrDependencyCycle, n)
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b || edges[a][b] || !fundsFiller(signed[a], signed[b], system) {
				continue
			}
			if reachable(edges, b, a) {
				continue
			}
			edges[a][b] = true
		}
	}

	return topological(signed, edges), nil
}

// fundsOwner reports whether a rollup output of a pays the owner of b a token
// b spends.
func fundsOwner(a *orders.SignedOrder, b *orders.SignedOrder, system orders.SystemConstants) bool {
	for _, out := range a.Outputs {
		if !system.IsRollup(uint64(out.ChainID)) || out.Recipient != b.Permit.Owner {
			continue
		}
		for _, in := range b.Permit.Permit.Permitted {
			if in.Token == out.Token {
				return true
			}
		}
	}
	return false
}

// fundsFiller reports whether an input of a can pay a rollup output of b.
func fundsFiller(a *orders.SignedOrder, b *orders.SignedOrder, system orders.SystemConstants) bool {
	for _, in := range a.Permit.Permit.Permitted {
		for _, out := range b.Outputs {
			if system.IsRollup(uint64(out.ChainID)) && out.Token == in.Token {
				return true
			}
		}
	}
	return false
}

func hasCycle(edges []map[int]bool) bool {
	for node := range edges {
		for next := range edges[node] {
			if reachable(edges, next, node) {
				return true
			}
		}
	}
	return false
}

func reachable(edges []map[int]bool, from int, to int) bool {
	visited := make([]bool, len(edges))
	stack := []int{from}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == to {
			return true
		}
		if visited[node] {
			continue
		}
		visited[node] = true
		for next := range edges[node] {
			stack = append(stack, next)
		}
	}
	return false
}

// topological is Kahn's algorithm always picking the lowest ready index.
func topological(signed []*orders.SignedOrder, edges []map[int]bool) []*orders.SignedOrder {
	inDegree := make([]int, len(signed))
	for _, targets := range edges {
		for target := range targets {
			inDegree[target]++
		}
	}

	placed := make([]bool, len(signed))
	layout := make([]*orders.SignedOrder, 0, len(signed))
	for len(layout) < len(signed) {
		for i := range signed {
			if placed[i] || inDegree[i] != 0 {
				continue
			}

			placed[i] = true
			layout = append(layout, signed[i])
			for target := range edges[i] {
				inDegree[target]--
			}
			break
		}
	}
	return layout
}

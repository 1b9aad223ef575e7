// Package grouping partitions related items into bundles and prices each
// bundle with a single rounding step.
package grouping

import (
	"fmt"
	"sort"
	"strings"
)

// IDSeparator joins member ids into a group id
const IDSeparator = "|"

// Related is anything that names itself and the items it is related to
type Related interface {
	ItemID() string
	RelatedIDs() []string
}

// Mode selects how related items are collected into groups
type Mode string

const (
	// Transitive groups every item reachable through related ids, in either
	// direction. Membership is symmetric and transitively closed.
	Transitive Mode = "transitive"

	// OneHop groups a seed with the unprocessed batch items its own related
	// list names. Relations reachable only through a third item are not
	// followed, and seeds are taken in input order, so the partition can
	// change when the input is reordered.
	OneHop Mode = "one-hop"
)

// ParseMode parses a mode name; the empty string selects Transitive
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Transitive:
		return Transitive, nil
	case OneHop, "onehop", "one_hop":
		return OneHop, nil
	default:
		return "", fmt.Errorf("unknown grouping mode %q (use %s or %s)", s, Transitive, OneHop)
	}
}

// Group is a set of items priced together
type Group[T Related] struct {
	ID      string
	Members []T
}

// MemberIDs returns member ids in input order
func (g *Group[T]) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ItemID()
	}
	return ids
}

// IsSingleton reports whether the group has one member
func (g *Group[T]) IsSingleton() bool {
	return len(g.Members) == 1
}

// Groups is a partition of a batch of items.
// Groups are kept in the order of their first member in the input.
//
// Groups are stored by position, so an item id that contains IDSeparator
// cannot displace another group even when the generated ids are equal.
type Groups[T Related] struct {
	groups   []*Group[T]
	byID     map[string]int
	memberOf map[string]int
}

func newGroups[T Related]() *Groups[T] {
	return &Groups[T]{
		byID:     make(map[string]int),
		memberOf: make(map[string]int),
	}
}

func (gs *Groups[T]) add(members []T) {
	g := &Group[T]{ID: GroupID(members), Members: members}
	idx := len(gs.groups)
	gs.groups = append(gs.groups, g)
	if _, taken := gs.byID[g.ID]; !taken {
		gs.byID[g.ID] = idx
	}
	for _, m := range members {
		gs.memberOf[m.ItemID()] = idx
	}
}

// Len returns the number of groups
func (gs *Groups[T]) Len() int {
	return len(gs.groups)
}

// IDs returns group ids in partition order
func (gs *Groups[T]) IDs() []string {
	out := make([]string, len(gs.groups))
	for i, g := range gs.groups {
		out[i] = g.ID
	}
	return out
}

// Get returns a group by id. If two groups share an id, the first wins.
func (gs *Groups[T]) Get(id string) (*Group[T], bool) {
	idx, ok := gs.byID[id]
	if !ok {
		return nil, false
	}
	return gs.groups[idx], true
}

// GroupOf returns the group an item belongs to
func (gs *Groups[T]) GroupOf(itemID string) (*Group[T], bool) {
	idx, ok := gs.memberOf[itemID]
	if !ok {
		return nil, false
	}
	return gs.groups[idx], true
}

// All returns the groups in partition order
func (gs *Groups[T]) All() []*Group[T] {
	out := make([]*Group[T], len(gs.groups))
	copy(out, gs.groups)
	return out
}

// GroupID builds the deterministic id of a group: the item's own id for a
// singleton, otherwise the sorted member ids joined by IDSeparator.
func GroupID[T Related](members []T) string {
	if len(members) == 1 {
		return members[0].ItemID()
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ItemID()
	}
	sort.Strings(ids)
	return strings.Join(ids, IDSeparator)
}

// GroupRelatedItems partitions items into groups.
// Every distinct item id lands in exactly one group; a repeated id keeps
// only its first occurrence.
func GroupRelatedItems[T Related](items []T, mode Mode) *Groups[T] {
	unique := dedupe(items)
	if mode == OneHop {
		return groupOneHop(unique)
	}
	return groupTransitive(unique)
}

// DuplicateIDs returns the id of every occurrence GroupRelatedItems drops,
// in input order. An id repeated three times is listed twice.
func DuplicateIDs[T Related](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	var dups []string
	for _, item := range items {
		if _, ok := seen[item.ItemID()]; ok {
			dups = append(dups, item.ItemID())
			continue
		}
		seen[item.ItemID()] = struct{}{}
	}
	return dups
}

func dedupe[T Related](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemID()]; ok {
			continue
		}
		seen[item.ItemID()] = struct{}{}
		out = append(out, item)
	}
	return out
}

func groupTransitive[T Related](items []T) *Groups[T] {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.ItemID()] = i
	}

	uf := newUnionFind(len(items))
	for i, item := range items {
		for _, rid := range item.RelatedIDs() {
			if j, ok := index[rid]; ok && j != i {
				uf.union(i, j)
			}
		}
	}

	// Collect members per root, keeping input order within and across groups.
	var roots []int
	members := make(map[int][]T)
	for i, item := range items {
		root := uf.find(i)
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], item)
	}

	gs := newGroups[T]()
	for _, root := range roots {
		gs.add(members[root])
	}
	return gs
}

func groupOneHop[T Related](items []T) *Groups[T] {
	processed := make([]bool, len(items))
	gs := newGroups[T]()

	for i, seed := range items {
		if processed[i] {
			continue
		}
		candidates := map[string]struct{}{seed.ItemID(): {}}
		for _, rid := range seed.RelatedIDs() {
			candidates[rid] = struct{}{}
		}

		group := []T{seed}
		processed[i] = true
		for j, other := range items {
			if processed[j] {
				continue
			}
			if _, ok := candidates[other.ItemID()]; ok {
				group = append(group, other)
				processed[j] = true
			}
		}
		gs.add(group)
	}
	return gs
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}

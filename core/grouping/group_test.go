package grouping

import (
	"fmt"
	"reflect"
	"testing"

	"copyshop-pricing/core/types"
)

func line(id string, related ...string) types.LineItem {
	return types.LineItem{
		Quantity: 1,
		Record:   types.PricingRecord{ID: id, RelatedPublicationIDs: related},
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"", Transitive, false},
		{"transitive", Transitive, false},
		{"one-hop", OneHop, false},
		{"OneHop", OneHop, false},
		{"one_hop", OneHop, false},
		{"bfs", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestGroupRelatedItemsIDs(t *testing.T) {
	items := []types.LineItem{
		line("c", "a"),
		line("solo"),
		line("a", "c"),
		line("b", "a"),
	}

	groups := GroupRelatedItems(items, Transitive)
	want := []string{"a|b|c", "solo"}
	if got := groups.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}

	g, ok := groups.Get("a|b|c")
	if !ok {
		t.Fatal("group a|b|c missing")
	}
	if got := g.MemberIDs(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("members keep input order, got %v", got)
	}

	g, ok = groups.GroupOf("solo")
	if !ok || !g.IsSingleton() || g.ID != "solo" {
		t.Errorf("GroupOf(solo) = %+v", g)
	}
	if _, ok := groups.GroupOf("missing"); ok {
		t.Error("GroupOf should not find an unknown id")
	}
}

func TestGroupingModesDiffer(t *testing.T) {
	// a names b, b names c, c names nobody: a chain only closure joins.
	items := []types.LineItem{
		line("a", "b"),
		line("b", "c"),
		line("c"),
	}

	transitive := GroupRelatedItems(items, Transitive)
	if got := transitive.IDs(); !reflect.DeepEqual(got, []string{"a|b|c"}) {
		t.Errorf("transitive IDs = %v", got)
	}

	oneHop := GroupRelatedItems(items, OneHop)
	if got := oneHop.IDs(); !reflect.DeepEqual(got, []string{"a|b", "c"}) {
		t.Errorf("one-hop IDs = %v", got)
	}
}

func TestGroupingIgnoresOutsideIDs(t *testing.T) {
	items := []types.LineItem{
		line("a", "elsewhere", "a"),
		line("b", "elsewhere"),
	}

	for _, mode := range []Mode{Transitive, OneHop} {
		groups := GroupRelatedItems(items, mode)
		if got := groups.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("%s: IDs = %v", mode, got)
		}
	}
}

func TestGroupingDuplicateIDsKeepFirst(t *testing.T) {
	first := line("a", "b")
	first.Quantity = 3
	items := []types.LineItem{first, line("b"), line("a")}

	for _, mode := range []Mode{Transitive, OneHop} {
		groups := GroupRelatedItems(items, mode)
		g, ok := groups.Get("a|b")
		if !ok {
			t.Fatalf("%s: group a|b missing, got %v", mode, groups.IDs())
		}
		if len(g.Members) != 2 || g.Members[0].Quantity != 3 {
			t.Errorf("%s: members = %+v", mode, g.Members)
		}
	}
}

func TestGroupingPartitionCompleteness(t *testing.T) {
	// A deterministic but tangled relation graph.
	var items []types.LineItem
	for i := 0; i < 40; i++ {
		var related []string
		if i%3 == 0 {
			related = append(related, fmt.Sprintf("p%d", (i*7)%40))
		}
		if i%5 == 0 {
			related = append(related, fmt.Sprintf("p%d", (i+11)%40), "external")
		}
		items = append(items, line(fmt.Sprintf("p%d", i), related...))
	}
	items = append(items, line("p4"), line("p17"))

	for _, mode := range []Mode{Transitive, OneHop} {
		groups := GroupRelatedItems(items, mode)

		seen := make(map[string]string)
		for _, g := range groups.All() {
			if len(g.Members) == 0 {
				t.Errorf("%s: empty group %s", mode, g.ID)
			}
			if g.ID != GroupID(g.Members) {
				t.Errorf("%s: group id %s does not match its members", mode, g.ID)
			}
			for _, id := range g.MemberIDs() {
				if other, dup := seen[id]; dup {
					t.Errorf("%s: %s in both %s and %s", mode, id, other, g.ID)
				}
				seen[id] = g.ID
			}
		}
		if len(seen) != 40 {
			t.Errorf("%s: %d ids grouped, want 40", mode, len(seen))
		}
	}
}

func TestGroupingEmptyInput(t *testing.T) {
	groups := GroupRelatedItems[types.LineItem](nil, Transitive)
	if groups.Len() != 0 || len(groups.IDs()) != 0 {
		t.Errorf("expected no groups, got %v", groups.IDs())
	}
}

func TestAreItemsRelated(t *testing.T) {
	tests := []struct {
		name  string
		items []types.LineItem
		want  bool
	}{
		{
			name:  "mutual pair",
			items: []types.LineItem{line("a", "b"), line("b", "a")},
			want:  true,
		},
		{
			name:  "third item names nobody in the set",
			items: []types.LineItem{line("a", "b", "c"), line("b", "a", "c"), line("c", "x")},
			want:  false,
		},
		{
			name:  "chain where everyone names someone",
			items: []types.LineItem{line("a", "b"), line("b", "c"), line("c", "a")},
			want:  true,
		},
		{
			name:  "self reference does not count",
			items: []types.LineItem{line("a", "a"), line("b", "a")},
			want:  false,
		},
		{
			name:  "single item",
			items: []types.LineItem{line("a", "b")},
			want:  false,
		},
		{
			name:  "empty",
			items: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreItemsRelated(tt.items); got != tt.want {
				t.Errorf("AreItemsRelated = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupingSeparatorInItemID(t *testing.T) {
	// The singleton "A|B" has the same generated id as the pair {A, B}.
	items := []types.LineItem{
		line("A", "B"),
		line("B"),
		line("A|B"),
	}

	groups := GroupRelatedItems(items, Transitive)
	if groups.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", groups.Len())
	}

	all := groups.All()
	if got := all[0].MemberIDs(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("first group members = %v", got)
	}
	if got := all[1].MemberIDs(); !reflect.DeepEqual(got, []string{"A|B"}) {
		t.Errorf("second group members = %v", got)
	}

	g, ok := groups.GroupOf("A")
	if !ok || len(g.Members) != 2 {
		t.Errorf("GroupOf(A) = %+v", g)
	}
	g, ok = groups.GroupOf("A|B")
	if !ok || !g.IsSingleton() {
		t.Errorf("GroupOf(A|B) = %+v", g)
	}
	if g, _ := groups.Get("A|B"); len(g.Members) != 2 {
		t.Errorf("Get should return the first group with a shared id, got %v", g.MemberIDs())
	}
}

func TestDuplicateIDs(t *testing.T) {
	items := []types.LineItem{line("a"), line("b"), line("a"), line("a"), line("c"), line("b")}
	if got := DuplicateIDs(items); !reflect.DeepEqual(got, []string{"a", "a", "b"}) {
		t.Errorf("DuplicateIDs = %v", got)
	}
	if got := DuplicateIDs([]types.LineItem{line("a")}); len(got) != 0 {
		t.Errorf("DuplicateIDs = %v", got)
	}
}

func TestGroupingOrderDependence(t *testing.T) {
	forward := []types.LineItem{line("A", "B"), line("B", "C"), line("C")}
	reversed := []types.LineItem{line("C"), line("B", "C"), line("A", "B")}

	// Transitive membership does not depend on input order.
	if got := GroupRelatedItems(reversed, Transitive).IDs(); !reflect.DeepEqual(got, []string{"A|B|C"}) {
		t.Errorf("transitive reversed IDs = %v", got)
	}

	// One-hop seeds in input order, so the partition follows it.
	if got := GroupRelatedItems(forward, OneHop).IDs(); !reflect.DeepEqual(got, []string{"A|B", "C"}) {
		t.Errorf("one-hop forward IDs = %v", got)
	}
	if got := GroupRelatedItems(reversed, OneHop).IDs(); !reflect.DeepEqual(got, []string{"C", "B", "A"}) {
		t.Errorf("one-hop reversed IDs = %v", got)
	}
}

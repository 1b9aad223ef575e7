package determinism

import (
	"reflect"
	"testing"
)

func TestHashJSONIsStable(t *testing.T) {
	type book struct {
		Papers []string `json:"papers"`
		Round  int      `json:"round"`
	}

	a, err := HashJSON(book{Papers: []string{"A4", "A5"}, Round: 5})
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	b, _ := HashJSON(book{Papers: []string{"A4", "A5"}, Round: 5})
	c, _ := HashJSON(book{Papers: []string{"A5", "A4"}, Round: 5})

	if a != b {
		t.Error("equal values hashed differently")
	}
	if a == c {
		t.Error("catalog order should change the hash")
	}
	if len(a.Short()) != 12 || a.String() != a.Short() || len(a.Hex()) != 64 {
		t.Errorf("unexpected encodings: %s %s", a.Short(), a.Hex())
	}
	if a.IsZero() || !(ContentHash{}).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestHashJSONRejectsUnencodable(t *testing.T) {
	if _, err := HashJSON(func() {}); err == nil {
		t.Error("expected an error for a func value")
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	if got := SortedKeys(m); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedKeys = %v", got)
	}
}

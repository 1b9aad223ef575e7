package grouping

// AreItemsRelated reports whether every item in the set lists at least one
// other member of the set among its related ids.
//
// This is stricter than the partitioning rule: one member that names nobody
// else in the set makes the whole set unrelated, even if the others all name
// it. Sets of fewer than two items are never related.
func AreItemsRelated[T Related](items []T) bool {
	if len(items) < 2 {
		return false
	}

	inSet := make(map[string]struct{}, len(items))
	for _, item := range items {
		inSet[item.ItemID()] = struct{}{}
	}
	if len(inSet) < 2 {
		return false
	}

	for _, item := range items {
		if !listsOther(item, inSet) {
			return false
		}
	}
	return true
}

func listsOther(item Related, inSet map[string]struct{}) bool {
	self := item.ItemID()
	for _, rid := range item.RelatedIDs() {
		if rid == self {
			continue
		}
		if _, ok := inSet[rid]; ok {
			return true
		}
	}
	return false
}

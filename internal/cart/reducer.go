package cart

// Reduce applies cart actions. Unrecognized actions return the state
// unchanged, same slice header and all, so observers can cheaply detect
// that nothing happened here.
func Reduce(s State, action any) State {
	switch a := action.(type) {
	case AddItem:
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		if i := s.indexOf(a.Product.ID); i >= 0 {
			items := cloneItems(s.Items)
			items[i].Quantity += qty
			return State{Items: items}
		}
		items := cloneItems(s.Items)
		items = append(items, Item{
			ID:       a.Product.ID,
			Title:    a.Product.Title,
			Price:    a.Product.Price,
			Image:    a.Product.Image,
			Quantity: qty,
		})
		return State{Items: items}

	case RemoveItem:
		i := s.indexOf(a.ProductID)
		if i < 0 {
			return s
		}
		items := make([]Item, 0, len(s.Items)-1)
		items = append(items, s.Items[:i]...)
		items = append(items, s.Items[i+1:]...)
		return State{Items: items}

	case UpdateQuantity:
		i := s.indexOf(a.ProductID)
		if i < 0 {
			return s
		}
		if a.Quantity <= 0 {
			return Reduce(s, RemoveItem{ProductID: a.ProductID})
		}
		items := cloneItems(s.Items)
		items[i].Quantity = a.Quantity
		return State{Items: items}

	case Clear:
		if len(s.Items) == 0 {
			return s
		}
		return State{}
	}
	return s
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

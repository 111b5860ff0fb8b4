package orders

// Reduce applies order actions. Unrecognized actions return the state
// unchanged with the same slice header.
func Reduce(s State, action any) State {
	switch a := action.(type) {
	case Create:
		list := make([]Order, 0, len(s.Orders)+1)
		list = append(list, a.Order)
		list = append(list, s.Orders...)
		return State{Orders: list}

	case UpdateStatus:
		for i := range s.Orders {
			if s.Orders[i].ID != a.OrderID {
				continue
			}
			if !s.Orders[i].Status.CanTransitionTo(a.Status) {
				return s
			}
			list := make([]Order, len(s.Orders))
			copy(list, s.Orders)
			list[i].Status = a.Status
			return State{Orders: list}
		}
		return s

	case Clear:
		if len(s.Orders) == 0 {
			return s
		}
		return State{}
	}
	return s
}

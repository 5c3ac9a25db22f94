package query

// limits backs LimitOffset, Limit and Offset on every stage that offers
// them. A nil pointer leaves that field as it was.
func limits(st *selectState, name string, limit, offset *int) *selectState {
	s := use(st, name)
	s.setLimits(name, limit, offset)
	return s
}

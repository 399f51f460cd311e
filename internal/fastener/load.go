package fastener

// SegregateLoad splits an external load into the share carried by the bolt
// and the share that unloads the clamped members.
func SegregateLoad(c, load float64) (bolt, member float64) {
	return c * load, (1 - c) * load
}

// SegregateLoads applies SegregateLoad elementwise.
func SegregateLoads(c float64, load Series) (bolt, member Series, err error) {
	if len(load) == 0 {
		return nil, nil, opError("segregate loads", ErrEmptySeries)
	}
	bolt = make(Series, len(load))
	member = make(Series, len(load))
	for i, p := range load {
		bolt[i], member[i] = SegregateLoad(c, p)
	}
	return bolt, member, nil
}

package search

// Observer receives every candidate pair a search evaluates, in descending-a
// order. Implementations are diagnostics only and must not influence the
// query.
type Observer interface {
	Candidate(a, p uint64)
}

// CountingObserver tallies evaluated candidates.
type CountingObserver struct {
	Candidates uint64
}

// Candidate implements Observer.
func (o *CountingObserver) Candidate(a, p uint64) {
	o.Candidates++
}

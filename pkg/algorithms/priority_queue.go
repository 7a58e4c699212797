package algorithms

// pqItem is a tentative distance entry. Entries are never updated in place;
// a better distance pushes a new entry and the old one goes stale.
type pqItem struct {
	airportID int
	distance  float64
}

// distanceQueue is a min-heap of pqItem ordered by distance, for use with
// container/heap.
type distanceQueue []pqItem

func (pq distanceQueue) Len() int           { return len(pq) }
func (pq distanceQueue) Less(i, j int) bool { return pq[i].distance < pq[j].distance }
func (pq distanceQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distanceQueue) Push(x any) {
	*pq = append(*pq, x.(pqItem))
}

func (pq *distanceQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

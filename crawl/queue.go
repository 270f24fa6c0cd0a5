// Package crawl — BFS queue with deduplication.
// Maintains a visited set to avoid walking the same directory twice.
package crawl

// Queue is a BFS queue with path deduplication.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a path if it hasn't been seen before.
func (q *Queue) Add(p string) {
	if q.visited[p] {
		return
	}
	q.visited[p] = true
	q.items = append(q.items, p)
}

// HasNext returns true if there are unprocessed paths.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed path and advances the pointer.
func (q *Queue) Next() string {
	p := q.items[q.idx]
	q.idx++
	return p
}

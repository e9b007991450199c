package schedulers

// ReadyQueue is a FIFO of indices into a run's process arena.
type ReadyQueue struct {
	queue []int
}

// Enqueue adds a process to the back of the queue.
func (q *ReadyQueue) Enqueue(i int) {
	q.queue = append(q.queue, i)
}

// Dequeue removes and returns the process at the front of the queue.
// It returns false when the queue is empty.
func (q *ReadyQueue) Dequeue() (int, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	item := q.queue[0]
	q.queue = q.queue[1:]
	return item, true
}

// Len returns the number of queued processes.
func (q *ReadyQueue) Len() int {
	return len(q.queue)
}

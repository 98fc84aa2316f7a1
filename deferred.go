package transit

// taskQueue holds one-shot continuations for the next frame boundary. It is
// double-buffered: tasks pushed while draining land in the other buffer and
// wait for the following drain.
type taskQueue struct {
	tasks []func()
	spare []func()
}

func (q *taskQueue) push(fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, fn)
}

// drain runs every task queued before the call, in FIFO order. Remaining
// tasks are discarded once open reports false.
func (q *taskQueue) drain(open func() bool) {
	if len(q.tasks) == 0 {
		return
	}
	batch := q.tasks
	q.tasks = q.spare[:0]
	for i, fn := range batch {
		batch[i] = nil
		if fn != nil && open() {
			fn()
		}
	}
	q.spare = batch[:0]
}

func (q *taskQueue) clear() {
	for i := range q.tasks {
		q.tasks[i] = nil
	}
	q.tasks = q.tasks[:0]
}

package engine

import "sync"

// Queue is a FIFO of pending commands between the shell's translator and
// the engine. Push may be called from any goroutine (engines can emit
// work while handling events); Consume is called only by the shell loop.
//
// Unlike an event ring, commands must never be dropped or reordered, so
// the queue grows as needed and drains whole on Consume.
type Queue struct {
	mu       sync.Mutex
	commands []Command
}

// NewQueue creates an empty command queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a command in arrival order.
func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	q.commands = append(q.commands, cmd)
	q.mu.Unlock()
}

// Consume removes and returns all pending commands in FIFO order.
// Returns nil when the queue is empty.
func (q *Queue) Consume() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.commands) == 0 {
		return nil
	}
	out := q.commands
	q.commands = nil
	return out
}

// Len reports the number of pending commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}

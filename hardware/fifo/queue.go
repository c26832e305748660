// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.

package fifo

import (
	"fmt"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/logger"
)

// Queue is a circular buffer of byte values with a fixed depth.
type Queue struct {
	env *environment.Environment

	slots []uint8

	// head is the slot of the oldest value. tail is the slot that will be
	// written by the next push
	head  int
	tail  int
	count int
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// depth of less than one is treated as a depth of one.
func NewQueue(env *environment.Environment, depth int) *Queue {
	if depth < 1 {
		depth = 1
	}
	return &Queue{
		env:   env,
		slots: make([]uint8, depth),
	}
}

// Snapshot creates a copy of the Queue in its current state.
func (q *Queue) Snapshot() *Queue {
	n := *q
	n.slots = make([]uint8, len(q.slots))
	copy(n.slots, q.slots)
	return &n
}

// Plumb a new environment into the queue.
func (q *Queue) Plumb(env *environment.Environment) {
	q.env = env
}

func (q *Queue) String() string {
	return fmt.Sprintf("fifo: %d/%d head=%#02x", q.count, len(q.slots), q.Head())
}

// Reset empties the queue. The value at the head is zero after a reset.
func (q *Queue) Reset() {
	for i := range q.slots {
		q.slots[i] = 0
	}
	q.head = 0
	q.tail = 0
	q.count = 0
}

// Depth returns the maximum number of entries in the queue.
func (q *Queue) Depth() int {
	return len(q.slots)
}

// Count returns the number of entries in the queue.
func (q *Queue) Count() int {
	return q.count
}

// NotEmpty returns true if there is at least one entry in the queue.
func (q *Queue) NotEmpty() bool {
	return q.count > 0
}

// Full returns true if the queue cannot accept another entry.
func (q *Queue) Full() bool {
	return q.count == len(q.slots)
}

// Head returns the value that will be returned by the next Pop(). The value is
// zero if the queue is empty.
func (q *Queue) Head() uint8 {
	if q.count == 0 {
		return 0
	}
	return q.slots[q.head]
}

// Push adds a value to the tail of the queue. Returns false if the queue is
// full, in which case the value is dropped.
func (q *Queue) Push(v uint8) bool {
	if q.Full() {
		logger.Logf(q.env, "fifo", "overflow: push of %#02x rejected", v)
		return false
	}
	q.slots[q.tail] = v
	q.tail = (q.tail + 1) % len(q.slots)
	q.count++
	return true
}

// Pop removes and returns the value at the head of the queue. Returns false if
// the queue is empty, in which case the queue is unchanged.
func (q *Queue) Pop() (uint8, bool) {
	if q.count == 0 {
		logger.Log(q.env, "fifo", "underflow: pop from empty queue")
		return 0, false
	}
	v := q.slots[q.head]
	q.slots[q.head] = 0
	q.head = (q.head + 1) % len(q.slots)
	q.count--
	return v, true
}

// Step performs one clock of the queue with optional push and pop. The pop
// sees the queue as it was before the clock edge so a push and a pop on a full
// queue both succeed. A pop of an empty queue does not see a value pushed on
// the same clock.
func (q *Queue) Step(push bool, v uint8, pop bool) (popped uint8, popOk bool, pushOk bool) {
	if pop {
		popped, popOk = q.Pop()
	}
	if push {
		pushOk = q.Push(v)
	}
	return popped, popOk, pushOk
}

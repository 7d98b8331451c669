// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msgqueue provides an unbounded FIFO of window messages with a
// posted quit signal, for drivers whose platform has no message queue
// of its own.
package msgqueue

import "sync"

// Quit is the message posted by Queue.Quit.
type Quit struct{}

// Make initializes a Queue.
func Make() Queue {
	return Queue{mu: new(sync.Mutex)}
}

// Queue is an ordered infinite queue of messages.
type Queue struct {
	mu     *sync.Mutex
	events []interface{}
}

// Send adds an event to the back of the queue. It never blocks.
func (q *Queue) Send(event interface{}) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, event)
}

// Quit posts the quit signal behind every message already queued.
func (q *Queue) Quit() {
	q.Send(Quit{})
}

// Peek removes and returns the message at the front of the queue.
// It reports false if the queue is empty.
func (q *Queue) Peek() (interface{}, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil, false
	}
	event := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return event, true
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.events)
}

// Release discards every queued message.
func (q *Queue) Release() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = nil
}

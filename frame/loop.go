/*
Package frame implements the shared per-frame loop. Clients register tasks
under a key; every call to Tick runs all registered tasks once, in the order
of their registration, synchronously and to completion.

There is just one loop per application. It has no notion of time: whoever
drives the loop (a ticker, a test, a REPL command) decides what a frame is.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package frame

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pipes.frame'
func tracer() tracing.Trace {
	return tracing.Select("pipes.frame")
}

// ErrDuplicateTask is returned when registering a key twice.
var ErrDuplicateTask = errors.New("task already registered")

// Task is called once per frame, with the number of the current frame.
type Task func(frame int)

// Loop is a cooperative scheduler. The zero value is not usable; create loops
// with New.
type Loop struct {
	tasks  *linkedhashmap.Map // key -> Task, insertion ordered
	frames int
}

// New creates a loop without tasks.
func New() *Loop {
	return &Loop{tasks: linkedhashmap.New()}
}

// Add registers a task under key. Tasks added while a frame is running will
// first run with the next frame.
func (l *Loop) Add(key string, task Task) error {
	if task == nil {
		return fmt.Errorf("frame: nil task for %q", key)
	}
	if _, found := l.tasks.Get(key); found {
		return fmt.Errorf("%w: %q", ErrDuplicateTask, key)
	}
	l.tasks.Put(key, task)
	tracer().Debugf("loop: added task %q, %d tasks", key, l.tasks.Size())
	return nil
}

// Remove unregisters the task with key. It returns false if there was no such
// task. A task removed during a frame will not run in that frame any more.
func (l *Loop) Remove(key string) bool {
	if _, found := l.tasks.Get(key); !found {
		return false
	}
	l.tasks.Remove(key)
	tracer().Debugf("loop: removed task %q, %d tasks", key, l.tasks.Size())
	return true
}

// Has is a predicate: is a task registered with key?
func (l *Loop) Has(key string) bool {
	_, found := l.tasks.Get(key)
	return found
}

// Len returns the number of registered tasks.
func (l *Loop) Len() int {
	return l.tasks.Size()
}

// Keys returns the keys of all tasks in registration order.
func (l *Loop) Keys() []string {
	keys := make([]string, 0, l.tasks.Size())
	for _, k := range l.tasks.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Tick runs one frame and returns its number. Frames are counted from 1.
func (l *Loop) Tick() int {
	l.frames++
	for _, k := range l.tasks.Keys() {
		v, found := l.tasks.Get(k)
		if !found { // removed by an earlier task of this frame
			continue
		}
		v.(Task)(l.frames)
	}
	return l.frames
}

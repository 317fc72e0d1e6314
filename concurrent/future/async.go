/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package future

import (
	"sync"
)

// asyncFuture implements Future returned by Async.
type asyncFuture struct {
	mutex sync.Mutex
	done  bool
	value interface{}
	err   error
	waker Waker
}

// Poll implements Future.
func (f *asyncFuture) Poll(waker Waker) (PollResult, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.done {
		if f.err != nil {
			return nil, f.err
		}
		return f.value, nil
	}

	// Only the most recent Waker passed to Poll receives the wakeup.
	if waker != nil {
		f.waker = waker
	}
	return PollResultPending, nil
}

// Async runs fn in a new goroutine and returns a Future that resolves to fn's result. The waker
// most recently given to Poll is woken when fn returns.
func Async(fn func() (interface{}, error)) Future {
	f := &asyncFuture{
		waker: NopWaker,
	}

	go func() {
		value, err := fn()

		f.mutex.Lock()
		f.value = value
		f.err = err
		f.done = true
		waker := f.waker
		f.mutex.Unlock()

		// A Wake error has nowhere to be reported; the next poll observes the result regardless.
		_ = waker.Wake()
	}()

	return f
}

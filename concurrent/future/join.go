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

// join implements the Future returned by Join.
type join struct {
	inputs []Future

	// One slot per input; pending slots hold PollResultPending.
	results []interface{}
}

// Poll implements Future. Each call re-polls only the inputs that are still pending; an input
// error finishes the joined future immediately.
func (f *join) Poll(waker Waker) (PollResult, error) {
	done := true
	for i, input := range f.inputs {
		if f.results[i] != PollResultPending {
			continue
		}

		result, err := input.Poll(waker)
		if err != nil {
			return nil, err
		}

		if result == PollResultPending {
			done = false
		} else {
			f.results[i] = interface{}(result)
		}
	}

	if done {
		return f.results, nil
	}
	return PollResultPending, nil
}

// Join creates a Future which aggregates the values from a collection of Futures into an
// []interface{} in the order the futures are given.
func Join(f ...Future) Future {
	results := make([]interface{}, len(f))
	for i := range results {
		results[i] = PollResultPending
	}

	return &join{
		inputs:  f,
		results: results,
	}
}

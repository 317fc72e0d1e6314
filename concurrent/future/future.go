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

// A Future represents an asynchronous computation: a value that may not have finished computing
// yet. The design follows Rust's Future [0].
//
// Futures are inert; they make progress only when polled. A caller that receives
// PollResultPending should not poll again in a tight loop but wait until the Waker it supplied is
// woken.
//
// [0]: https://doc.rust-lang.org/std/future/index.html
type Future interface {
	// Poll attempts to resolve the future to a final value.
	//
	// It returns (result, nil) when the future finished successfully, (PollResultPending, nil) when
	// the value is not available yet, and (nil, err) when the future finished with an error. Once a
	// future has finished, clients should not poll it again.
	//
	// When the result is PollResultPending, the future stores waker and calls its Wake once it can
	// make progress; the woken task should then poll again. On multiple calls to Poll, only the most
	// recent Waker is scheduled to receive the wakeup.
	//
	// Poll must never block. Work that takes a while belongs on its own goroutine with the result
	// delivered through the future.
	Poll(waker Waker) (PollResult, error)
}

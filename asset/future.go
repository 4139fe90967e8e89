// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import "context"

// Future is the result of an asynchronous operation. The frame loop
// polls it with [Future.Ready] and collects the value once, without
// ever blocking rendering.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs f on a new goroutine and returns its future result.
func Go[T any](f func() (T, error)) *Future[T] {
	fu := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(fu.done)
		fu.val, fu.err = f()
	}()
	return fu
}

// Resolved returns a future that is already complete.
func Resolved[T any](val T, err error) *Future[T] {
	fu := &Future[T]{done: make(chan struct{}), val: val, err: err}
	close(fu.done)
	return fu
}

// Ready reports whether the result is available.
func (fu *Future[T]) Ready() bool {
	select {
	case <-fu.done:
		return true
	default:
		return false
	}
}

// Result returns the value and error. It must only be called
// once [Future.Ready] has returned true.
func (fu *Future[T]) Result() (T, error) {
	return fu.val, fu.err
}

// Wait blocks until the result is available or the context is done.
func (fu *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-fu.done:
		return fu.val, fu.err
	case <-ctx.Done():
		var zv T
		return zv, ctx.Err()
	}
}

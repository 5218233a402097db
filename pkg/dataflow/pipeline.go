package dataflow

import (
	"context"
	"sync"
)

// Stream is a read-only channel of messages.
type Stream <-chan interface{}

// failure carries an unhandled stage error to the sink.
type failure struct {
	err error
}

// From creates a stream from a slice of data.
func From(ctx context.Context, items ...interface{}) Stream {
	out := make(chan interface{}, len(items))
	go func() {
		defer close(out)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case out <- item:
			}
		}
	}()
	return out
}

// Map transforms the stream using the provided function.
// Errors not swallowed by the stage error handler travel downstream and make
// ForEach return them.
func Map(ctx context.Context, input Stream, fn func(interface{}) (interface{}, error), opts ...Option) Stream {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	out := make(chan interface{}, cfg.bufferSize)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-input:
				if !ok {
					return
				}

				// Upstream failures pass through untouched.
				if f, isFailure := msg.(failure); isFailure {
					select {
					case <-ctx.Done():
						return
					case out <- f:
					}
					continue
				}

				res, err := fn(msg)
				if err != nil {
					if cfg.errorHandler != nil && cfg.errorHandler(err) {
						continue
					}
					res = failure{err: err}
				}

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}

	wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go worker()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// ForEach executes an action for every item in the stream.
// It blocks until the stream is exhausted, the context is cancelled or the
// first unhandled error arrives. Callers that stop early should cancel ctx so
// upstream stages exit.
func ForEach(ctx context.Context, input Stream, fn func(interface{}) error, opts ...Option) error {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-input:
			if !ok {
				return nil
			}

			var err error
			if f, isFailure := msg.(failure); isFailure {
				err = f.err
			} else {
				err = fn(msg)
			}

			if err != nil {
				if cfg.errorHandler != nil && cfg.errorHandler(err) {
					continue
				}
				return err
			}
		}
	}
}

// Collect drains the stream into a slice, preserving arrival order.
func Collect(ctx context.Context, input Stream) ([]interface{}, error) {
	var items []interface{}
	err := ForEach(ctx, input, func(msg interface{}) error {
		items = append(items, msg)
		return nil
	})
	return items, err
}

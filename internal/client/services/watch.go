// Package services implements the cache-aside synchronization engine. Every
// query shape follows the same read path: emit Loading, serve the cached
// answer immediately when there is one, then fetch from the authoritative
// source, persist, and emit the fresh result. A remote failure is surfaced
// only when the cache had nothing to show; otherwise it is suppressed and the
// consumer keeps the cached emission.
package services

import (
	"context"
	"strconv"
	"sync"

	"github.com/TheReeds/turisync/internal/logging"
	"github.com/TheReeds/turisync/internal/result"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// engine carries the pieces every entity service shares: structured logging,
// coalescing of identical in-flight remote queries, and a write lock that
// serializes cache persists so the relation-link replace never interleaves.
type engine struct {
	log     logging.Logger
	flight  singleflight.Group
	writeMu sync.Mutex
}

// syncQuery describes one query shape for the cache-aside runner.
type syncQuery[T any] struct {
	// key identifies the query for single-flight coalescing, e.g. "vendors/all".
	key string

	// local reads the cached answer. ok reports whether there is anything to
	// show; an empty result set is nothing to show.
	local func(ctx context.Context) (data T, ok bool, err error)

	// remote fetches from the authoritative source, normalizes and persists
	// the payload, and returns the freshly stored answer.
	remote func(ctx context.Context) (T, error)
}

// watch runs one invocation of the cache-aside read for q and returns the
// channel of Results. The channel is buffered to the maximum sequence length
// and closed after the terminal value, so abandoning the receiver never
// blocks the worker.
//
// The remote fetch and persist run detached from the caller's context:
// navigating away must not abort a half-applied write. Concurrent invocations
// with the same key share one remote round trip; their local reads and
// emissions stay per-caller.
func watch[T any](ctx context.Context, e *engine, q syncQuery[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T], 3)
	bg := context.WithoutCancel(ctx)

	go func() {
		defer close(out)
		log := e.log.With("query", q.key, "invocation", uuid.NewString())

		out <- result.Loading[T]()

		local, ok, err := q.local(bg)
		if err != nil {
			log.Warn(bg, "local read failed", "error", err)
			ok = false
		}
		if ok {
			out <- result.Ok(local)
		}

		v, err, shared := e.flight.Do(q.key, func() (any, error) {
			return q.remote(bg)
		})
		if err != nil {
			if ok {
				// cached data already reached the consumer; swallow.
				log.Warn(bg, "remote fetch failed, serving cached data", "error", err)
				return
			}
			log.Error(bg, "remote fetch failed", "error", err)
			out <- result.Fail[T](err.Error())
			return
		}
		if shared {
			log.Debug(bg, "remote fetch coalesced with concurrent invocation")
		}

		out <- result.Ok(v.(T))
	}()

	return out
}

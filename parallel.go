package bitvec

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec/region"
	"github.com/hupe1980/bitvec/store"
)

// ChunkFunc processes one chunk of a buffer. offset is the index of the
// chunk's first bit within the buffer.
type ChunkFunc[T store.Element] func(ctx context.Context, offset int, chunk region.Handle[T, store.Aliased]) error

// Parallel splits the live bits into chunks of near-equal length and runs fn
// on each concurrently. Chunks are aliased because neighbours may share an
// edge element; bit writes through them never clobber each other.
//
// chunks <= 0 uses one chunk per worker. Concurrency is bounded by the
// buffer's resource controller. The first error cancels ctx for the
// remaining chunks and is returned. The buffer must not be grown or released
// until Parallel returns.
func (b *Buffer[T]) Parallel(ctx context.Context, chunks int, fn ChunkFunc[T]) error {
	n := b.region.Len()
	if n == 0 {
		return nil
	}

	rc := b.opts.controller
	if chunks <= 0 {
		chunks = rc.MaxWorkers()
	}
	chunks = min(chunks, n)

	g, gctx := errgroup.WithContext(ctx)

	rest := region.MarkAliased(b.region)
	offset := 0
	for i := range chunks {
		var chunk region.Handle[T, store.Aliased]
		take := rest.Len() / (chunks - i)
		chunk, rest = rest.SplitAt(take)

		off := offset
		offset += take

		g.Go(func() error {
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()
			return fn(gctx, off, chunk)
		})
	}

	return g.Wait()
}

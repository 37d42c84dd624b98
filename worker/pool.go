package worker

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Pool runs a fixed number of workers for concurrent callers such as HTTP
// handlers. Each checkout gets a worker to itself for one request.
type Pool struct {
	idle   chan *Client
	done   chan struct{}
	cancel context.CancelFunc
	g      *errgroup.Group
}

// StartPool starts size workers sharing r. A shared *sim.Engine is fine;
// it holds no per-run state.
func StartPool(ctx context.Context, size int, r Runner, opts Options) *Pool {
	if size <= 0 {
		size = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	p := &Pool{
		idle:   make(chan *Client, size),
		done:   make(chan struct{}),
		cancel: cancel,
		g:      g,
	}
	for i := 0; i < size; i++ {
		w := New(r, opts)
		g.Go(func() error { return w.Run(gctx) })
		p.idle <- NewClient(w, opts.Metrics)
	}
	go func() {
		<-gctx.Done()
		close(p.done)
	}()
	return p
}

// Do runs req on the next idle worker. If ctx ends while the worker is
// still simulating, the worker stays out of rotation until it has answered
// the abandoned request, so later callers never queue behind it.
func (p *Pool) Do(ctx context.Context, req Request) Response {
	select {
	case <-p.done:
		return failure(req.ID, ErrStopped)
	default:
	}

	var c *Client
	select {
	case c = <-p.idle:
	case <-p.done:
		return failure(req.ID, ErrStopped)
	case <-ctx.Done():
		return failure(req.ID, ctx.Err())
	}

	if err := c.Send(ctx, req); err != nil {
		p.idle <- c
		return failure(req.ID, err)
	}
	resp, err := c.Await(ctx)
	if err != nil {
		if errors.Is(err, ErrStopped) {
			p.idle <- c
		} else {
			go p.reclaim(c)
		}
		return failure(req.ID, err)
	}
	p.idle <- c
	return resp
}

// reclaim waits out the request c abandoned and returns c to the idle set.
// A worker that stops first is retired with the pool.
func (p *Pool) reclaim(c *Client) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-p.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := c.Await(ctx); err != nil {
		return
	}
	p.idle <- c
}

// Close stops every worker and waits for them to exit.
func (p *Pool) Close() error {
	p.cancel()
	if err := p.g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

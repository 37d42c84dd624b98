package worker

import (
	"context"
	"sync"

	"github.com/rustyeddy/survival/metrics"
	"github.com/rustyeddy/survival/sim"
)

// Client is the caller side of a Worker. Only the most recently sent
// request counts: responses for anything older are dropped when they show
// up. A Client serves a single caller.
type Client struct {
	w       *Worker
	metrics *metrics.Metrics

	mu     sync.Mutex
	latest string
}

func NewClient(w *Worker, m *metrics.Metrics) *Client {
	return &Client{w: w, metrics: m}
}

// Send makes req the latest request and hands it to the worker.
func (c *Client) Send(ctx context.Context, req Request) error {
	c.mu.Lock()
	c.latest = req.ID
	c.mu.Unlock()

	return c.w.Submit(ctx, req)
}

func (c *Client) Latest() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

// Accept reports whether resp answers the latest request.
func (c *Client) Accept(resp Response) bool {
	return resp.ID != "" && resp.ID == c.Latest()
}

// Await blocks until the latest request is answered, discarding stale
// responses on the way.
func (c *Client) Await(ctx context.Context) (Response, error) {
	for {
		select {
		case resp := <-c.w.Responses():
			if c.Accept(resp) {
				return resp, nil
			}
			c.metrics.Stale()
		case <-c.w.Done():
			return c.drain()
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}
}

// drain picks up a response that was queued before the worker stopped.
func (c *Client) drain() (Response, error) {
	for {
		select {
		case resp := <-c.w.Responses():
			if c.Accept(resp) {
				return resp, nil
			}
			c.metrics.Stale()
		default:
			return Response{}, ErrStopped
		}
	}
}

// Do sends a request and waits for its answer. The returned Response is
// always tagged with the request id; boundary failures come back as
// ok=false rather than as an error.
func (c *Client) Do(ctx context.Context, req Request) Response {
	if err := c.Send(ctx, req); err != nil {
		return failure(req.ID, err)
	}
	resp, err := c.Await(ctx)
	if err != nil {
		return failure(req.ID, err)
	}
	return resp
}

// Simulate is Do with a freshly tagged request.
func (c *Client) Simulate(ctx context.Context, in sim.Inputs) Response {
	return c.Do(ctx, NewRequest(in))
}

// Package worker runs simulations off the caller's goroutine. Callers talk
// to a Worker only through Request and Response messages; every request is
// answered exactly once, successful or not.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/survival/metrics"
	"github.com/rustyeddy/survival/pkg/id"
	"github.com/rustyeddy/survival/sim"
	"go.uber.org/zap"
)

// ErrStopped is reported for requests that reach a worker which is no
// longer running.
var ErrStopped = errors.New("worker stopped")

// Runner is the simulation a worker executes. *sim.Engine satisfies it.
type Runner interface {
	Run(ctx context.Context, in sim.Inputs) (sim.Result, error)
}

type Request struct {
	ID     string     `json:"id"`
	Inputs sim.Inputs `json:"inputs"`
}

// NewRequest tags in with a fresh correlation id.
func NewRequest(in sim.Inputs) Request {
	return Request{ID: id.New(), Inputs: in}
}

// Response is either {id, ok:true, result} or {id, ok:false, error}.
type Response struct {
	ID     string      `json:"id"`
	OK     bool        `json:"ok"`
	Result *sim.Result `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func failure(reqID string, err error) Response {
	return Response{ID: reqID, OK: false, Error: err.Error()}
}

type Options struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Buffer sizes the request and response queues.
	Buffer int
}

// Worker simulates one request at a time.
type Worker struct {
	runner  Runner
	log     *zap.Logger
	metrics *metrics.Metrics

	reqs  chan Request
	resps chan Response
	done  chan struct{}
}

func New(r Runner, opts Options) *Worker {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 8
	}
	return &Worker{
		runner:  r,
		log:     opts.Logger,
		metrics: opts.Metrics,
		reqs:    make(chan Request, opts.Buffer),
		resps:   make(chan Response, opts.Buffer),
		done:    make(chan struct{}),
	}
}

// Run serves requests until ctx is done. It must be called at most once.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.done)
	w.log.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("worker stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case req := <-w.reqs:
			resp := w.handle(ctx, req)
			select {
			case w.resps <- resp:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Submit queues req. It fails fast once the worker has stopped.
func (w *Worker) Submit(ctx context.Context, req Request) error {
	select {
	case <-w.done:
		return ErrStopped
	default:
	}

	select {
	case w.reqs <- req:
		return nil
	case <-w.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) Responses() <-chan Response { return w.resps }

// Done is closed when Run returns.
func (w *Worker) Done() <-chan struct{} { return w.done }

func (w *Worker) handle(ctx context.Context, req Request) (resp Response) {
	w.metrics.Started()
	defer w.metrics.Finished()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("simulation panicked", zap.String("id", req.ID), zap.Any("panic", r))
			w.metrics.ObserveFailure()
			resp = failure(req.ID, fmt.Errorf("simulation failed: %v", r))
		}
	}()

	res, err := w.runner.Run(ctx, req.Inputs)
	if err != nil {
		w.log.Warn("simulation rejected", zap.String("id", req.ID), zap.Error(err))
		w.metrics.ObserveFailure()
		return failure(req.ID, err)
	}

	w.metrics.ObserveRun(res.Inputs.VolLevel.String(), time.Since(start), res.HorizonTrades, res.DD50Risk)
	return Response{ID: req.ID, OK: true, Result: &res}
}

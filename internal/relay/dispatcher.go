package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"page-assist/internal/domain"
	"page-assist/internal/logger"
	"page-assist/internal/service"
	"page-assist/internal/util"

	"go.uber.org/zap"
)

// ErrAlreadyReplied is returned by Reply.Send after the first response.
var ErrAlreadyReplied = errors.New("relay: response already sent")

// Request is one inbound relay message.
type Request struct {
	ID       string
	ClientID string
	Action   domain.Action
	Data     json.RawMessage
}

// Reply is the completion handle of a request. It accepts exactly one response.
type Reply struct {
	ch   chan domain.Response
	once sync.Once
}

func newReply() *Reply {
	return &Reply{ch: make(chan domain.Response, 1)}
}

// Send delivers resp. Only the first call has an effect; later calls return
// ErrAlreadyReplied.
func (r *Reply) Send(resp domain.Response) error {
	err := ErrAlreadyReplied
	r.once.Do(func() {
		r.ch <- resp
		close(r.ch)
		err = nil
	})
	return err
}

// HandlerFunc answers a request through reply.
type HandlerFunc func(ctx context.Context, req Request, reply *Reply)

// Dispatcher runs each request on its own goroutine and guarantees one response.
type Dispatcher struct {
	handler HandlerFunc
}

// NewDispatcher routes requests to relaySvc, picking the quiz session by client id.
func NewDispatcher(relaySvc service.RelayService, sessions *service.SessionStore) *Dispatcher {
	return NewDispatcherFunc(func(ctx context.Context, req Request, reply *Reply) {
		session := sessions.Get(req.ClientID)
		_ = reply.Send(relaySvc.Handle(ctx, session, req.Action, req.Data))
	})
}

// NewDispatcherFunc wraps an arbitrary handler.
func NewDispatcherFunc(h HandlerFunc) *Dispatcher {
	return &Dispatcher{handler: h}
}

// Dispatch starts req and returns a channel that yields exactly one response
// and is then closed. Panics and handlers that return without replying are
// turned into error responses.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) <-chan domain.Response {
	if req.ID == "" {
		req.ID = util.NewULID()
	}
	reply := newReply()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				logger.Get().Error("Relay handler panicked",
					zap.String("request_id", req.ID),
					zap.String("action", string(req.Action)),
					zap.Any("panic", p))
				_ = reply.Send(domain.Response{Error: fmt.Sprintf("Internal error handling %s", req.Action)})
				return
			}
			if err := reply.Send(domain.Response{Error: fmt.Sprintf("No response for %s", req.Action)}); err == nil {
				logger.Get().Error("Relay handler returned without replying",
					zap.String("request_id", req.ID),
					zap.String("action", string(req.Action)))
			}
		}()

		logger.Get().Debug("Dispatching relay request",
			zap.String("request_id", req.ID),
			zap.String("client_id", req.ClientID),
			zap.String("action", string(req.Action)))
		d.handler(ctx, req, reply)
	}()

	return reply.ch
}

// Do dispatches req and waits for its response.
func (d *Dispatcher) Do(ctx context.Context, req Request) domain.Response {
	return <-d.Dispatch(ctx, req)
}

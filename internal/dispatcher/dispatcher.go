// Package dispatcher runs the counter state machine without a terminal:
// it owns the state, applies messages one at a time and schedules commands.
package dispatcher

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/eventbus"
	"github.com/Rorical/NearCounter/internal/executor"
	"github.com/Rorical/NearCounter/internal/metrics"
	"github.com/Rorical/NearCounter/internal/models"
	"github.com/Rorical/NearCounter/internal/update"
)

// EventDispatcher handles routing messages between commands and the update
// function. Dispatch, Settle and State must be called from one goroutine.
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	executor *executor.Executor
	log      logrus.FieldLogger
	onChange func(models.State)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	state   models.State
	pending int // scheduled commands whose outcome has not been processed
	started bool
}

// Option configures an EventDispatcher.
type Option func(*EventDispatcher)

// OnChange registers a hook called with the new state after every message
// and once after initialization.
func OnChange(fn func(models.State)) Option {
	return func(ed *EventDispatcher) { ed.onChange = fn }
}

func NewEventDispatcher(eventBus *eventbus.EventBus, exec *executor.Executor, log logrus.FieldLogger, opts ...Option) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	ed := &EventDispatcher{
		eventBus: eventBus,
		executor: exec,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		state:    models.NewState(),
	}
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// Start mounts the state machine and schedules the initial fetch.
func (ed *EventDispatcher) Start() {
	if ed.started {
		return
	}
	ed.started = true

	state, cmd := update.Init()
	ed.state = state
	ed.changed()
	ed.schedule(cmd)
}

// Stop waits for in-flight commands and closes the bus.
func (ed *EventDispatcher) Stop() {
	ed.cancel()
	ed.wg.Wait()
	ed.eventBus.Close()
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}

// State returns the current state.
func (ed *EventDispatcher) State() models.State {
	return ed.state
}

// Dispatch enqueues msg behind any messages already waiting. It is never
// refused because of the current state.
func (ed *EventDispatcher) Dispatch(ctx context.Context, msg models.Msg) error {
	return ed.eventBus.Send(ctx, eventbus.Envelope{Msg: msg})
}

// Settle processes messages until the queue is empty and no command is in
// flight, and returns the resulting state.
func (ed *EventDispatcher) Settle(ctx context.Context) (models.State, error) {
	for ed.pending > 0 || ed.eventBus.Len() > 0 {
		env, err := ed.eventBus.Receive(ctx)
		if err != nil {
			return ed.state, err
		}
		ed.process(env)
	}
	return ed.state, nil
}

func (ed *EventDispatcher) process(env eventbus.Envelope) {
	if env.FromCommand() {
		ed.pending--
	}
	if env.Msg == nil {
		return
	}

	update.LogMessage(ed.log, env.Msg)
	metrics.RecordMessage(env.Msg.Name())

	state, cmd := update.Update(ed.state, env.Msg)
	ed.state = state
	ed.changed()
	ed.schedule(cmd)
}

func (ed *EventDispatcher) changed() {
	if ed.onChange != nil {
		ed.onChange(ed.state)
	}
}

func (ed *EventDispatcher) schedule(cmd models.Command) {
	if cmd == models.NoCommand {
		return
	}

	ed.pending++
	ed.wg.Add(1)
	go func() {
		defer ed.wg.Done()
		msg := ed.executor.Run(ed.ctx, cmd)
		if err := ed.eventBus.Send(ed.ctx, eventbus.Envelope{Msg: msg, Command: cmd}); err != nil {
			ed.log.WithError(err).WithField("command", cmd.String()).Warn("Dropped command outcome")
		}
	}()
}

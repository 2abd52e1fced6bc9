// Package executor runs commands against the contract gateway and turns
// each outcome into exactly one message.
package executor

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/gateway"
	"github.com/Rorical/NearCounter/internal/metrics"
	"github.com/Rorical/NearCounter/internal/models"
)

var errUnknownCommand = errors.New("unknown command")

// Executor runs commands. Calls are never retried and never cancelled by
// the executor; ctx only bounds the lifetime of the whole program.
type Executor struct {
	gateway gateway.Gateway
	log     logrus.FieldLogger
	ctx     context.Context
}

func New(ctx context.Context, gw gateway.Gateway, log logrus.FieldLogger) *Executor {
	return &Executor{
		gateway: gw,
		log:     log,
		ctx:     ctx,
	}
}

// Gateway returns the gateway commands run against.
func (e *Executor) Gateway() gateway.Gateway {
	return e.gateway
}

// Run invokes the gateway operation for cmd once and returns the resulting
// message. Sign-in, sign-out and NoCommand return nil.
func (e *Executor) Run(ctx context.Context, cmd models.Command) models.Msg {
	if cmd == models.NoCommand {
		return nil
	}

	log := e.log.WithFields(logrus.Fields{
		"command":    cmd.String(),
		"command_id": uuid.NewString(),
	})
	start := time.Now()

	if cmd.FireAndForget() {
		switch cmd {
		case models.SignIn:
			e.gateway.SignIn()
		case models.SignOut:
			e.gateway.SignOut()
		}
		log.Debug("Wallet call issued")
		return nil
	}

	done := metrics.CommandStarted(cmd.String())
	msg, err := e.call(ctx, cmd)
	done(err)

	log = log.WithField("duration", time.Since(start))
	if err != nil {
		log.WithError(err).Debug("Command failed")
		return models.ContractError{Err: err}
	}
	log.Trace("Command succeeded")
	return msg
}

func (e *Executor) call(ctx context.Context, cmd models.Command) (models.Msg, error) {
	switch cmd {
	case models.FetchCount:
		n, err := e.gateway.Counter(ctx)
		if err != nil {
			return nil, err
		}
		return models.ReceivedCount{Value: n}, nil
	case models.Increment:
		if err := e.gateway.Increment(ctx); err != nil {
			return nil, err
		}
		return models.ContractIncremented{}, nil
	case models.Decrement:
		if err := e.gateway.Decrement(ctx); err != nil {
			return nil, err
		}
		return models.ContractDecremented{}, nil
	case models.Reset:
		if err := e.gateway.Reset(ctx); err != nil {
			return nil, err
		}
		return models.ContractReset{}, nil
	}
	return nil, gateway.Wrap(cmd.String(), errUnknownCommand)
}

// Cmd wraps Run for the bubbletea runtime.
func (e *Executor) Cmd(cmd models.Command) tea.Cmd {
	if cmd == models.NoCommand {
		return nil
	}
	return func() tea.Msg {
		msg := e.Run(e.ctx, cmd)
		if msg == nil {
			return nil
		}
		return msg
	}
}

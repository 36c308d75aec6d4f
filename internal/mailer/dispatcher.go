// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package mailer

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/elisee/account-service/internal/logger"
)

// Dispatcher queues emails for background delivery. Enqueue never blocks:
// when the queue is full the email is dropped and an error is logged, so
// a slow or unreachable SMTP relay cannot stall request handling.
//
// Dispatcher implements workers.Worker; Run starts the drain goroutine.
type Dispatcher struct {
	mailer      Mailer
	queue       chan Email
	sendTimeout time.Duration
	logger      *logger.Logger

	started atomic.Bool
	done    chan struct{}
}

// NewDispatcher creates a dispatcher with a bounded queue of the given size.
func NewDispatcher(m Mailer, queueSize int, sendTimeout time.Duration, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}

	return &Dispatcher{
		mailer:      m,
		queue:       make(chan Email, queueSize),
		sendTimeout: sendTimeout,
		logger:      log,
		done:        make(chan struct{}),
	}
}

// Enqueue hands an email to the background worker. Delivery failures are
// logged, never returned to the caller.
func (d *Dispatcher) Enqueue(email Email) {
	select {
	case d.queue <- email:
	default:
		d.logger.Error().
			Str("to", email.To).
			Str("subject", email.Subject).
			Msg("mail queue full, dropping email")
	}
}

// Run starts the background drain loop. The loop exits when Close is called
// and the queue has been emptied. Subsequent calls are no-ops.
func (d *Dispatcher) Run() {
	if d.started.CompareAndSwap(false, true) {
		go d.drain()
	}
}

// Close stops accepting new emails and, if the drain loop is running,
// blocks until every queued email has been handed to the mailer.
func (d *Dispatcher) Close() {
	close(d.queue)
	if d.started.Load() {
		<-d.done
	}
}

func (d *Dispatcher) drain() {
	defer close(d.done)

	for email := range d.queue {
		d.send(email)
	}
}

func (d *Dispatcher) send(email Email) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	if err := d.mailer.Send(ctx, email); err != nil {
		d.logger.Error().Err(err).
			Str("to", email.To).
			Str("subject", email.Subject).
			Msg("error delivering email")
		return
	}

	d.logger.Debug().
		Str("to", email.To).
		Str("subject", email.Subject).
		Msg("email delivered")
}

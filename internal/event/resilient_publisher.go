package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/logger"
)

// retryEntry tracks an event awaiting retry along with its attempt count
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
	nextTry  time.Time
}

// ResilientPublisher wraps an event Bus with asynchronous retry and a
// dead-letter file for events that exhaust their retries. Callers never
// block on downstream failures; analytics must not slow down gameplay.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry
// worker. Call Shutdown to drain the queue and release the dead-letter file.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts a synchronous publish and, on failure, hands the
// event to the retry worker. It never returns an error; failed events end up
// in the dead-letter file once retries are exhausted.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	p.enqueue(retryEntry{
		event:    event,
		attempts: 1,
		lastErr:  err,
		nextTry:  time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
	})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker, draining pending entries to the
// dead-letter file, then closes the file. Honors the context deadline.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	close(p.shutdown)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	return p.deadLetter.Close()
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		// Queue full; drop straight to dead-letter rather than block gameplay
		log := logger.FromContext(context.Background())
		log.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", err)
		}
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	for {
		select {
		case entry := <-p.retryQueue:
			p.processEntry(ctx, log, entry)
		case <-p.shutdown:
			p.drainQueue(log)
			return
		}
	}
}

func (p *ResilientPublisher) processEntry(ctx context.Context, log *slog.Logger, entry retryEntry) {
	if wait := time.Until(entry.nextTry); wait > 0 {
		select {
		case <-time.After(wait):
		case <-p.shutdown:
			if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
				log.Error(LogMsgDeadLetterWriteFailedS, "error", err)
			}
			return
		}
	}

	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
		return
	}

	if entry.attempts >= p.maxRetries {
		log.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
		if werr := p.deadLetter.Write(entry.event, entry.attempts, err); werr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", werr)
		}
		return
	}

	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	p.enqueue(retryEntry{
		event:    entry.event,
		attempts: entry.attempts + 1,
		lastErr:  err,
		nextTry:  time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts+1)),
	})
}

// drainQueue writes everything still queued to the dead-letter file so no
// event is silently lost on shutdown.
func (p *ResilientPublisher) drainQueue(log *slog.Logger) {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
				log.Error(LogMsgDeadLetterWriteFailedS, "error", err)
			}
			drained++
		default:
			if drained > 0 {
				log.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

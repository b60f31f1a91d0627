// Package poller drives the homework status loop: fetch the statuses since
// the last window, check the response, report the latest submission and
// sleep for a fixed period.
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/jqs7/hwbot/pkg/api"
	"github.com/jqs7/hwbot/pkg/homework"
	"github.com/jqs7/hwbot/pkg/logger"
	"github.com/jqs7/hwbot/pkg/model"
	"github.com/jqs7/hwbot/pkg/notifier"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

type Severity int

const (
	Recoverable Severity = iota
	Fatal
)

// Classify decides whether the loop may continue after err.
// Only a broken response shape is fatal: it will not fix itself on retry.
func Classify(err error) Severity {
	switch {
	case xerrors.Is(err, homework.ErrSchema):
		return Fatal
	default:
		return Recoverable
	}
}

type SleepFunc func(ctx context.Context, d time.Duration) error

type Option func(*Poller)

func WithSleep(f SleepFunc) Option {
	return func(p *Poller) { p.sleep = f }
}

func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

type Poller struct {
	api      api.Interface
	notifier notifier.Interface
	period   time.Duration
	log      zerolog.Logger
	sleep    SleepFunc
	now      func() time.Time
}

func New(a api.Interface, n notifier.Interface, period time.Duration, log zerolog.Logger, opts ...Option) *Poller {
	p := &Poller{
		api:      a,
		notifier: n,
		period:   period,
		log:      log.With().Str("component", "poller").Logger(),
		sleep:    sleep,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until a fatal error or until ctx is done. The window starts at
// the current time. Run sleeps for the period after every iteration,
// including the one that hit a fatal error.
func (p *Poller) Run(ctx context.Context) error {
	window := p.now().Unix()
	p.log.Info().Int64("from_date", window).Dur("period", p.period).Msg("polling started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := p.Tick(ctx, window)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		window = next
		fatal := p.Handle(ctx, err)

		p.log.Debug().Dur("period", p.period).Msg("going to sleep")
		if err := p.sleep(ctx, p.period); err != nil && fatal == nil {
			return err
		}
		if fatal != nil {
			return fatal
		}
	}
}

// Tick runs one iteration for window and returns the window for the next
// one. The window only moves on success.
func (p *Poller) Tick(ctx context.Context, window int64) (int64, error) {
	body, err := p.api.Fetch(ctx, window)
	if err != nil {
		return window, err
	}
	resp, err := homework.Validate(body)
	if err != nil {
		return window, err
	}
	if len(resp.Homeworks) > 0 {
		msg, err := homework.ParseStatus(resp.Homeworks[0])
		if err != nil {
			return window, err
		}
		p.Notify(ctx, msg)
	} else {
		p.log.Debug().Msg("no status changes")
	}
	if resp.CurrentDate == nil {
		return window, nil
	}
	return *resp.CurrentDate, nil
}

// Handle logs and reports err to the chat. It returns err back only when the
// loop must stop.
func (p *Poller) Handle(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(model.FailureMsg, err)
	switch Classify(err) {
	case Fatal:
		logger.Critical(p.log).Err(err).Msg("incompatible API response, stopping")
		p.Notify(ctx, msg)
		return err
	default:
		p.log.Error().Err(err).Msg("iteration failed")
		p.Notify(ctx, msg)
		return nil
	}
}

// Notify is best effort: delivery errors are logged and dropped.
func (p *Poller) Notify(ctx context.Context, text string) {
	p.log.Info().Msg("sending message")
	if err := p.notifier.Send(ctx, text); err != nil {
		p.log.Error().Err(err).Msg("failed to send message")
		return
	}
	p.log.Debug().Str("text", text).Msg("message sent")
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

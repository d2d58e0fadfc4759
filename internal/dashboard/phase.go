package dashboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"healthgpt/internal/logging"
	"healthgpt/internal/services"
)

// Phase is the state of a single submit-type interaction:
// Idle -> Submitted -> Success | Failure. Success and Failure are terminal;
// a new submission starts a new interaction.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitted
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitted:
		return "submitted"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Terminal reports whether the interaction has finished.
func (p Phase) Terminal() bool {
	return p == PhaseSuccess || p == PhaseFailure
}

type interaction struct {
	ctx    context.Context
	logger *slog.Logger
	action string
	phase  Phase
}

// beginInteraction stamps the view and a fresh correlation id on ctx.
func beginInteraction(ctx context.Context, logger *slog.Logger, item MenuItem, action string) *interaction {
	ctx = services.WithView(ctx, item.String())
	ctx = services.WithRequestID(ctx, uuid.NewString())
	return &interaction{
		ctx:    ctx,
		logger: logging.WithContext(ctx, logger),
		action: action,
		phase:  PhaseIdle,
	}
}

func (i *interaction) submit() {
	i.transition(PhaseSubmitted)
}

func (i *interaction) finish(ok bool) Phase {
	if ok {
		i.transition(PhaseSuccess)
	} else {
		i.transition(PhaseFailure)
	}
	return i.phase
}

// fail ends the interaction as a failure and logs err with its tier.
func (i *interaction) fail(err error) Phase {
	tier := services.FailureTier(err)
	msg := i.action + " failed"
	if tier == services.TierMalformed {
		msg = i.action + " response not understood"
	}
	i.logger.Warn(msg, logging.String("tier", tier.String()), logging.Error(err))
	return i.finish(false)
}

func (i *interaction) transition(next Phase) {
	i.logger.Debug("interaction phase changed",
		logging.String("action", i.action),
		logging.String("from", i.phase.String()),
		logging.String("to", next.String()),
	)
	i.phase = next
}

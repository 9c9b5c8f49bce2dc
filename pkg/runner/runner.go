package runner

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

// Evaluator produces one moderation record per comment.
type Evaluator interface {
	Evaluate(ctx context.Context, comment types.Comment, minSeverity int) types.ModerationRecord
}

// Runner applies the moderation policy to an ordered batch of comments,
// sequentially. Output order always equals input order; filtering is a
// reporting concern, not a batch concern.
type Runner struct {
	policy         Evaluator
	logger         *logrus.Logger
	progressWriter io.Writer
}

type Option func(*Runner)

// WithProgressWriter redirects progress output; io.Discard silences it.
func WithProgressWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.progressWriter = w
	}
}

func New(policy Evaluator, logger *logrus.Logger, opts ...Option) *Runner {
	r := &Runner{
		policy:         policy,
		logger:         logger,
		progressWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every comment in input order and returns the completed record
// set. Per-comment failures are absorbed by the policy, so Run always yields
// exactly one record per input comment.
func (r *Runner) Run(ctx context.Context, comments []types.Comment, minSeverity int) types.RecordSet {
	batchID := uuid.NewString()
	r.logger.WithFields(logrus.Fields{
		"batch_id":     batchID,
		"comments":     len(comments),
		"min_severity": minSeverity,
	}).Info("starting moderation batch")

	bar := progressbar.NewOptions(len(comments),
		progressbar.OptionSetWriter(r.progressWriter),
		progressbar.OptionSetDescription("Analyzing comments"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	records := make(types.RecordSet, 0, len(comments))
	for _, comment := range comments {
		records = append(records, r.policy.Evaluate(ctx, comment, minSeverity))
		_ = bar.Add(1)
	}

	r.logger.WithField("batch_id", batchID).Info("moderation batch completed")
	return records
}

package policy

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

const (
	explanationPending     = "Pending analysis"
	explanationLocalFilter = "Detected by local profanity filter"
	explanationFailed      = "Analysis failed"

	localFilterSeverity = 5
)

// Matcher is the lexical filter signal.
type Matcher interface {
	Matches(text string) bool
}

// Classifier is the remote AI signal.
type Classifier interface {
	Classify(ctx context.Context, commentText string) (*types.ClassificationResult, error)
}

// Policy combines the two moderation signals into one normalized record per
// comment and applies the severity threshold gate. It never fails for a single
// comment: remote errors degrade the record instead of aborting the batch.
type Policy struct {
	filter     Matcher
	classifier Classifier
	logger     *logrus.Logger
	pacing     time.Duration
}

type Option func(*Policy)

// WithPacing overrides the delay applied after each remote classification
// attempt. Zero disables pacing.
func WithPacing(d time.Duration) Option {
	return func(p *Policy) {
		p.pacing = d
	}
}

func New(filter Matcher, classifier Classifier, logger *logrus.Logger, opts ...Option) *Policy {
	p := &Policy{
		filter:     filter,
		classifier: classifier,
		logger:     logger,
		pacing:     500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate produces the moderation record for one comment.
//
// A local filter match short-circuits the remote call entirely; that is a cost
// control, so a lexically flagged comment is pinned at severity 5 even when
// the model would rate it higher. Otherwise the remote verdict overwrites the
// record, a remote failure leaves it non-offensive with a failure marker, and
// the call is followed by a pacing delay to respect the endpoint's rate
// limits. Finally the threshold gate suppresses the offensive flag below
// minSeverity without touching severity or explanation.
func (p *Policy) Evaluate(ctx context.Context, comment types.Comment, minSeverity int) types.ModerationRecord {
	record := types.ModerationRecord{
		CommentID:   comment.CommentID,
		Username:    comment.Username,
		CommentText: comment.CommentText,
		Explanation: explanationPending,
	}

	if p.filter.Matches(comment.CommentText) {
		record.IsOffensive = true
		record.OffenseType = types.OffenseProfanity
		record.Severity = localFilterSeverity
		record.Explanation = explanationLocalFilter
	} else {
		result, err := p.classifier.Classify(ctx, comment.CommentText)
		if err != nil {
			p.logger.WithError(err).WithField("comment_id", comment.CommentID).
				Error("remote classification failed")
			record.Explanation = explanationFailed
		} else {
			record.IsOffensive = result.IsOffensive
			record.OffenseType = result.OffenseType
			record.Severity = types.ClampSeverity(result.Severity)
			record.Explanation = result.Explanation
		}
		p.pause(ctx)
	}

	if record.Severity < minSeverity {
		record.IsOffensive = false
	}

	return record
}

// pause applies once per comment that reached the remote path, success or
// failure alike. Context cancellation cuts it short.
func (p *Policy) pause(ctx context.Context) {
	if p.pacing <= 0 {
		return
	}
	timer := time.NewTimer(p.pacing)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

package runner_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuralTrust/CommentGuard/pkg/filter"
	"github.com/NeuralTrust/CommentGuard/pkg/policy"
	"github.com/NeuralTrust/CommentGuard/pkg/report"
	"github.com/NeuralTrust/CommentGuard/pkg/runner"
	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

// scriptedClassifier returns canned results keyed by comment text and counts
// calls, so tests can assert the local filter short-circuit.
type scriptedClassifier struct {
	results map[string]*types.ClassificationResult
	err     error
	calls   int
}

func (s *scriptedClassifier) Classify(_ context.Context, commentText string) (*types.ClassificationResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result, ok := s.results[commentText]
	if !ok {
		return nil, errors.New("unexpected comment")
	}
	return result, nil
}

func pipelineRunner(c policy.Classifier) *runner.Runner {
	p := policy.New(filter.New(nil), c, logrus.New(), policy.WithPacing(0))
	return runner.New(p, logrus.New(), runner.WithProgressWriter(io.Discard))
}

func TestPipeline_EndToEndScenario(t *testing.T) {
	comments := []types.Comment{
		{CommentID: "c1", Username: "alice", CommentText: "this is shit"},
		{CommentID: "c2", Username: "bob", CommentText: "targeted slurs here"},
		{CommentID: "c3", Username: "carol", CommentText: "mildly rude remark"},
	}
	classifier := &scriptedClassifier{results: map[string]*types.ClassificationResult{
		"targeted slurs here": {IsOffensive: true, OffenseType: types.OffenseHateSpeech, Severity: 8, Explanation: "slurs"},
		"mildly rude remark":  {IsOffensive: true, OffenseType: types.OffenseToxicity, Severity: 2, Explanation: "rude"},
	}}

	records := pipelineRunner(classifier).Run(context.Background(), comments, 5)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"},
		[]string{records[0].CommentID, records[1].CommentID, records[2].CommentID})

	// Comment 1: local filter, no remote call.
	assert.True(t, records[0].IsOffensive)
	assert.Equal(t, types.OffenseProfanity, records[0].OffenseType)
	assert.Equal(t, 5, records[0].Severity)

	// Comment 2: remote verdict above threshold.
	assert.True(t, records[1].IsOffensive)
	assert.Equal(t, 8, records[1].Severity)

	// Comment 3: remote verdict suppressed by the gate, signal retained.
	assert.False(t, records[2].IsOffensive)
	assert.Equal(t, 2, records[2].Severity)

	assert.Equal(t, 2, classifier.calls)

	summary := report.Summarize(records)
	assert.Equal(t, 2, summary.OffensiveCount)
	require.NotEmpty(t, summary.Top)
	assert.Equal(t, types.OffenseHateSpeech, summary.Top[0].OffenseType)
}

func TestPipeline_AllRemoteCallsFail(t *testing.T) {
	comments := []types.Comment{
		{CommentID: "c1", Username: "a", CommentText: "first clean comment"},
		{CommentID: "c2", Username: "b", CommentText: "this is shit"},
		{CommentID: "c3", Username: "c", CommentText: "third clean comment"},
	}
	classifier := &scriptedClassifier{err: errors.New("endpoint unreachable")}

	records := pipelineRunner(classifier).Run(context.Background(), comments, 1)

	require.Len(t, records, 3)
	for _, record := range []types.ModerationRecord{records[0], records[2]} {
		assert.False(t, record.IsOffensive)
		assert.Equal(t, 0, record.Severity)
		assert.Equal(t, "Analysis failed", record.Explanation)
	}
	// The locally flagged comment is untouched by remote failures.
	assert.True(t, records[1].IsOffensive)
	assert.Equal(t, 2, classifier.calls)
}

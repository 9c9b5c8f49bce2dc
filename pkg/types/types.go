package types

// OffenseType values the remote classifier is instructed to use. The policy
// layer treats offense types as opaque strings, so values outside this set are
// carried through unchanged.
const (
	OffenseHateSpeech = "hate_speech"
	OffenseToxicity   = "toxicity"
	OffenseProfanity  = "profanity"
	OffenseHarassment = "harassment"
	OffenseNone       = "none"
)

// MaxSeverity bounds the severity scale. Zero means the comment was never
// evaluated as offensive.
const MaxSeverity = 10

// Comment is one unit of user-generated text submitted for moderation.
type Comment struct {
	CommentID   string `json:"comment_id"`
	Username    string `json:"username"`
	CommentText string `json:"comment_text"`
}

// ClassificationResult is the structured verdict returned by the remote
// classifier for a single comment. It is transient: the policy folds it into a
// ModerationRecord and it is never persisted on its own.
type ClassificationResult struct {
	IsOffensive bool   `json:"is_offensive"`
	OffenseType string `json:"offense_type"`
	Severity    int    `json:"severity"`
	Explanation string `json:"explanation"`
}

// ModerationRecord is the normalized per-comment verdict combining the local
// filter, the remote classifier and the severity threshold gate. Records are
// immutable once the policy returns them.
type ModerationRecord struct {
	CommentID   string `json:"comment_id"`
	Username    string `json:"username"`
	CommentText string `json:"comment_text"`
	IsOffensive bool   `json:"is_offensive"`
	OffenseType string `json:"offense_type"`
	Severity    int    `json:"severity"`
	Explanation string `json:"explanation"`
}

// RecordSet is an ordered collection of moderation records, same length and
// order as the input comments.
type RecordSet []ModerationRecord

// ClampSeverity forces a severity value into the [0, MaxSeverity] range.
func ClampSeverity(severity int) int {
	if severity < 0 {
		return 0
	}
	if severity > MaxSeverity {
		return MaxSeverity
	}
	return severity
}

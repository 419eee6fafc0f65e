// ABOUTME: Pipeline stage ordering and derivation for deals
// ABOUTME: Maps deal results to the submitted/matched/reviewed/closed sequence
package models

// PipelineStage is one step of the fixed deal pipeline. The integer value
// is the stage's position in the pipeline, so stages compare directly.
type PipelineStage int

const (
	StageSubmitted PipelineStage = iota
	StageMatched
	StageReviewed
	StageClosed
)

// Stages returns the pipeline in order.
func Stages() []PipelineStage {
	return []PipelineStage{StageSubmitted, StageMatched, StageReviewed, StageClosed}
}

func (s PipelineStage) String() string {
	switch s {
	case StageSubmitted:
		return "submitted"
	case StageMatched:
		return "matched"
	case StageReviewed:
		return "reviewed"
	case StageClosed:
		return "closed"
	}
	return "unknown"
}

// Label returns the human-readable stage name.
func (s PipelineStage) Label() string {
	switch s {
	case StageSubmitted:
		return "Submitted"
	case StageMatched:
		return "Matched"
	case StageReviewed:
		return "Reviewed"
	case StageClosed:
		return "Closed"
	}
	return "Unknown"
}

// ParseStage parses a stored stage name back into a PipelineStage.
func ParseStage(s string) (PipelineStage, bool) {
	switch s {
	case "submitted":
		return StageSubmitted, true
	case "matched":
		return StageMatched, true
	case "reviewed":
		return StageReviewed, true
	case "closed":
		return StageClosed, true
	}
	return StageSubmitted, false
}

// InitialStage derives the stage a deal starts in when it comes back from
// the backend: matched when a rank was assigned, submitted otherwise. The
// client never advances a stage past this without new server input.
func InitialStage(d *Deal) PipelineStage {
	if d != nil && d.Rank != "" {
		return StageMatched
	}
	return StageSubmitted
}

// Reached reports whether stage s has been reached when the deal is
// currently at current. Used for progress rendering only.
func (s PipelineStage) Reached(current PipelineStage) bool {
	return s <= current
}

package model

// Outcome is the tagged result state of a detection call.
// Indeterminate is distinct from NotFound: it means the model call failed or
// produced output we could not parse, so nothing can be said either way.
type Outcome string

const (
	OutcomeFound         Outcome = "found"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeIndeterminate Outcome = "indeterminate"
)

// Detection is the result of running the fallacy detector over one comment
type Detection struct {
	Outcome   Outcome `json:"outcome"`
	FallacyID string  `json:"fallacy_id,omitempty"` // catalog id, empty unless Outcome is found
	Reason    string  `json:"reason,omitempty"`     // model's short rationale, may be empty
	Cause     string  `json:"-"`                    // why detection was indeterminate, if it was
}

// Found reports whether a fallacy was positively detected
func (d Detection) Found() bool {
	return d.Outcome == OutcomeFound
}

// EvidenceItem is one supporting search result for a detected fallacy.
// A highlighted answer-box hit carries only Title/Snippet/Link like an
// organic result but is treated as higher confidence by the caller.
type EvidenceItem struct {
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet"`
	Link    string `json:"link,omitempty"`
}

// Thread is a fetched discussion thread: the news-like context plus the
// comment bodies, already filtered of empty/deleted/removed placeholders
type Thread struct {
	Context  string   `json:"context"`
	Comments []string `json:"comments"`
}

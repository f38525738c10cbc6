package model

// ExtractedString is one discovered piece of translatable text.
type ExtractedString struct {
	Key      string
	Value    string // trimmed source text, used as the default-locale translation
	FilePath Path
	Line     int // 1-based, diagnostics only
}

// CandidateKind tells which heuristic matched a candidate node.
type CandidateKind string

const (
	// CandidateText is a run of literal text among an element's children.
	CandidateText CandidateKind = "text"
	// CandidateAttribute is a string literal bound to an allowlisted attribute.
	CandidateAttribute CandidateKind = "attribute"
)

// Candidate is a translatable node found during one traversal. Start and End
// delimit the byte span the injector replaces: the trimmed text for text
// runs, the quoted literal for attributes.
type Candidate struct {
	Kind      CandidateKind
	Text      string
	Attribute string // attribute name, empty for text runs
	Start     uint32
	End       uint32
	Line      int
}

// KeyCollision records two different texts that reduced to the same key.
// The later value wins in the base table.
type KeyCollision struct {
	Key      string
	Previous string
	Current  string
	FilePath Path
	Line     int
}

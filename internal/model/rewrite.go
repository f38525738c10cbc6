package model

// Edit is a single change against the parse-time snapshot of a file.
// Start == End denotes an insertion.
type Edit struct {
	Start uint32
	End   uint32
	Text  string
}

// InjectResult is the rewrite outcome for one file.
type InjectResult struct {
	Path         Path
	Changed      bool
	Replacements int
	ImportAdded  bool
	ImportMerged bool
	HookInserted bool
	// Warning is set when literals were replaced but the translation hook could
	// not be wired, leaving t() calls without a binding.
	Warning   string
	Edits     []Edit
	Original  []byte
	Rewritten []byte
}

// Partial reports whether the file was rewritten without a working hook.
func (r InjectResult) Partial() bool {
	return r.Changed && r.Warning != ""
}

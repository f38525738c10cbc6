package model

// ExtractSummary describes one extract run.
type ExtractSummary struct {
	Output     Path
	Files      int
	Records    int
	Keys       int
	Collisions []KeyCollision
}

// TranslationStatus is reported once per target language.
type TranslationStatus struct {
	Lang       string
	Output     Path
	Cached     int
	Translated int
	Missing    int
	Err        error
}

// FileCount is the number of translatable candidates found in one file.
type FileCount struct {
	Path  Path
	Count int
}

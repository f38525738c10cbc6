package model

import "fmt"

// Stage names the pass a failure happened in.
type Stage string

// Op names the step inside a stage.
type Op string

const (
	// StageExtract is the read-only extraction pass.
	StageExtract Stage = "extract"
	// StageInject is the rewriting pass.
	StageInject Stage = "inject"

	// OpRead covers loading the file from disk.
	OpRead Op = "read"
	// OpParse covers building the syntax tree.
	OpParse Op = "parse"
	// OpRewrite covers applying edits to the snapshot.
	OpRewrite Op = "rewrite"
	// OpSave covers persisting the rewritten file.
	OpSave Op = "save"
)

// FileError identifies the file, stage and step of a failure.
type FileError struct {
	Stage Stage
	Op    Op
	Path  Path
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Stage, e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Package model defines the data structures shared by the extraction and
// injection passes.
package model

// Path represents a file system path.
type Path string

// File represents a component source file selected by the scanner.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the scan root, for display
}

// Paths returns the absolute paths of files in their original order.
func Paths(files []File) []Path {
	paths := make([]Path, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.FullPath)
	}

	return paths
}

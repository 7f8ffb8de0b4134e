package diagfmt

// PathMode specifies how file paths are displayed. Stored paths are never
// rewritten; the mode only changes rendering.
type PathMode uint8

const (
	// PathModeStored shows the path exactly as recorded in the FileSet.
	PathModeStored PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) key() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "stored"
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
//
// BaseDir is the display anchor for relative paths. It is injected rather
// than read from the process so formatting stays deterministic under test;
// callers that want working-directory-relative output pass os.Getwd().
type PrettyOpts struct {
	Color     bool
	Context   int8 // source lines shown around the primary span; 0 disables context
	PathMode  PathMode
	BaseDir   string
	ShowNotes bool
}

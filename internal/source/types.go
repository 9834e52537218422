package source

type (
	// FileID uniquely identifies a buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a buffer.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (editor buffer, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single buffer: a Rego policy,
// or the JSON text backing the input/data schema roots.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages the buffers of one editor session (policy, input, data)
// or of a batch CLI run, and resolves spans to human positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> latest id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a buffer from normalized bytes, computes LineIdx and Hash, and
// returns a new FileID. A path may be added repeatedly and the index always
// points at the latest id. A buffer that changes per keystroke should use
// Update on its existing id instead of accumulating snapshots here.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory buffer with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Update replaces the content of an existing buffer in place, recomputing
// its line index and hash. ID, path, and flags stay put, so spans minted
// against the old content must not outlive the call.
func (fileSet *FileSet) Update(id FileID, content []byte) *File {
	f := &fileSet.files[id]
	f.Content = content
	f.LineIdx = buildLineIndex(content)
	f.Hash = sha256.Sum256(content)
	return f
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineCount returns the number of lines in the file. An empty buffer has
// one (empty) line; a trailing newline does not open a new line.
func (f *File) LineCount() uint32 {
	lenIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	if len(f.Content) == 0 {
		return 1
	}
	if f.Content[len(f.Content)-1] == '\n' {
		return lenIdx
	}
	return lenIdx + 1
}

// OffsetOf converts a 1-based (line, col) pair into a byte offset, clamped
// to [0, len(Content)]. Columns past the end of the line clamp to the line
// end. Positions produced by an external tool against a stale snapshot must
// never map outside the current buffer.
func (f *File) OffsetOf(pos LineCol) uint32 {
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if pos.Line == 0 {
		pos.Line = 1
	}
	if pos.Col == 0 {
		pos.Col = 1
	}

	var lineStart uint32
	switch {
	case pos.Line == 1:
		lineStart = 0
	case int(pos.Line-2) < len(f.LineIdx):
		lineStart = f.LineIdx[pos.Line-2] + 1
	default:
		return lenContent
	}

	lineEnd := lenContent
	if int(pos.Line-1) < len(f.LineIdx) {
		lineEnd = f.LineIdx[pos.Line-1]
	}

	off := lineStart + (pos.Col - 1)
	if off > lineEnd {
		off = lineEnd
	}
	return off
}

// GetLine returns the text of the given 1-based line, without the trailing
// newline. A line that does not exist yields "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end, lenLineIdx, lenContent uint32
	var err error
	lenLineIdx, err = safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(f.Content[start:end])
}

package driver

import (
	"fortio.org/safecast"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/highlight"
	"github.com/HZMonama/regolab/internal/parser"
	"github.com/HZMonama/regolab/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  parser.Result
	Bag     *diag.Bag
}

func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	result := parser.ParseFile(file, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Result:  result,
		Bag:     bag,
	}, nil
}

type HighlightResult struct {
	FileSet *source.FileSet
	File    *source.File
	Regions []highlight.Region
	Bag     *diag.Bag
}

// Highlight parses a file and maps every leaf to a style region.
func Highlight(path string, maxDiagnostics int) (*HighlightResult, error) {
	pr, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &HighlightResult{
		FileSet: pr.FileSet,
		File:    pr.File,
		Regions: highlight.File(pr.Result.Tree, pr.Result.EOF.Leading),
		Bag:     pr.Bag,
	}, nil
}

// Package driver wires the analysis pipeline: load a header, lex it,
// parse class declarations, and build the semantic index tweaks run
// against. It also scans whole directories in parallel and caches
// per-file results on disk.
package driver

import (
	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/lexer"
	"purefix/internal/parser"
	"purefix/internal/sema"
	"purefix/internal/source"
)

// FileResult содержит результат разбора одного файла
type FileResult struct {
	Path    string              // Путь к файлу
	FileID  source.FileID       // ID файла в FileSet
	Classes []*cppast.ClassDecl // Найденные декларации классов
	Bag     *diag.Bag           // Диагностики
}

// Analysis объединяет результаты по всем файлам и общий индекс.
type Analysis struct {
	FileSet *source.FileSet
	Files   []FileResult
	Index   *sema.Index
}

// lexReporter переводит тонкие события лексера в диагностики.
type lexReporter struct {
	bag *diag.Bag
}

func (r lexReporter) Report(kind string, sp source.Span, msg string) {
	code := diag.LexInfo
	switch kind {
	case "unknown-char":
		code = diag.LexUnknownChar
	case "unterminated-literal":
		code = diag.LexUnterminatedString
	case "unterminated-block-comment":
		code = diag.LexUnterminatedBlockComment
	}
	r.bag.Add(diag.NewWarning(code, sp, msg))
}

// AnalyzeFile разбирает один уже загруженный файл.
func AnalyzeFile(fileSet *source.FileSet, id source.FileID, maxDiagnostics int) FileResult {
	bag := diag.NewBag(maxDiagnostics)
	file := fileSet.Get(id)

	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{bag: bag}})
	res := parser.ParseFile(fileSet, lx, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return FileResult{
		Path:    file.Path,
		FileID:  id,
		Classes: res.Classes,
		Bag:     bag,
	}
}

// AnalyzePath загружает один файл с диска и разбирает его.
func AnalyzePath(path string, maxDiagnostics int) (*Analysis, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	res := AnalyzeFile(fileSet, id, maxDiagnostics)
	return &Analysis{
		FileSet: fileSet,
		Files:   []FileResult{res},
		Index:   sema.NewIndex(res.Classes),
	}, nil
}

// BuildIndex собирает общий индекс из результатов всех файлов.
func BuildIndex(files []FileResult) *sema.Index {
	var classes []*cppast.ClassDecl
	for _, f := range files {
		classes = append(classes, f.Classes...)
	}
	return sema.NewIndex(classes)
}

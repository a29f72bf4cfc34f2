package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"purefix/internal/diag"
	"purefix/internal/source"
)

// ScanOptions настраивают обход директории.
type ScanOptions struct {
	Extensions     []string // расширения заголовков, с точкой
	MaxDiagnostics int
	Jobs           int        // <=0 — GOMAXPROCS
	Cache          *DiskCache // nil — без кеша
}

// listHeaderFiles возвращает отсортированный список заголовков в директории
func listHeaderFiles(dir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir разбирает все заголовки в директории параллельно и строит
// общий индекс классов. Файлы, не прошедшие загрузку, получают
// диагностику вместо результата; обход продолжается.
func AnalyzeDir(ctx context.Context, dir string, opts ScanOptions) (*Analysis, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".h", ".hh", ".hpp", ".hxx"}
	}

	files, err := listHeaderFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(dir)

	analysis := &Analysis{FileSet: fileSet}
	if len(files) == 0 {
		analysis.Index = BuildIndex(nil)
		return analysis, nil
	}

	// Предзагружаем все файлы: FileSet не потокобезопасен на запись
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			id := fileIDs[path]
			if cached, ok := cacheLookup(opts.Cache, fileSet.Get(id)); ok {
				results[i] = cached.toFileResult(path, id)
				return nil
			}

			res := AnalyzeFile(fileSet, id, opts.MaxDiagnostics)
			cacheStore(opts.Cache, fileSet.Get(id), res)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return analysis, err
	}

	analysis.Files = results
	analysis.Index = BuildIndex(results)
	return analysis, nil
}

package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome for one checked path. Err is set for I/O failures only.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// Failed reports an I/O error or a diagnostic.
func (r FileResult) Failed() bool {
	return r.Err != nil || !r.Result.OK()
}

type CheckOptions struct {
	Options
	Jobs int
	// OnStart вызывается перед разбором файла; вызовы сериализованы.
	OnStart func(path string)
	// OnDone вызывается после каждого файла; вызовы сериализованы.
	OnDone func(done, total int, r FileResult)
}

// ListZincFiles expands paths: files must end in .zn, directories are walked for .zn files.
// The result is sorted and free of duplicates.
func ListZincFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !IsZincPath(root) {
				return nil, fmt.Errorf("%w, got: %s", ErrNotZinc, root)
			}
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			if !d.IsDir() && IsZincPath(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckFiles transpiles every .zn file under paths in parallel. Results follow
// the sorted path order regardless of completion order.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) ([]FileResult, error) {
	files, err := ListZincFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	fileOpts := opts.Options
	// таймер не потокобезопасен
	fileOpts.Timer = nil

	results := make([]FileResult, len(files))
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if opts.OnStart != nil {
				mu.Lock()
				opts.OnStart(path)
				mu.Unlock()
			}
			res, err := TranspileFile(path, fileOpts)
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = FileResult{Path: path, Result: res, Err: err}

			if opts.OnDone != nil {
				mu.Lock()
				done++
				opts.OnDone(done, len(files), results[i])
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

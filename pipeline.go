package glyphpack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const scanWorkers = 10

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
}

func isImage(file string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

var (
	// ErrOverwriteSource is returned when an output would replace its own
	// source image
	ErrOverwriteSource = errors.New("glyphpack: output would overwrite source image")
	// ErrDuplicateOutput is returned when two source images map to the same
	// output file
	ErrDuplicateOutput = errors.New("glyphpack: output file claimed by more than one image")
)

type outputSet struct {
	mu    sync.Mutex
	paths map[string]string
}

func newOutputSet() *outputSet {
	return &outputSet{paths: make(map[string]string)}
}

func (s *outputSet) claim(src, dst string) error {
	if dst == src {
		return fmt.Errorf("%w: %s", ErrOverwriteSource, src)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if other, ok := s.paths[dst]; ok {
		return fmt.Errorf("%w: %s from both %s and %s", ErrDuplicateOutput, dst, other, src)
	}
	s.paths[dst] = src

	return nil
}

func (p *Packer) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file with an image extension
			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (p *Packer) imageWorker(ctx context.Context, in <-chan string, outputs *outputSet, suffix string, fn EncodeFunc) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for {
			var file string
			select {
			case f, ok := <-in:
				if !ok {
					return
				}
				file = f
			case <-ctx.Done():
				return
			}

			dst := strings.TrimSuffix(file, filepath.Ext(file)) + suffix
			if err := outputs.claim(file, dst); err != nil {
				errc <- err
				return
			}
			if err := p.Convert(file, dst, fn); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the directory tree at path converting every image it finds
// with fn. Each output is written alongside its source with the extension
// replaced by suffix. Hidden files and directories are skipped. A suffix
// that is itself an image extension, or two images that would share an
// output file, is an error.
func (p *Packer) Scan(path, suffix string, fn EncodeFunc) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if isImage(suffix) {
		return fmt.Errorf("%w: suffix %s is an image extension", ErrOverwriteSource, suffix)
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := p.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	outputs := newOutputSet()
	for i := 0; i < scanWorkers; i++ {
		errc, err := p.imageWorker(ctx, files, outputs, suffix, fn)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

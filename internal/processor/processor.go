// Package processor applies the encryption protocol to batches of files
// concurrently, isolating failures per file.
package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/crypt"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// suite is the active cipher/hash pair
	suite crypt.Suite

	// password holds the UTF-8 password bytes
	password []byte

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// New creates a Processor for the given configuration and password,
// resolving the cipher suite up front.
func New(cfg *config.Config, password []byte) (*Processor, error) {
	suite, err := crypt.ParseSuite(cfg.Suite)
	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:      cfg,
		suite:    suite,
		password: password,
		results:  make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the
// configuration. Each file's failure is reported and does not affect the
// others. Cancelling ctx stops dispatching new files; in-flight files
// finish their atomic writes or leave nothing behind.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles(ctx context.Context) (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	errLine := color.New(color.FgRed)

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				errLine.Fprintf(os.Stderr, "%s: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					errLine.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			outPath, size, err := p.processFile(file)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if ctx.Err() != nil {
		return processed, errored, totalSize, fmt.Errorf("processing interrupted: %w", ctx.Err())
	}

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

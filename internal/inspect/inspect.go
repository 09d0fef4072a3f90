// Package inspect orchestrates a full inspection run: file discovery,
// parsing, parallel per-file extraction, and the final merge into a Module.
package inspect

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"tfinspect/internal/extract"
	"tfinspect/internal/merge"
	"tfinspect/internal/models"
	"tfinspect/pkg/logging"
)

// Config contains the parameters of one inspection run.
type Config struct {
	// Path is the module directory to inspect.
	Path string

	// ConcurrencyLimit caps the number of files extracted in parallel
	// (0 = unlimited).
	ConcurrencyLimit int

	// Strict makes the run fail on the first file that cannot be read or
	// parsed, instead of degrading to diagnostics.
	Strict bool
}

// Service drives the inspection workflow.
type Service struct {
	config Config
	files  FileLister
	parser SyntaxParser
	logger logging.Logger
}

// NewService creates an inspection service with the given collaborators.
func NewService(config Config, files FileLister, parser SyntaxParser, logger logging.Logger) *Service {
	return &Service{
		config: config,
		files:  files,
		parser: parser,
		logger: logger,
	}
}

// NewDefaultService creates a service with default implementations of all
// collaborators.
func NewDefaultService(config Config) *Service {
	return NewService(config, DirLister{}, NewHCLParser(), logging.NewDefaultLogger())
}

// Run inspects the configured module directory and returns its Module.
//
// Each file is extracted independently; extraction is pure computation over
// the parsed tree, so files run on parallel workers with no shared state.
// The merge step is the synchronization barrier: it waits for every worker
// and applies the deterministic file-name ordering itself, so the result
// does not depend on completion order.
//
// Run only returns an error for environment failures (or any parse failure
// when Strict is set). Malformed configuration is reported through the
// Module's diagnostics instead.
func (s *Service) Run(ctx context.Context) (*models.Module, error) {
	if err := s.validateConfig(); err != nil {
		return nil, err
	}

	paths, err := s.files.ModuleFiles(s.config.Path)
	if err != nil {
		return nil, fmt.Errorf("discovering module files: %w", err)
	}
	s.logger.Debug("Found %d configuration files in %s", len(paths), s.config.Path)

	frags := make([]*extract.Fragment, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if s.config.ConcurrencyLimit > 0 {
		g.SetLimit(s.config.ConcurrencyLimit)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frag, err := s.extractFile(path)
			if err != nil {
				return err
			}
			frags[i] = frag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extracting module files: %w", err)
	}

	mod := merge.Module(s.config.Path, frags)
	s.logger.Info("Inspected %s: %d managed resources, %d data resources, %d diagnostics",
		s.config.Path, len(mod.ManagedResources), len(mod.DataResources), len(mod.Diagnostics))
	return mod, nil
}

// extractFile reads, parses, and extracts a single file. Outside strict
// mode, read and parse failures degrade to diagnostics on the returned
// fragment so sibling files are unaffected.
func (s *Service) extractFile(path string) (*extract.Fragment, error) {
	s.logger.Debug("Extracting %s", path)

	src, err := os.ReadFile(path)
	if err != nil {
		if s.config.Strict {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return &extract.Fragment{
			Filename: path,
			Diagnostics: models.Diagnostics{{
				Severity: models.SeverityError,
				Summary:  "Failed to read file",
				Detail:   fmt.Sprintf("The configuration file %q could not be read.", path),
			}},
		}, nil
	}

	file, parseDiags := s.parser.ParseFile(src, path)
	if s.config.Strict && parseDiags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", path, parseDiags[0].Summary)
	}

	return extract.File(file, path, parseDiags), nil
}

// validateConfig checks that the required configuration is provided.
func (s *Service) validateConfig() error {
	if s.config.Path == "" {
		return fmt.Errorf("module directory path is required")
	}
	return nil
}

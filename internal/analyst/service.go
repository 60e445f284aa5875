package analyst

import (
	"time"

	"go.uber.org/zap"

	"github.com/tabledata/csv-analyst/internal/catalog"
	"github.com/tabledata/csv-analyst/internal/tabular"
)

// Service answers the four inspection operations. It is stateless across
// calls: every query resolves the filename, loads a fresh table, computes
// its result and discards the table. Concurrent calls are safe as long as
// the underlying files are not concurrently mutated.
type Service struct {
	resolver *catalog.Resolver
	logger   *zap.Logger
}

// NewService builds a Service over a resolver. A nil logger disables logging.
func NewService(resolver *catalog.Resolver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{resolver: resolver, logger: logger}
}

// DataDir returns the absolute base data directory.
func (s *Service) DataDir() string {
	return s.resolver.BaseDir()
}

// ListFiles enumerates the eligible files in the data directory.
func (s *Service) ListFiles() ([]catalog.FileDescriptor, error) {
	start := time.Now()
	files, err := s.resolver.ListFiles()
	if err != nil {
		s.logger.Error("list_files failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("list_files",
		zap.Int("files", len(files)),
		zap.Duration("took", time.Since(start)))
	return files, nil
}

// Preview returns the header and first n rows of the named file.
func (s *Service) Preview(filename string, n int) (*PreviewResponse, error) {
	start := time.Now()
	table, err := s.load(filename)
	if err != nil {
		s.logger.Error("preview failed", zap.String("file", filename), zap.Error(err))
		return nil, err
	}
	p, err := tabular.Preview(table, n)
	if err != nil {
		s.logger.Error("preview failed", zap.String("file", filename), zap.Error(err))
		return nil, err
	}
	s.logger.Info("preview",
		zap.String("file", filename),
		zap.Int("n", n),
		zap.Int("total_rows", p.TotalRows),
		zap.Duration("took", time.Since(start)))
	return &PreviewResponse{
		Columns:       p.Columns,
		Rows:          rowMaps(p.Columns, p.Rows),
		TotalRowCount: p.TotalRows,
	}, nil
}

// Describe computes per-column summary statistics for the named file.
func (s *Service) Describe(filename string) (*DescribeResponse, error) {
	start := time.Now()
	table, err := s.load(filename)
	if err != nil {
		s.logger.Error("describe failed", zap.String("file", filename), zap.Error(err))
		return nil, err
	}
	stats := tabular.Describe(table)
	s.logger.Info("describe",
		zap.String("file", filename),
		zap.Int("columns", len(stats)),
		zap.Int("rows", table.RowCount()),
		zap.Duration("took", time.Since(start)))

	resp := &DescribeResponse{
		Columns: table.Columns,
		Summary: make(map[string]ColumnSummary, len(stats)),
	}
	for _, cs := range stats {
		resp.Summary[cs.Name] = newColumnSummary(cs)
	}
	return resp, nil
}

// FilterEquals returns the rows of the named file where column equals value.
func (s *Service) FilterEquals(filename, column, value string) (*FilterResponse, error) {
	start := time.Now()
	table, err := s.load(filename)
	if err != nil {
		s.logger.Error("filter_equals failed", zap.String("file", filename), zap.Error(err))
		return nil, err
	}
	r, err := tabular.FilterEquals(table, column, value)
	if err != nil {
		s.logger.Error("filter_equals failed",
			zap.String("file", filename),
			zap.String("column", column),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("filter_equals",
		zap.String("file", filename),
		zap.String("column", column),
		zap.Int("matched", len(r.Rows)),
		zap.Duration("took", time.Since(start)))
	return &FilterResponse{
		Columns: r.Columns,
		Rows:    rowMaps(r.Columns, r.Rows),
	}, nil
}

func (s *Service) load(filename string) (*tabular.Table, error) {
	path, err := s.resolver.Resolve(filename)
	if err != nil {
		return nil, err
	}
	return tabular.Load(path)
}

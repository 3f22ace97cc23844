package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"docsearch/internal/logger"
	"docsearch/internal/model"
	"docsearch/internal/ocr"
	"docsearch/internal/raster"
	"docsearch/internal/repository"
	"docsearch/internal/storage"
)

var ErrOpenUpload = errors.New("cannot open uploaded file")

var tracer = otel.Tracer("docsearch/internal/service")

// UploadedFile is one part of a multipart upload.
type UploadedFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Outcome is the per-file result of an ingestion batch. Exactly one of Text
// or Err is meaningful: Err != nil means no record was stored.
type Outcome struct {
	FileName string
	Text     string
	Err      error
}

// IngestionService runs uploaded files through OCR and stores the results.
type IngestionService interface {
	// Ingest processes every file independently and returns one outcome per
	// file in input order.
	Ingest(ctx context.Context, files []UploadedFile) []Outcome
}

// IngestOptions tunes the pipeline.
type IngestOptions struct {
	// Workers bounds how many files are processed at once; values below 1 mean 1.
	Workers int
	// TempDir is where uploads are spooled; empty means os.TempDir().
	TempDir string
}

type ingestionService struct {
	rasterizer raster.Rasterizer
	engine     ocr.Engine
	linker     storage.FileLinker
	repo       repository.DocumentRepository
	opts       IngestOptions
	log        zerolog.Logger
}

// NewIngestionService constructs a new IngestionService.
func NewIngestionService(
	rasterizer raster.Rasterizer,
	engine ocr.Engine,
	linker storage.FileLinker,
	repo repository.DocumentRepository,
	opts IngestOptions,
) IngestionService {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &ingestionService{
		rasterizer: rasterizer,
		engine:     engine,
		linker:     linker,
		repo:       repo,
		opts:       opts,
		log:        logger.WithComponent("ingest"),
	}
}

func (s *ingestionService) Ingest(ctx context.Context, files []UploadedFile) []Outcome {
	ctx, span := tracer.Start(ctx, "ingest.batch", trace.WithAttributes(
		attribute.Int("ingest.files", len(files)),
		attribute.Int("ingest.workers", s.opts.Workers),
	))
	defer span.End()

	out := make([]Outcome, len(files))

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for i, f := range files {
		g.Go(func() error {
			out[i] = s.ingestOne(ctx, f)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (s *ingestionService) ingestOne(ctx context.Context, f UploadedFile) (out Outcome) {
	log := logger.FromContext(ctx, s.log).With().Str("file_name", f.Name).Logger()

	ctx, span := tracer.Start(ctx, "ingest.file", trace.WithAttributes(attribute.String("file.name", f.Name)))
	defer func() {
		if out.Err != nil {
			span.RecordError(out.Err)
			span.SetStatus(codes.Error, "ingestion failed")
		}
		span.End()
	}()

	tmp, err := s.spool(f)
	if err != nil {
		return s.failed(log, f.Name, err)
	}
	defer tmp.release()

	text, err := s.extract(ctx, tmp.path, raster.KindFromName(f.Name))
	if err != nil {
		return s.failed(log, f.Name, err)
	}

	link := s.upload(ctx, f.Name, tmp)
	if link.IsDegraded() {
		log.Warn().Err(link.Reason).Msg("upload degraded, storing record without link")
	}
	tmp.release()

	doc, err := s.repo.Create(ctx, &model.Document{
		FileName:      f.Name,
		ExtractedText: text,
		FileLink:      link.Value,
	})
	if err != nil {
		return s.failed(log, f.Name, fmt.Errorf("persist record: %w", err))
	}

	log.Info().Int64("document_id", doc.ID).Int("text_len", len(text)).Bool("linked", link.Value != "").Msg("file ingested")
	return Outcome{FileName: f.Name, Text: text}
}

func (s *ingestionService) failed(log zerolog.Logger, name string, err error) Outcome {
	log.Warn().Err(err).Msg("file ingestion failed")
	return Outcome{FileName: name, Err: err}
}

// extract rasterizes the spooled file and concatenates the text of every
// page in order, with no separator.
func (s *ingestionService) extract(ctx context.Context, path string, kind raster.Kind) (string, error) {
	doc, err := s.rasterizer.Open(ctx, path, kind)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("file.kind", kind.String()),
		attribute.Int("file.pages", doc.NumPages()),
	)

	var sb strings.Builder
	for i := 0; i < doc.NumPages(); i++ {
		img, err := doc.Render(i)
		if err != nil {
			return "", err
		}
		text, err := s.engine.Recognize(ctx, img)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func (s *ingestionService) upload(ctx context.Context, name string, tmp *tempFile) model.Result[string] {
	f, err := os.Open(tmp.path)
	if err != nil {
		return model.Degraded[string](fmt.Errorf("%w: reopen spooled file: %v", storage.ErrUpload, err))
	}
	defer f.Close()
	return s.linker.Link(ctx, name, f, tmp.size)
}

// tempFile is a spooled upload. release is idempotent so it can be both
// deferred and called early.
type tempFile struct {
	path     string
	size     int64
	released bool
}

func (t *tempFile) release() {
	if t.released {
		return
	}
	t.released = true
	_ = os.Remove(t.path)
}

func (s *ingestionService) spool(f UploadedFile) (*tempFile, error) {
	src, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenUpload, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.opts.TempDir, "upload-*"+strings.ToLower(filepath.Ext(f.Name)))
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmp := &tempFile{path: dst.Name()}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		tmp.release()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.size = n
	return tmp, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"docsearch/internal/llm"
	"docsearch/internal/logger"
	"docsearch/internal/model"
	"docsearch/internal/repository"
)

// QueryService answers questions over the stored corpus and lists stored files.
type QueryService interface {
	// Search sends the query as the instruction and the whole corpus as the
	// context. An LLM failure yields an empty answer, not an error.
	Search(ctx context.Context, query string) (string, error)

	// Corpus concatenates every stored text in insertion order with no separator.
	Corpus(ctx context.Context) (string, error)

	// ListFiles returns every stored file name and link in insertion order.
	ListFiles(ctx context.Context) ([]model.FileLink, error)
}

type queryService struct {
	repo  repository.DocumentRepository
	synth llm.Synthesizer
	log   zerolog.Logger
}

// NewQueryService constructs a new QueryService.
func NewQueryService(repo repository.DocumentRepository, synth llm.Synthesizer) QueryService {
	return &queryService{repo: repo, synth: synth, log: logger.WithComponent("query")}
}

func (s *queryService) Corpus(ctx context.Context) (string, error) {
	texts, err := s.repo.ListTexts(ctx)
	if err != nil {
		return "", fmt.Errorf("load corpus: %w", err)
	}
	return strings.Join(texts, ""), nil
}

func (s *queryService) Search(ctx context.Context, query string) (string, error) {
	corpus, err := s.Corpus(ctx)
	if err != nil {
		return "", err
	}

	answer := s.synth.Answer(ctx, corpus, query)
	if answer.IsDegraded() {
		log := logger.FromContext(ctx, s.log)
		log.Warn().Err(answer.Reason).Int("corpus_len", len(corpus)).Msg("answer degraded")
	}
	return answer.Value, nil
}

func (s *queryService) ListFiles(ctx context.Context) ([]model.FileLink, error) {
	files, err := s.repo.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

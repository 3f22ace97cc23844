package llm

import (
	"context"
	"errors"
	"fmt"

	"docsearch/internal/model"
)

// Synthesizer answers an instruction over a body of context text.
type Synthesizer interface {
	Answer(ctx context.Context, corpus, instruction string) model.Result[string]
}

type synthesizer struct {
	completer Completer
}

func NewSynthesizer(c Completer) Synthesizer {
	return &synthesizer{completer: c}
}

// Answer puts the instruction in the system turn and the corpus in the user
// turn. Any failure yields a degraded empty answer.
func (s *synthesizer) Answer(ctx context.Context, corpus, instruction string) model.Result[string] {
	text, err := s.completer.Complete(ctx, instruction, corpus)
	if err != nil {
		if !errors.Is(err, ErrCompletion) {
			err = fmt.Errorf("%w: %v", ErrCompletion, err)
		}
		return model.Degraded[string](err)
	}
	return model.Ok(text)
}

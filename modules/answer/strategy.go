package answer

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-monolith/mono/pkg/types"
)

// DefaultTimeout bounds a single live inference call.
const DefaultTimeout = 5 * time.Second

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// Prompt builds the instruction sent to the live tier.
func Prompt(question string) string {
	return "Answer in one word only: " + question
}

// Strategy resolves questions with a live generator first and the rule
// table second.
type Strategy struct {
	generator Generator
	timeout   time.Duration
	logger    types.Logger
}

// NewStrategy creates a Strategy. A nil generator disables the live tier.
func NewStrategy(generator Generator, timeout time.Duration, logger types.Logger) *Strategy {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Strategy{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Live reports whether a generator is configured.
func (s *Strategy) Live() bool {
	return s.generator != nil
}

// Resolve always produces an answer.
func (s *Strategy) Resolve(ctx context.Context, question string) Answer {
	if s.generator != nil {
		word, err := s.live(ctx, question)
		if err == nil {
			s.logger.Info("Live answer", "provider", s.generator.Name(), "answer", word)
			return Answer{Text: word, Source: SourceLive}
		}
		s.logger.Warn("Live tier failed, using fallback", "provider", s.generator.Name(), "error", err)
	}
	return Answer{Text: Fallback(question), Source: SourceFallback}
}

type generated struct {
	text string
	err  error
}

// live makes one generator attempt bounded by the strategy timeout, even
// for generators that ignore ctx.
func (s *Strategy) live(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan generated, 1)
	go func() {
		text, err := s.generator.Generate(ctx, Prompt(question))
		done <- generated{text: text, err: err}
	}()

	var res generated
	select {
	case res = <-done:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if res.err != nil {
		return "", res.err
	}

	word := extractWord(res.text)
	if word == "" {
		return "", ErrEmptyAnswer
	}
	return word, nil
}

// extractWord keeps the alphanumeric characters of the first token.
func extractWord(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return nonAlphanumeric.ReplaceAllString(fields[0], "")
}

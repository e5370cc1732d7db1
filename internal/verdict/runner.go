// Package verdict orchestrates one read-prompt-generate-print cycle.
package verdict

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	apperrors "guardian-verdict/internal/common/errors"
	"guardian-verdict/internal/common/logger"
	"guardian-verdict/internal/metrics"
	"guardian-verdict/internal/prompt"
)

// Generator is the inference capability the runner needs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Runner struct {
	client  Generator
	timeout time.Duration
	logger  logger.Logger
}

func NewRunner(client Generator, timeout time.Duration, log logger.Logger) *Runner {
	return &Runner{
		client:  client,
		timeout: timeout,
		logger: log.WithFields(map[string]interface{}{
			"invocationId": uuid.New().String(),
		}),
	}
}

// Run executes one verdict cycle: read metrics from in, build the prompt,
// generate, and write the verdict to out iff it is non-empty. Input is fully
// consumed before the single HTTP call so Guardian's pipe write never blocks
// on the endpoint. Every failure leaves out untouched; the returned error
// exists only for the diagnostic log and must never surface to Guardian.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	m, err := metrics.Read(in)
	if err != nil {
		r.logger.Debug("metrics payload rejected", map[string]interface{}{
			"code":  string(apperrors.CodeOf(err)),
			"error": err.Error(),
		})
		return err
	}

	p := prompt.Build(m)

	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	text, err := r.client.Generate(genCtx, p)
	if err != nil {
		r.logger.Debug("generate failed, yielding to rule-based fallback", map[string]interface{}{
			"code":  string(apperrors.CodeOf(err)),
			"error": err.Error(),
		})
		return err
	}

	if text == "" {
		r.logger.Debug("model returned no verdict", nil)
		return nil
	}

	_, err = fmt.Fprintln(out, text)
	return err
}

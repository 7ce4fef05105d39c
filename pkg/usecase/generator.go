package usecase

import (
	"bytes"
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// GeneratePRDescription asks the LLM for a markdown PR description and returns the first text, trimmed
func (uc *prDescription) GeneratePRDescription(ctx context.Context, commits, diff string) (string, error) {
	logger := ctxlog.From(ctx)

	var buf bytes.Buffer
	if err := uc.userTemplate.Execute(&buf, map[string]string{
		"Commits": commits,
		"Diff":    diff,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to execute user prompt template")
	}
	userPrompt := buf.String()

	logger.Debug("Calling LLM for PR description", "prompt_length", len(userPrompt))

	session, err := uc.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate LLM content")
	}

	if resp == nil || len(resp.Texts) == 0 {
		return "", goerr.New("LLM failed to generate PR description", goerr.T(types.ErrTagGeneration))
	}

	description := strings.TrimSpace(resp.Texts[0])
	if description == "" {
		return "", goerr.New("LLM failed to generate PR description",
			goerr.T(types.ErrTagGeneration),
			goerr.V("text_count", len(resp.Texts)),
		)
	}

	return description, nil
}

// Package summarizer condenses chunked long-form content into a single
// Traditional Chinese summary with a map-reduce pass over the model.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/gptline/gptline/internal/memory"
	"github.com/gptline/gptline/internal/openai"
)

const (
	systemPrompt  = "你是一個擅長做總結的助理，請用繁體中文回覆。"
	chunkPrompt   = "請總結以下內容的重點：\n%s"
	combinePrompt = "以下是一段內容分段總結的結果，請將它們整合成一份完整的總結：\n%s"
)

// Summarize reduces chunks to one summary. A single chunk is summarized in
// one call; multiple chunks are summarized individually and the partial
// summaries combined in a final call.
func Summarize(ctx context.Context, m openai.Model, modelID string, chunks []string) (gopenai.ChatCompletionResponse, error) {
	switch len(chunks) {
	case 0:
		return gopenai.ChatCompletionResponse{}, errors.New("no content to summarize")
	case 1:
		return complete(ctx, m, modelID, fmt.Sprintf(chunkPrompt, chunks[0]))
	}

	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		resp, err := complete(ctx, m, modelID, fmt.Sprintf(chunkPrompt, chunk))
		if err != nil {
			return gopenai.ChatCompletionResponse{}, err
		}
		_, content, err := openai.RoleAndContent(resp)
		if err != nil {
			return gopenai.ChatCompletionResponse{}, err
		}
		partials = append(partials, content)
	}

	return complete(ctx, m, modelID, fmt.Sprintf(combinePrompt, strings.Join(partials, "\n")))
}

func complete(ctx context.Context, m openai.Model, modelID, prompt string) (gopenai.ChatCompletionResponse, error) {
	messages := []memory.Message{
		{Role: memory.RoleSystem, Content: systemPrompt},
		{Role: memory.RoleUser, Content: prompt},
	}
	return m.ChatCompletions(ctx, messages, modelID)
}

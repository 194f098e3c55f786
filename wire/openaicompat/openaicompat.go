// Package openaicompat projects threads onto the community OpenAI client
// (sashabaranov/go-openai), whose legacy chat message struct matches the
// thread wire format field for field: role, content, name and a single
// function_call per message.
package openaicompat

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// Options configure the chat completion projection.
type Options struct {
	Model       string
	Temperature float32
}

// Messages converts a thread's conversational history one to one into
// legacy chat completion messages. Timestamps and tool call records are
// dropped, matching what the wire accepts.
func Messages(t core.Thread) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(t.Messages))
	for _, m := range t.Messages {
		cm := openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
			Name:    m.Name,
		}
		if m.FunctionCall != nil {
			cm.FunctionCall = &openai.FunctionCall{
				Name:      m.FunctionCall.Name,
				Arguments: m.FunctionCall.Arguments,
			}
		}
		messages = append(messages, cm)
	}
	return messages
}

// Request assembles a chat completion request for the thread.
func Request(t core.Thread, optFns ...func(o *Options)) openai.ChatCompletionRequest {
	opts := Options{
		Model:       openai.GPT4oMini,
		Temperature: 0.7,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return openai.ChatCompletionRequest{
		Model:       opts.Model,
		Messages:    Messages(t),
		Temperature: opts.Temperature,
	}
}

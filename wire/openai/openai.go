// Package openai projects threads onto the OpenAI Chat Completions API
// using the official client's parameter types. It renders request
// parameters only; issuing the call and interpreting the response stay
// with the caller.
package openai

import (
	"fmt"

	"github.com/openai/openai-go"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// Options configure the Chat Completions projection.
// Fields mirror a subset of Chat Completion parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Messages converts a thread's conversational history into OpenAI chat
// messages. Assistant function calls become tool calls and function-role
// replies become tool messages paired to them. Thread messages carry no
// provider call ids, so pairing ids are synthesized in walk order and
// matched back to replies by function name, first come first served.
func Messages(t core.Thread) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	pending := map[string][]string{}
	seq := 0
	for _, m := range t.Messages {
		switch m.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case core.RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		case core.RoleAssistant:
			if m.FunctionCall == nil {
				messages = append(messages, openai.AssistantMessage(m.Content))
				continue
			}
			seq++
			id := callID(m.FunctionCall.Name, seq)
			messages = append(
				messages,
				openai.ChatCompletionMessageParamUnion{OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Role: "assistant",
					ToolCalls: []openai.ChatCompletionMessageToolCallParam{{
						ID:   id,
						Type: "function",
						Function: openai.ChatCompletionMessageToolCallFunctionParam{
							Name:      m.FunctionCall.Name,
							Arguments: m.FunctionCall.Arguments,
						},
					}},
				}},
			)
			pending[m.FunctionCall.Name] = append(pending[m.FunctionCall.Name], id)
		case core.RoleFunction:
			id := m.Name
			if queue := pending[m.Name]; len(queue) > 0 {
				id = queue[0]
				pending[m.Name] = queue[1:]
			}
			messages = append(messages, openai.ToolMessage(m.Content, id))
		default:
			if m.Content != "" {
				messages = append(messages, openai.UserMessage(m.Content))
			}
		}
	}
	return messages
}

// Params assembles Chat Completion request parameters for the thread.
func Params(t core.Thread, optFns ...func(o *Options)) openai.ChatCompletionNewParams {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return openai.ChatCompletionNewParams{
		Messages:            Messages(t),
		Model:               opts.Model,
		Temperature:         openai.Float(opts.Temperature),
		MaxCompletionTokens: openai.Int(opts.MaxCompletionTokens),
	}
}

// callID derives a stable synthetic tool call id from the function name and
// its position in the walk.
func callID(name string, seq int) string {
	return fmt.Sprintf("call_%d_%s", seq, name)
}

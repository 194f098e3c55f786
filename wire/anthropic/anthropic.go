// Package anthropic projects threads onto the Anthropic Messages API using
// the official client's parameter types. System turns are carried
// separately from the message list, matching the API's request shape.
package anthropic

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// Options configure the Messages API projection (model id, temperature,
// max tokens). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
}

// Messages converts a thread's conversational history into Anthropic
// message params. System turns are excluded (see SystemBlocks). Assistant
// function calls become tool_use blocks; function-role replies become
// tool_result blocks on a user turn, paired by synthesized call ids since
// thread messages carry no provider ids of their own.
func Messages(t core.Thread) []anthropic.MessageParam {
	var messages []anthropic.MessageParam
	pending := map[string][]string{}
	seq := 0
	for _, m := range t.Messages {
		switch m.Role {
		case core.RoleSystem:
			continue
		case core.RoleAssistant:
			content := assistantContent(m)
			if m.FunctionCall != nil {
				seq++
				id := callID(m.FunctionCall.Name, seq)
				content = append(content, toolUseBlock(id, *m.FunctionCall))
				pending[m.FunctionCall.Name] = append(pending[m.FunctionCall.Name], id)
			}
			if len(content) > 0 {
				messages = append(messages, anthropic.NewAssistantMessage(content...))
			}
		case core.RoleFunction:
			id := m.Name
			if queue := pending[m.Name]; len(queue) > 0 {
				id = queue[0]
				pending[m.Name] = queue[1:]
			}
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewToolResultBlock(id, m.Content, false)))
		default:
			// User turns, plus unknown roles treated as user.
			if m.Content != "" {
				messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
			}
		}
	}
	return messages
}

// SystemBlocks collects system turns as text blocks for the request's
// system field.
func SystemBlocks(t core.Thread) []anthropic.TextBlockParam {
	var systemBlocks []anthropic.TextBlockParam
	for _, m := range t.Messages {
		if m.Role == core.RoleSystem && m.Content != "" {
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{
				Text: m.Content,
			})
		}
	}
	return systemBlocks
}

// Params assembles Messages API request parameters for the thread.
func Params(t core.Thread, optFns ...func(o *Options)) anthropic.MessageNewParams {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	params := anthropic.MessageNewParams{
		Model:       opts.Model,
		Messages:    Messages(t),
		MaxTokens:   opts.MaxTokens,
		Temperature: anthropic.Float(opts.Temperature),
	}
	if systemBlocks := SystemBlocks(t); len(systemBlocks) > 0 {
		params.System = systemBlocks
	}
	return params
}

func assistantContent(m core.Message) []anthropic.ContentBlockParamUnion {
	var content []anthropic.ContentBlockParamUnion
	if m.Content != "" {
		content = append(content, anthropic.NewTextBlock(m.Content))
	}
	return content
}

// toolUseBlock parses the call's JSON arguments for the tool_use input,
// falling back to the raw string when they do not parse.
func toolUseBlock(id string, fc core.FunctionCall) anthropic.ContentBlockParamUnion {
	var input interface{}
	if fc.Arguments != "" {
		if err := json.Unmarshal([]byte(fc.Arguments), &input); err != nil {
			input = fc.Arguments
		}
	}
	return anthropic.NewToolUseBlock(id, input, fc.Name)
}

func callID(name string, seq int) string {
	return fmt.Sprintf("call_%d_%s", seq, name)
}

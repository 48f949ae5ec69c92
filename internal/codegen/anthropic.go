package codegen

import (
	"fmt"

	"promptnovax/internal/catalog"
)

const anthropicVersion = "2023-06-01"

// defaultAnthropicMaxTokens is used when the config leaves MaxTokens unset:
// the Anthropic messages API requires max_tokens on every request.
const defaultAnthropicMaxTokens = 1024

func anthropicParams(cfg Config) *obj {
	maxTokens := defaultAnthropicMaxTokens
	if cfg.MaxTokens != nil {
		maxTokens = *cfg.MaxTokens
	}

	messages := []any{newObj().set("role", "user").set("content", cfg.UserPrompt)}

	params := newObj().
		set("model", cfg.Model).
		set("max_tokens", maxTokens).
		set("messages", messages)
	if cfg.SystemPrompt != "" {
		params.set("system", cfg.SystemPrompt)
	}
	if cfg.Temperature != nil {
		params.set("temperature", *cfg.Temperature)
	}
	if cfg.TopP != nil {
		params.set("top_p", *cfg.TopP)
	}
	if len(cfg.Stop) > 0 {
		params.set("stop_sequences", cfg.Stop)
	}
	return params
}

func generateAnthropic(cfg Config, format catalog.OutputFormat) string {
	params := anthropicParams(cfg)

	switch format {
	case catalog.FormatRawHTTP:
		return fmt.Sprintf(`const response = await fetch('https://api.anthropic.com/v1/messages', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
    'x-api-key': '%s',
    'anthropic-version': '%s'
  },
  body: JSON.stringify(%s)
})

const data = await response.json()
console.log(data.content[0].text)`, cfg.keyOrPlaceholder(), anthropicVersion, params.indentedJSON())

	case catalog.FormatPython:
		return fmt.Sprintf(`from anthropic import Anthropic

client = Anthropic(api_key="%s")

message = client.messages.create(
%s
)

print(message.content[0].text)`, cfg.keyOrPlaceholder(), params.pythonKwargs())

	case catalog.FormatShell:
		return fmt.Sprintf(`curl https://api.anthropic.com/v1/messages \
  -H "Content-Type: application/json" \
  -H "x-api-key: %s" \
  -H "anthropic-version: %s" \
  -d '%s'`, cfg.keyOrPlaceholder(), anthropicVersion, params.compactJSON())

	case catalog.FormatTypedHTTP:
		return fmt.Sprintf(`const response = await fetch('https://api.anthropic.com/v1/messages', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
    'x-api-key': process.env.ANTHROPIC_API_KEY!,
    'anthropic-version': '%s'
  },
  body: JSON.stringify(%s)
})

const data = await response.json() as { content: Array<{ text: string }> }
console.log(data.content[0].text)`, anthropicVersion, params.indentedJSON())

	case catalog.FormatServerSDK:
		return fmt.Sprintf(`const Anthropic = require('@anthropic-ai/sdk')

const anthropic = new Anthropic({
  apiKey: process.env.ANTHROPIC_API_KEY
})

const message = await anthropic.messages.create(%s)

console.log(message.content[0].text)`, params.indentedJSON())
	}

	return ""
}

package codegen

import (
	"fmt"
	"strings"

	"promptnovax/internal/catalog"
)

// generateOpenAI dispatches on the configured model: DALL·E models get the
// image endpoint, GPT/chat models the chat completions endpoint. Other
// models (e.g. whisper) have no generator and render empty.
func generateOpenAI(cfg Config, format catalog.OutputFormat) string {
	if strings.Contains(cfg.Model, "dall-e") {
		return generateOpenAIImage(cfg, format)
	}
	if strings.Contains(cfg.Model, "gpt") || strings.Contains(cfg.Model, "chat") {
		return generateOpenAIChat(cfg, format)
	}
	return ""
}

func openAIChatParams(cfg Config) *obj {
	var messages []any
	if cfg.SystemPrompt != "" {
		messages = append(messages, newObj().set("role", "system").set("content", cfg.SystemPrompt))
	}
	messages = append(messages, newObj().set("role", "user").set("content", cfg.UserPrompt))

	params := newObj().
		set("model", cfg.Model).
		set("messages", messages)
	if cfg.Temperature != nil {
		params.set("temperature", *cfg.Temperature)
	}
	if cfg.MaxTokens != nil {
		params.set("max_tokens", *cfg.MaxTokens)
	}
	if cfg.TopP != nil {
		params.set("top_p", *cfg.TopP)
	}
	if cfg.FrequencyPenalty != nil {
		params.set("frequency_penalty", *cfg.FrequencyPenalty)
	}
	if cfg.PresencePenalty != nil {
		params.set("presence_penalty", *cfg.PresencePenalty)
	}
	if len(cfg.Stop) > 0 {
		params.set("stop", cfg.Stop)
	}
	return params
}

func generateOpenAIChat(cfg Config, format catalog.OutputFormat) string {
	params := openAIChatParams(cfg)

	switch format {
	case catalog.FormatRawHTTP:
		return fmt.Sprintf(`const response = await fetch('https://api.openai.com/v1/chat/completions', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
    'Authorization': 'Bearer %s'
  },
  body: JSON.stringify(%s)
})

const data = await response.json()
console.log(data.choices[0].message.content)`, cfg.keyOrPlaceholder(), params.indentedJSON())

	case catalog.FormatPython:
		return fmt.Sprintf(`import openai

client = openai.OpenAI(api_key="%s")

response = client.chat.completions.create(
%s
)

print(response.choices[0].message.content)`, cfg.keyOrPlaceholder(), params.pythonKwargs())

	case catalog.FormatShell:
		return fmt.Sprintf(`curl https://api.openai.com/v1/chat/completions \
  -H "Content-Type: application/json" \
  -H "Authorization: Bearer %s" \
  -d '%s'`, cfg.keyOrPlaceholder(), params.compactJSON())

	case catalog.FormatTypedHTTP:
		return fmt.Sprintf(`interface Message {
  role: 'system' | 'user' | 'assistant'
  content: string
}

const response = await fetch('https://api.openai.com/v1/chat/completions', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
    'Authorization': `+"`Bearer ${process.env.OPENAI_API_KEY}`"+`
  },
  body: JSON.stringify(%s)
})

const data = await response.json() as { choices: Array<{ message: Message }> }
console.log(data.choices[0].message.content)`, params.indentedJSON())

	case catalog.FormatServerSDK:
		return fmt.Sprintf(`const OpenAI = require('openai')

const openai = new OpenAI({
  apiKey: process.env.OPENAI_API_KEY
})

const completion = await openai.chat.completions.create(%s)

console.log(completion.choices[0].message.content)`, params.indentedJSON())
	}

	return ""
}

func generateOpenAIImage(cfg Config, format catalog.OutputFormat) string {
	params := newObj().
		set("prompt", cfg.UserPrompt).
		set("n", 1)
	if cfg.Size != "" {
		params.set("size", cfg.Size)
	}
	if cfg.Quality != "" {
		params.set("quality", cfg.Quality)
	}
	if cfg.Style != "" {
		params.set("style", cfg.Style)
	}

	switch format {
	case catalog.FormatRawHTTP:
		return fmt.Sprintf(`const response = await fetch('https://api.openai.com/v1/images/generations', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
    'Authorization': 'Bearer %s'
  },
  body: JSON.stringify(%s)
})

const data = await response.json()
console.log(data.data[0].url)`, cfg.keyOrPlaceholder(), params.indentedJSON())

	case catalog.FormatPython:
		return fmt.Sprintf(`import openai

client = openai.OpenAI(api_key="%s")

response = client.images.generate(
%s
)

print(response.data[0].url)`, cfg.keyOrPlaceholder(), params.pythonKwargs())

	case catalog.FormatShell:
		return fmt.Sprintf(`curl https://api.openai.com/v1/images/generations \
  -H "Content-Type: application/json" \
  -H "Authorization: Bearer %s" \
  -d '%s'`, cfg.keyOrPlaceholder(), params.compactJSON())
	}

	return ""
}

package codegen

import (
	"fmt"

	"promptnovax/internal/catalog"
)

func googleParams(cfg Config) *obj {
	parts := []any{newObj().set("text", cfg.UserPrompt)}
	contents := []any{newObj().set("parts", parts).set("role", "user")}

	params := newObj().set("contents", contents)
	if cfg.SystemPrompt != "" {
		systemParts := []any{newObj().set("text", cfg.SystemPrompt)}
		params.set("systemInstruction", newObj().set("parts", systemParts))
	}
	if cfg.Temperature != nil {
		params.set("temperature", *cfg.Temperature)
	}
	if cfg.MaxTokens != nil {
		params.set("maxOutputTokens", *cfg.MaxTokens)
	}
	if cfg.TopP != nil {
		params.set("topP", *cfg.TopP)
	}
	if len(cfg.Stop) > 0 {
		params.set("stopSequences", cfg.Stop)
	}
	return params
}

// generateGoogle renders Gemini generateContent requests. The API key rides
// in the URL query string, so only the key-inlining formats are implemented.
func generateGoogle(cfg Config, format catalog.OutputFormat) string {
	params := googleParams(cfg)

	switch format {
	case catalog.FormatRawHTTP:
		return fmt.Sprintf(`const response = await fetch(`+"`https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s`"+`, {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json'
  },
  body: JSON.stringify(%s)
})

const data = await response.json()
console.log(data.candidates[0].content.parts[0].text)`, cfg.Model, cfg.keyOrPlaceholder(), params.indentedJSON())

	case catalog.FormatPython:
		return fmt.Sprintf(`import google.generativeai as genai

genai.configure(api_key="%s")

model = genai.GenerativeModel('%s')
response = model.generate_content(
%s
)

print(response.text)`, cfg.keyOrPlaceholder(), cfg.Model, params.pythonKwargs())

	case catalog.FormatShell:
		return fmt.Sprintf(`curl "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s" \
  -H "Content-Type: application/json" \
  -d '%s'`, cfg.Model, cfg.keyOrPlaceholder(), params.compactJSON())
	}

	return ""
}

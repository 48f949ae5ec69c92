package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"promptnovax/internal/catalog"
)

const stabilityEndpoint = "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

func stabilityParams(cfg Config) *obj {
	params := newObj().
		set("text_prompts", []any{newObj().set("text", cfg.UserPrompt)}).
		set("cfg_scale", 7).
		set("steps", 30)

	// A "WxH" size string maps to separate width/height integers.
	if cfg.Size != "" {
		if width, height, ok := splitSize(cfg.Size); ok {
			params.set("width", width)
			params.set("height", height)
		}
	}
	return params
}

func splitSize(size string) (int, int, bool) {
	parts := strings.SplitN(size, "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

func generateStability(cfg Config, format catalog.OutputFormat) string {
	params := stabilityParams(cfg)

	switch format {
	case catalog.FormatRawHTTP:
		return fmt.Sprintf(`const response = await fetch('%s', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
    'Authorization': 'Bearer %s'
  },
  body: JSON.stringify(%s)
})

const data = await response.json()
console.log(data.artifacts[0].base64)`, stabilityEndpoint, cfg.keyOrPlaceholder(), params.indentedJSON())

	case catalog.FormatPython:
		return fmt.Sprintf(`import requests

response = requests.post(
    '%s',
    headers={
        'Authorization': f'Bearer %s',
        'Content-Type': 'application/json'
    },
    json=%s
)

data = response.json()
print(data['artifacts'][0]['base64'])`, stabilityEndpoint, cfg.keyOrPlaceholder(), params.indentedJSON())

	case catalog.FormatShell:
		return fmt.Sprintf(`curl %s \
  -H "Content-Type: application/json" \
  -H "Authorization: Bearer %s" \
  -d '%s'`, stabilityEndpoint, cfg.keyOrPlaceholder(), params.compactJSON())
	}

	return ""
}

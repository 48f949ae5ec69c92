package codegen

import (
	"fmt"

	"promptnovax/internal/catalog"
)

const videoEndpoint = "https://api.runwayml.com/v1/image-to-video"

func videoParams(cfg Config) *obj {
	params := newObj().set("prompt", cfg.UserPrompt)
	if cfg.Duration != nil {
		params.set("duration", *cfg.Duration)
	}
	if cfg.AspectRatio != "" {
		params.set("aspect_ratio", cfg.AspectRatio)
	}
	return params
}

// generateVideo renders Runway-style image-to-video requests; the replicate
// provider currently routes here.
func generateVideo(cfg Config, format catalog.OutputFormat) string {
	params := videoParams(cfg)

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
console.log(data.video_url)`, videoEndpoint, cfg.keyOrPlaceholder(), params.indentedJSON())

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
print(data['video_url'])`, videoEndpoint, cfg.keyOrPlaceholder(), params.indentedJSON())

	case catalog.FormatShell:
		return fmt.Sprintf(`curl %s \
  -H "Content-Type: application/json" \
  -H "Authorization: Bearer %s" \
  -d '%s'`, videoEndpoint, cfg.keyOrPlaceholder(), params.compactJSON())
	}

	return ""
}

package catalog

// order fixes the registration order of providers. Recommendation scoring
// relies on it for stable tie-breaking.
var order = []ProviderID{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderOpenRouter,
	ProviderHuggingFace,
	ProviderMistral,
	ProviderGoogle,
	ProviderCohere,
	ProviderStability,
	ProviderMidjourney,
	ProviderReplicate,
}

var descriptors = map[ProviderID]*Descriptor{
	ProviderOpenAI: {
		ID:          ProviderOpenAI,
		Name:        "OpenAI",
		Description: "GPT-4o, GPT-4o Mini, GPT-3.5, DALL·E, Whisper",
		Website:     "https://platform.openai.com",
		APIKeyURL:   "https://platform.openai.com/api-keys",
		Models:      []string{"gpt-4o-mini", "gpt-4o", "gpt-4-turbo", "gpt-4", "gpt-3.5-turbo", "dall-e-3", "dall-e-2", "whisper-1"},
		Supports:    Capabilities{Text: true, Image: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.00001, PerImage: 0.04, Notes: "Varies by model"},
	},
	ProviderAnthropic: {
		ID:          ProviderAnthropic,
		Name:        "Anthropic",
		Description: "Claude 3 Opus, Sonnet, Haiku",
		Website:     "https://www.anthropic.com",
		APIKeyURL:   "https://console.anthropic.com/settings/keys",
		Models:      []string{"claude-3-opus-20240229", "claude-3-sonnet-20240229", "claude-3-haiku-20240307"},
		Supports:    Capabilities{Text: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.000015, Notes: "Varies by model tier"},
	},
	ProviderOpenRouter: {
		ID:          ProviderOpenRouter,
		Name:        "OpenRouter",
		Description: "Unified API for 100+ models",
		Website:     "https://openrouter.ai",
		APIKeyURL:   "https://openrouter.ai/keys",
		Models:      []string{"gpt-4", "claude-3-opus", "llama-2-70b", "mistral-7b", "palm-2"},
		Supports:    Capabilities{Text: true, Image: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.000008, Notes: "Aggregated pricing across providers"},
	},
	ProviderHuggingFace: {
		ID:          ProviderHuggingFace,
		Name:        "Hugging Face",
		Description: "Open-source models & Inference API",
		Website:     "https://huggingface.co",
		APIKeyURL:   "https://huggingface.co/settings/tokens",
		Models:      []string{"meta-llama/Llama-2-70b-chat-hf", "mistralai/Mistral-7B-Instruct-v0.1", "stabilityai/stable-diffusion-xl-base-1.0"},
		Supports:    Capabilities{Text: true, Image: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.000005, Notes: "Free tier available, pay-per-use"},
	},
	ProviderMistral: {
		ID:          ProviderMistral,
		Name:        "Mistral AI",
		Description: "Mistral 7B, Mixtral 8x7B",
		Website:     "https://mistral.ai",
		APIKeyURL:   "https://console.mistral.ai/api-keys/",
		Models:      []string{"mistral-large", "mistral-medium", "mistral-small", "mixtral-8x7b"},
		Supports:    Capabilities{Text: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.000007},
	},
	ProviderGoogle: {
		ID:          ProviderGoogle,
		Name:        "Google AI",
		Description: "Gemini Pro, PaLM 2",
		Website:     "https://ai.google.dev",
		APIKeyURL:   "https://makersuite.google.com/app/apikey",
		Models:      []string{"gemini-pro", "gemini-pro-vision", "palm-2"},
		Supports:    Capabilities{Text: true, Image: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.000002, Notes: "Generous free tier"},
	},
	ProviderCohere: {
		ID:          ProviderCohere,
		Name:        "Cohere",
		Description: "Command, Embed, Classify",
		Website:     "https://cohere.com",
		APIKeyURL:   "https://dashboard.cohere.com/api-keys",
		Models:      []string{"command", "command-light", "embed-english-v3.0"},
		Supports:    Capabilities{Text: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.00001},
	},
	ProviderStability: {
		ID:          ProviderStability,
		Name:        "Stability AI",
		Description: "Stable Diffusion, StableLM",
		Website:     "https://stability.ai",
		APIKeyURL:   "https://platform.stability.ai/account/keys",
		Models:      []string{"stable-diffusion-xl-1024-v1-0", "stable-diffusion-v1-6", "stablelm-tuned-alpha-7b"},
		Supports:    Capabilities{Text: true, Image: true, Chat: true},
		Pricing:     &Pricing{PerImage: 0.02, Notes: "Per image generation"},
	},
	ProviderMidjourney: {
		ID:          ProviderMidjourney,
		Name:        "Midjourney",
		Description: "AI image generation",
		Website:     "https://www.midjourney.com",
		APIKeyURL:   "https://www.midjourney.com/account",
		Models:      []string{"midjourney-v6", "midjourney-v5"},
		Supports:    Capabilities{Image: true},
		Pricing:     &Pricing{PerImage: 0.05, Notes: "Subscription-based"},
	},
	ProviderReplicate: {
		ID:          ProviderReplicate,
		Name:        "Replicate",
		Description: "Run open-source models",
		Website:     "https://replicate.com",
		APIKeyURL:   "https://replicate.com/account/api-tokens",
		Models:      []string{"llama-2-70b", "stable-diffusion", "whisper"},
		Supports:    Capabilities{Text: true, Image: true, Code: true, Chat: true},
		Pricing:     &Pricing{PerToken: 0.00001, Notes: "Pay-per-second of compute"},
	},
}

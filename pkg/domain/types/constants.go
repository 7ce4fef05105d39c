package types

// BaseBranch is the branch every feature branch is compared against
const BaseBranch = "main"

// DefaultOpenAIModel is the completion model used unless overridden
const DefaultOpenAIModel = "gpt-3.5-turbo-1106"

// Sampling settings for description generation
const (
	GenerationTemperature float32 = 0.5
	GenerationMaxTokens           = 1024
)

package metadata

type GeminiModel struct {
	ID                      string
	Label                   string
	InputPerMillion         float64
	OutputPerMillion        float64
	ReasoningBilledAsOutput bool
	SupportsThinking        bool
}

var GeminiModels = []GeminiModel{
	{
		ID:               "gemini-flash-lite",
		Label:            "Gemini Flash-Lite (latest alias)",
		InputPerMillion:  0.10,
		OutputPerMillion: 0.40,
	},
	{
		ID:                      "gemini-2.5-flash-lite",
		Label:                   "Gemini 2.5 Flash-Lite",
		InputPerMillion:         0.10,
		OutputPerMillion:        0.40,
		ReasoningBilledAsOutput: true,
		SupportsThinking:        true,
	},
	{
		ID:                      "gemini-2.5-flash",
		Label:                   "Gemini 2.5 Flash",
		InputPerMillion:         0.30,
		OutputPerMillion:        2.50,
		ReasoningBilledAsOutput: true,
		SupportsThinking:        true,
	},
	{
		ID:                      "gemini-2.5-pro",
		Label:                   "Gemini 2.5 Pro",
		InputPerMillion:         1.25,
		OutputPerMillion:        10.00,
		ReasoningBilledAsOutput: true,
		SupportsThinking:        true,
	},
}

const (
	DefaultGeminiInputPerMillion  = 0.30
	DefaultGeminiOutputPerMillion = 2.50
)

func GeminiModelIDs() []string {
	ids := make([]string, 0, len(GeminiModels))
	for _, m := range GeminiModels {
		ids = append(ids, m.ID)
	}
	return ids
}

func GeminiPricing(modelID string) (GeminiModel, bool) {
	for _, m := range GeminiModels {
		if m.ID == modelID {
			return m, true
		}
	}
	return GeminiModel{
		ID:                      "default",
		Label:                   "Default Gemini",
		InputPerMillion:         DefaultGeminiInputPerMillion,
		OutputPerMillion:        DefaultGeminiOutputPerMillion,
		ReasoningBilledAsOutput: true,
	}, false
}

// EstimateCost returns the USD cost of one call. Thinking tokens are billed
// as output when the model says so.
func EstimateCost(modelID string, promptTokens, candidateTokens, thoughtTokens int) float64 {
	pricing, _ := GeminiPricing(modelID)
	output := candidateTokens
	if pricing.ReasoningBilledAsOutput {
		output += thoughtTokens
	}
	return (float64(promptTokens)/1_000_000)*pricing.InputPerMillion +
		(float64(output)/1_000_000)*pricing.OutputPerMillion
}

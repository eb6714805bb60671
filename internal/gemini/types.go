package gemini

// Part is a single fragment of a message or candidate.
type Part struct {
	Text string `json:"text"`
}

// Content is one role-tagged message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GoogleSearch enables search grounding; it serializes as an empty object.
type GoogleSearch struct{}

type Tool struct {
	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`
}

type ThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type GenerationConfig struct {
	Temperature    float64         `json:"temperature"`
	ThinkingConfig *ThinkingConfig `json:"thinkingConfig,omitempty"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// GenerateContentRequest is the JSON body sent to models/{model}:generateContent.
type GenerateContentRequest struct {
	Contents          []Content        `json:"contents"`
	Tools             []Tool           `json:"tools,omitempty"`
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
	SafetySettings    []SafetySetting  `json:"safetySettings"`
}

// Candidate is one generated response option.
type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// UsageMetadata holds token usage information.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	ThoughtsTokenCount   int `json:"thoughtsTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// GenerateContentResponse is the subset of the response body we read.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

const (
	thresholdBlockNone = "BLOCK_NONE"
)

// safetySettings disables filtering on every category the API exposes for text.
var safetySettings = []SafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: thresholdBlockNone},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: thresholdBlockNone},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: thresholdBlockNone},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: thresholdBlockNone},
}

package gemini

import (
	"fmt"
	"strings"
)

// Placement decides where the system protocol goes in the request.
type Placement int

const (
	// PlacementUserTurn sends the protocol as a leading user message.
	PlacementUserTurn Placement = iota
	// PlacementSystemInstruction sends it in the systemInstruction field.
	PlacementSystemInstruction
)

// Variant bundles the prompt shape and defaults of one plugin flavour.
type Variant struct {
	Name               string
	DefaultModel       string
	DefaultTemperature float64
	Placement          Placement
	// Prompt renders the user turn that carries the source text.
	Prompt func(text, from, to string) string
}

var (
	VariantClassic = Variant{
		Name:               "classic",
		DefaultModel:       "gemini-flash-lite",
		DefaultTemperature: 1.0,
		Placement:          PlacementUserTurn,
		Prompt:             quotedPrompt,
	}

	VariantInstruct = Variant{
		Name:               "instruct",
		DefaultModel:       "gemini-2.5-flash-lite",
		DefaultTemperature: 0.3,
		Placement:          PlacementSystemInstruction,
		Prompt:             inlinePrompt,
	}

	// DefaultVariant is used when Options.Variant is the zero value.
	DefaultVariant = VariantInstruct
)

// Variants lists the built-in variants in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantInstruct}
}

func (v Variant) isZero() bool {
	return v.Prompt == nil
}

func quotedPrompt(text, from, to string) string {
	return strings.TrimSpace(fmt.Sprintf("\n\"%s\"\n\nTranslate the above text from %s to %s.\n", text, from, to))
}

func inlinePrompt(text, from, to string) string {
	return fmt.Sprintf("Translate from %s to %s: \n%s", from, to, text)
}

// protocolLabels code-quotes the bracketed section names, which a raw string
// literal cannot carry itself.
var protocolLabels = strings.NewReplacer(
	"[Source Language]", "`[Source Language]`",
	"[Target Language]", "`[Target Language]`",
	"[Source Text]", "`[Source Text]`",
	"[Translation Directives]", "`[Translation Directives]`",
	"[Output Constraints]", "`[Output Constraints]`",
)

// SystemProtocol is the fixed instruction block describing translation-only behavior.
var SystemProtocol = protocolLabels.Replace(systemProtocolText)

const systemProtocolText = `## SYSTEM PROTOCOL: HEADLESS TRANSLATION ENGINE ##

# 1. FUNCTION
Your sole function is to serve as a high-fidelity, text-to-text translation engine. You operate as a headless service. You do not have a personality. You do not interact. You only process.

# 2. EXECUTION FLOW
1.  Receive [Source Language], [Target Language], and [Source Text] from the user input.
2.  Execute translation according to the [Translation Directives] below.
3.  Generate the final output strictly adhering to the [Output Constraints].

# 3. TRANSLATION DIRECTIVES
*   **Semantic Equivalence**: The translation must precisely match the semantic meaning of the [Source Text]. No information may be added or omitted.
*   **Idiomatic Fidelity**: The output must be perfectly natural and idiomatic in the [Target Language]. All traces of machine translation or awkward phrasing must be eliminated.
*   **Contextual Integrity**: The tone, register (formal/informal), and specific context of the [Source Text] must be fully preserved.
*   **Formatting Preservation**: Original formatting within the [Source Text], such as line breaks, tabs, or markdown, must be preserved in the output if it is relevant to the structure of the text.

# 4. OUTPUT CONSTRAINTS
*   **ABSOLUTE RULE**: The output MUST be the translated text and NOTHING else.
*   **MUST NOT**: Under NO circumstances should the output contain any of the following:
    *   Prefaces or introductions (e.g., "Here is the translation:", "好的，译文是：").
    *   Postscripts or summaries (e.g., "This translation maintains...", "希望您满意。").
    *   Any form of conversational filler, greetings, or apologies.
    *   Explanations about the translation process or word choices.
    *   Any text that is not the direct translation of the [Source Text].
*   The response body must begin with the first character of the translated text and end with its last character.

---
### TEST CASES

**User Input:**
Translate from English to Chinese: This is a comprehensive guide on advanced programming techniques.

**Your Output:**
这是一本关于高级编程技术的综合指南。

**User Input:**
Translate from Chinese to German: 你好，世界！

**Your Output:**
Hallo Welt!

**User Input:**
Translate from English to French:
Project Status:
- Task A: Completed
- Task B: In Progress

**Your Output:**
État du Projet :
- Tâche A : Terminé
- Tâche B : En cours
---

Engine activated. Awaiting input.`

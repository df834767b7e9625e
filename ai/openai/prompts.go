package openai

import (
	"fmt"
	"strings"
)

const recognitionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {
            "type": "string"
          },
          "type": {
            "type": "string"
          },
          "confidence": {
            "type": "number",
            "minimum": 0,
            "maximum": 1
          }
        },
        "required": ["text", "type", "confidence"],
        "additionalProperties": false
      }
    }
  },
  "required": ["entities"],
  "additionalProperties": false
}`

const recognitionPromptTemplate = `Recognize the named entities in the given text and return them as JSON.

The input is a short search keyword of 1-8 words. It may lack capitalization,
punctuation, and grammar. Treat it as ordinary text.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "text" must be a verbatim span of the input; never paraphrase or correct it.
- "type" must match exactly one of the listed values: %s.
- "confidence" is a number from 0 (guess) to 1 (certain).
- Preserve the order in which entities appear in the input.
- Include only entities that actually appear in the text. Do not hallucinate.
- If no entities can be identified, return "entities": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example (brand and product):
Input: "nike running shoes sale"
Output:
{
  "entities": [
    {"text":"nike","type":"organization","confidence":0.95},
    {"text":"running shoes","type":"product","confidence":0.85}
  ]
}

Example (place name):
Input: "best pizza near chicago"
Output:
{
  "entities": [
    {"text":"pizza","type":"product","confidence":0.8},
    {"text":"chicago","type":"location","confidence":0.95}
  ]
}

Example (no entities):
Input: "how to apologize"
Output:
{
  "entities": []
}`

// buildSystemPrompt creates the system prompt with the entity vocabulary embedded.
func buildSystemPrompt(entityTypes []string) string {
	return fmt.Sprintf(recognitionPromptTemplate,
		recognitionResponseSchema,
		strings.Join(entityTypes, ", "))
}

package websum

import "fmt"

// SystemPrompt is the fixed instruction sent with every completion request.
const SystemPrompt = "You are a helpful assistant that summarizes website content in the form of a json."

// userPromptFormat fixes the exact output schema. The model must return a
// single JSON object and nothing else; ParseAnalysis rejects anything that
// does not conform.
const userPromptFormat = `Summarize the following website content and return ONLY a single valid JSON object that exactly matches the schema below. Do not include any explanations, notes, or markdown - only the JSON object.

Website content:
%s

Required JSON schema (provide this exact structure; use null or [] when unknown):
{
  "category": "string, primary category of the website (e.g., \"news\", \"e-commerce\", \"blog\", \"documentation\", \"education\")",
  "summary": "string, concise summary (2-4 sentences)",
  "subjects": ["array of strings, main subjects/topics"],
  "contextual_analysis": {
    "audience": "string or null, intended audience (e.g., \"developers\", \"general public\")",
    "tone": "string or null (e.g., \"formal\", \"informal\", \"promotional\")",
    "purpose": "string or null (e.g., \"inform\", \"sell\", \"entertain\", \"instruct\")",
    "notable_features": ["array of strings, notable features or elements"]
  }
}

Rules:
- Output must be valid JSON parsable by a JSON parser.
- Use null for unknown string fields and [] for unknown lists.
- Keep values concise.
- Do not output any additional keys or metadata.`

// BuildUserPrompt builds the user message containing the reduced page text.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf(userPromptFormat, text)
}

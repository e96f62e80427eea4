package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"jobbuddy-utils/pkg/models"
)

// MalformedOutputError reports model output that could not be normalized
// into the documented JSON shape.
type MalformedOutputError struct {
	Assistant string
	Reason    string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("%s: malformed model output: %s", e.Assistant, e.Reason)
}

// cleanModelJSON strips markdown code fences the model sometimes wraps
// around its JSON despite instructions.
func cleanModelJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

const listingSchema = `{
  "type": "object",
  "required": [
    "Position Name", "Position Overview", "About the Role",
    "Key Responsibilities", "Required Skills & Experience",
    "Highly Valued Experience", "Soft Skills", "Benefits"
  ],
  "properties": {
    "Position Name": {"type": ["string", "null"]},
    "Position Overview": {"type": ["string", "null"]},
    "About the Role": {"type": ["string", "null"]},
    "Key Responsibilities": {"type": "array", "items": {"type": "string"}},
    "Required Skills & Experience": {"type": "array", "items": {"type": "string"}},
    "Highly Valued Experience": {"type": ["string", "null"]},
    "Soft Skills": {"type": "array", "items": {"type": "string"}},
    "Benefits": {"type": ["string", "null"]}
  }
}`

const resumeSchema = `{
  "type": "object",
  "required": [
    "Contact Information", "Professional Summary", "Skills",
    "Work Experience", "Education", "Certifications", "Projects",
    "Areas of Expertise", "Career Highlights", "Assessment"
  ],
  "properties": {
    "Assessment": {
      "type": "object",
      "required": ["Strengths", "Areas for Improvement", "ATS Score", "ATS Suggestions"]
    }
  }
}`

var (
	listingSchemaLoader = gojsonschema.NewStringLoader(listingSchema)
	resumeSchemaLoader  = gojsonschema.NewStringLoader(resumeSchema)
)

// normalizeListing parses raw summarizer output and coerces it into the
// eight-key listing document: every key present, list keys always arrays.
// The result is validated against the listing schema before returning.
func normalizeListing(assistant, raw string) (json.RawMessage, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &doc); err != nil {
		return nil, &MalformedOutputError{Assistant: assistant, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	normalized := make(map[string]interface{}, len(models.ListingKeys))
	for _, key := range models.ListingKeys {
		value, ok := doc[key]
		if models.ListingListKeys[key] {
			normalized[key] = coerceStringList(value)
			continue
		}
		if !ok {
			normalized[key] = nil
			continue
		}
		normalized[key] = coerceText(value)
	}

	result, err := gojsonschema.Validate(listingSchemaLoader, gojsonschema.NewGoLoader(normalized))
	if err != nil {
		return nil, &MalformedOutputError{Assistant: assistant, Reason: err.Error()}
	}
	if !result.Valid() {
		return nil, &MalformedOutputError{Assistant: assistant, Reason: schemaErrors(result)}
	}

	return json.Marshal(normalized)
}

// normalizeResume parses raw analyzer output and guarantees every resume
// section key and the assessment block exist. Section values keep whatever
// structure the model produced; only presence is enforced.
func normalizeResume(assistant, raw string) (json.RawMessage, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &doc); err != nil {
		return nil, &MalformedOutputError{Assistant: assistant, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	normalized := make(map[string]interface{}, len(models.ResumeKeys))
	for _, key := range models.ResumeKeys {
		if value, ok := doc[key]; ok {
			normalized[key] = value
		} else {
			normalized[key] = nil
		}
	}

	assessment, ok := normalized["Assessment"].(map[string]interface{})
	if !ok {
		assessment = make(map[string]interface{}, len(models.AssessmentKeys))
	}
	for _, key := range models.AssessmentKeys {
		if _, ok := assessment[key]; !ok {
			assessment[key] = nil
		}
	}
	normalized["Assessment"] = assessment

	result, err := gojsonschema.Validate(resumeSchemaLoader, gojsonschema.NewGoLoader(normalized))
	if err != nil {
		return nil, &MalformedOutputError{Assistant: assistant, Reason: err.Error()}
	}
	if !result.Valid() {
		return nil, &MalformedOutputError{Assistant: assistant, Reason: schemaErrors(result)}
	}

	return json.Marshal(normalized)
}

// coerceStringList turns model output into a clean []string: arrays keep
// their string items, a bare string becomes a one-element list, anything
// else becomes an empty list.
func coerceStringList(value interface{}) []string {
	switch v := value.(type) {
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{}
	}
}

// coerceText flattens stray arrays into newline-joined text; text fields
// stay text even when the model emits a list.
func coerceText(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return nil
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func schemaErrors(result *gojsonschema.Result) string {
	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return strings.Join(errs, "; ")
}

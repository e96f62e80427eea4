package prompts

import (
	"fmt"
	"regexp"
	"strings"
)

// Template is an immutable persona instruction document with named
// interpolation slots and the default generation parameters for the persona.
type Template struct {
	ID          string
	System      string
	Temperature float32
	Streaming   bool
}

// MissingSlotError indicates a required placeholder had no supplied value.
// This is a configuration defect, not a user error; callers fail fast on it.
type MissingSlotError struct {
	TemplateID string
	Slot       string
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("template %s: no value supplied for slot %q", e.TemplateID, e.Slot)
}

// UnknownTemplateError indicates a render was requested for an unregistered persona
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown prompt template: %s", e.TemplateID)
}

var slotPattern = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

// Render interpolates the named template with the supplied values. Every
// placeholder must receive a value; a leftover slot yields MissingSlotError.
// Pure function, no side effects.
func Render(templateID string, values map[string]string) (string, error) {
	tmpl, ok := registry[templateID]
	if !ok {
		return "", &UnknownTemplateError{TemplateID: templateID}
	}

	return renderText(templateID, tmpl.System, values)
}

// Lookup returns the registered template for a persona
func Lookup(templateID string) (Template, bool) {
	tmpl, ok := registry[templateID]
	return tmpl, ok
}

// TemplateIDs returns the registered persona template identifiers
func TemplateIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

func renderText(templateID, text string, values map[string]string) (string, error) {
	// Required slots come from the template text, never from the rendered
	// output. Supplied values may legitimately contain brace sequences
	// (scraped listings, pasted profiles) and must pass through untouched.
	for _, match := range slotPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := values[match[1]]; !ok {
			return "", &MissingSlotError{TemplateID: templateID, Slot: match[1]}
		}
	}

	rendered := text
	for slot, value := range values {
		rendered = strings.ReplaceAll(rendered, "{{"+slot+"}}", value)
	}

	return rendered, nil
}

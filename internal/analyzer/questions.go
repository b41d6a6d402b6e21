package analyzer

import (
	"encoding/json"
	"errors"
)

// QuestionShape tags which of the three documented payload shapes the
// backend used for the questions field.
type QuestionShape int

const (
	ShapeUnknown QuestionShape = iota
	// ShapeList is a genuine JSON array of question strings.
	ShapeList
	// ShapeEncodedList is a JSON string whose content is itself a JSON
	// array of question strings.
	ShapeEncodedList
	// ShapeOpaque is a plain string that does not parse as JSON; it is
	// kept verbatim as a single-element list.
	ShapeOpaque
)

// ErrUnexpectedShape reports a questions payload outside the three
// documented shapes. Callers treat it as non-fatal: the question list
// stays empty and the notice is shown inline.
var ErrUnexpectedShape = errors.New("unexpected questions payload shape")

// ParseQuestions maps the raw questions field to a question list.
// Exactly three shapes are accepted; anything else is an error rather
// than a guess.
func ParseQuestions(raw json.RawMessage) ([]string, QuestionShape, error) {
	if len(raw) == 0 {
		return nil, ShapeUnknown, ErrUnexpectedShape
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, ShapeList, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		var inner []string
		if err := json.Unmarshal([]byte(encoded), &inner); err == nil {
			return inner, ShapeEncodedList, nil
		}
		return []string{encoded}, ShapeOpaque, nil
	}

	return nil, ShapeUnknown, ErrUnexpectedShape
}

package tailor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// OutcomeKind discriminates what a parser strategy produced.
type OutcomeKind int

const (
	// OutcomeParsed means the strategy produced at least one field.
	OutcomeParsed OutcomeKind = iota
	// OutcomeEmpty means the strategy found nothing to parse.
	OutcomeEmpty
	// OutcomeMalformed means the strategy found a candidate that failed to parse.
	OutcomeMalformed
)

// Outcome is the explicit result of a single parser strategy.
type Outcome struct {
	Kind   OutcomeKind
	Fields map[string]json.RawMessage
	Reason string
}

type strategy func(text string) Outcome

// Strategies run in priority order; the first Parsed outcome wins.
var strategies = []strategy{parseFencedBlocks, parseBraceSpan}

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// parseFencedBlocks scans for ```json fenced blocks and shallow-merges every
// block that parses as an object. Later blocks overwrite earlier keys.
func parseFencedBlocks(text string) Outcome {
	matches := fencedJSON.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return Outcome{Kind: OutcomeEmpty}
	}
	merged := make(map[string]json.RawMessage)
	for _, m := range matches {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(m[1]), &obj); err != nil {
			continue
		}
		for k, v := range obj {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return Outcome{Kind: OutcomeEmpty}
	}
	return Outcome{Kind: OutcomeParsed, Fields: merged}
}

// parseBraceSpan falls back to the substring between the first "{" and the
// last "}" in the raw text.
func parseBraceSpan(text string) Outcome {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return Outcome{Kind: OutcomeEmpty}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return Outcome{Kind: OutcomeMalformed, Reason: err.Error()}
	}
	if len(obj) == 0 {
		return Outcome{Kind: OutcomeEmpty}
	}
	return Outcome{Kind: OutcomeParsed, Fields: obj}
}

// ExtractResult pulls a Result out of free-form model output. The model may
// wrap its JSON in commentary or code fences; strategies are tried in
// priority order until one yields fields.
func ExtractResult(text string) (Result, error) {
	for _, s := range strategies {
		out := s(text)
		if out.Kind != OutcomeParsed {
			continue
		}
		return decodeResult(out.Fields), nil
	}
	return Result{}, ErrNoJSON
}

// decodeResult is deliberately lenient: fields with unexpected types are
// dropped rather than failing the whole response.
func decodeResult(fields map[string]json.RawMessage) Result {
	var res Result
	if raw, ok := fields["files"]; ok {
		var meta FileMeta
		if err := json.Unmarshal(raw, &meta); err == nil {
			res.Files = &meta
		}
	}
	if raw, ok := fields["rewrittenResume"]; ok {
		_ = json.Unmarshal(raw, &res.RewrittenResume)
	}
	if raw, ok := fields["coverLetter"]; ok {
		_ = json.Unmarshal(raw, &res.CoverLetter)
	}
	return res
}

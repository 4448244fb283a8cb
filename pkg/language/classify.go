// Package language guesses the language of a snippet body.
//
// Classification is a first-match-wins walk over an ordered rule list
// evaluated against the lower-cased text. It only looks at substrings, so
// it is cheap and deterministic but will misclassify some inputs.
package language

import "strings"

// Tags produced by the classifier.
const (
	Python     = "python"
	Rust       = "rust"
	Go         = "go"
	Java       = "java"
	CSharp     = "csharp"
	Cpp        = "cpp"
	HTML       = "html"
	SQL        = "sql"
	JSON       = "json"
	TypeScript = "typescript"
	JavaScript = "javascript"
	CSS        = "css"
)

// Default is returned when no rule matches.
const Default = JavaScript

// sample is the text a rule looks at.
type sample struct {
	lower   string
	trimmed string
}

func (s sample) has(subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s.lower, sub) {
			return false
		}
	}
	return true
}

func (s sample) hasAny(subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s.lower, sub) {
			return true
		}
	}
	return false
}

// rule maps a predicate to a tag. A rule may compute the tag itself.
type rule struct {
	match func(s sample) bool
	tag   func(s sample) string
}

func fixed(tag string) func(sample) string {
	return func(sample) string { return tag }
}

// rules are evaluated top to bottom; order is the tie-break.
var rules = []rule{
	{
		match: func(s sample) bool { return s.has("def ", ":") && !s.has("{") },
		tag:   fixed(Python),
	},
	{
		match: func(s sample) bool { return s.has("fn ", "->") },
		tag:   fixed(Rust),
	},
	{
		match: func(s sample) bool { return s.has("func ", "package ") },
		tag:   fixed(Go),
	},
	{
		match: func(s sample) bool { return s.hasAny("public class ", "private class ") },
		tag:   fixed(Java),
	},
	{
		match: func(s sample) bool { return s.has("namespace ", "using ") },
		tag:   fixed(CSharp),
	},
	{
		match: func(s sample) bool { return s.has("#include") },
		tag:   fixed(Cpp),
	},
	{
		match: func(s sample) bool { return s.hasAny("<html", "<!doctype") },
		tag:   fixed(HTML),
	},
	{
		match: func(s sample) bool { return s.has("select ", "from ") },
		tag:   fixed(SQL),
	},
	{
		match: func(s sample) bool {
			return strings.HasPrefix(s.trimmed, "{") || strings.HasPrefix(s.trimmed, "[")
		},
		tag: fixed(JSON),
	},
	{
		match: func(s sample) bool { return s.hasAny("function ", "const ", "let ") },
		tag: func(s sample) string {
			if s.hasAny(": string", ": number", "<") {
				return TypeScript
			}
			return JavaScript
		},
	},
	{
		match: func(s sample) bool { return s.has("@media") || s.has("{", ":", ";") },
		tag:   fixed(CSS),
	},
}

// Classify returns the best-guess language tag for text.
func Classify(text string) string {
	s := sample{
		lower:   strings.ToLower(text),
		trimmed: strings.TrimSpace(text),
	}

	for _, r := range rules {
		if r.match(s) {
			return r.tag(s)
		}
	}

	return Default
}

// Known reports whether tag is one the classifier can produce.
func Known(tag string) bool {
	switch tag {
	case Python, Rust, Go, Java, CSharp, Cpp, HTML, SQL, JSON, TypeScript, JavaScript, CSS:
		return true
	default:
		return false
	}
}

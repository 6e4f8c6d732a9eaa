// Package detect guesses the source language of a snippet with ordered
// substring heuristics. It is not a parser; false positives are accepted.
package detect

import "strings"

// Language tag enum
type Language string

const (
	Python     Language = "python"
	Cpp        Language = "cpp"
	CSharp     Language = "csharp"
	Java       Language = "java"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
)

// Fallback is returned when no rule matches.
const Fallback = TypeScript

type rule struct {
	match func(string) bool
	tag   Language
}

// Rules are evaluated top to bottom, first match wins. Order is load-bearing:
// rule 1 fires on any snippet containing "import " together with a colon
// anywhere, even inside a comment, shadowing the later rules.
var rules = []rule{
	{
		match: func(s string) bool {
			return strings.Contains(s, "def ") ||
				(strings.Contains(s, "import ") && strings.Contains(s, ":"))
		},
		tag: Python,
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "cout") || strings.Contains(s, "#include")
		},
		tag: Cpp,
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "Console.") || strings.Contains(s, "namespace")
		},
		tag: CSharp,
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "public class") ||
				strings.Contains(s, "private void") ||
				strings.Contains(s, "extends") ||
				strings.Contains(s, "implements")
		},
		tag: Java,
	},
	{
		match: func(s string) bool {
			return (strings.Contains(s, "function") || strings.Contains(s, "=>")) &&
				strings.Contains(s, ":") &&
				(strings.Contains(s, "interface") || strings.Contains(s, "type "))
		},
		tag: TypeScript,
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "function") || strings.Contains(s, "=>")
		},
		tag: JavaScript,
	},
}

// Detect maps a snippet to a language tag. Total and deterministic; returns
// Fallback when nothing matches.
func Detect(source string) Language {
	for _, r := range rules {
		if r.match(source) {
			return r.tag
		}
	}
	return Fallback
}

// Known reports whether tag is one of the supported languages.
func Known(tag string) bool {
	switch Language(tag) {
	case Python, Cpp, CSharp, Java, JavaScript, TypeScript:
		return true
	}
	return false
}

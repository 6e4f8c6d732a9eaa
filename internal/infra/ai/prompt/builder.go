package prompt

import "fmt"

// Build assembles the full analysis prompt: expert persona, focus area,
// language guidance, the original code, the user's request, and the exact
// reply format the parser expects.
func Build(contextName, language, code, userPrompt string) string {
	return fmt.Sprintf(`As an expert game developer specializing in %s, analyze and improve this %s code.

%s

Language-specific game development considerations:
%s

Original code:
`+"```%s\n%s\n```"+`

User's specific request: %s

Provide your response in this exact format:
`+"```%s\n[Your improved game-optimized code here]\n```"+`

Explanation:
[Provide a detailed explanation of the improvements made, focusing on game development benefits and performance implications]
`,
		contextName, language,
		ContextBlock(contextName),
		PracticesBlock(language),
		language, code,
		userPrompt,
		language,
	)
}

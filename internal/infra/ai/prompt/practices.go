package prompt

import "strings"

// Per-language game development guidance injected into the prompt.
var languagePractices = map[string]string{
	"java": `Java Game Development Best Practices:
- Efficient collections (ArrayDeque for game objects), StringBuilder for concatenation
- Object pooling and GC-friendly allocation patterns in the game loop
- LibGDX/LWJGL patterns, double buffering, thread-safe game loops
- Entity component systems, event handling, asset loading optimization`,

	"python": `Python Game Development Best Practices:
- Pygame surface caching, sprite group optimization, rect collision optimization
- NumPy for physics calculations, Cython for critical paths, __slots__ for memory
- Scene management, state machines, component-based design`,

	"javascript": `JavaScript Game Development Best Practices:
- requestAnimationFrame game loops, double buffering, canvas state management
- TypedArrays for performance-critical code, Web Workers for heavy computation
- Asset preloading, event delegation, sprite batching, WebGL state caching`,

	"typescript": `TypeScript Game Development Best Practices:
- Interfaces for game entities and state, enums for game states, strict typing
- Dependency injection, service decorators, generic constraints, abstract factories
- Engine type definitions, module organization, declaration merging`,

	"cpp": `C++ Game Development Best Practices:
- Smart pointers and RAII, custom allocators, memory pools, memory alignment
- Data-oriented design, cache coherency, SIMD optimization
- Component systems, resource handles, platform abstraction, threading patterns`,

	"csharp": `C# Game Development Best Practices:
- Unity MonoBehaviour patterns, coroutine optimization, ScriptableObjects
- Structs for performance-critical components, job system, object pooling
- Component patterns, event systems, scene management`,
}

// PracticesBlock returns the language guidance, or a generic line for tags we
// have no specific guidance for.
func PracticesBlock(language string) string {
	if p, ok := languagePractices[strings.ToLower(language)]; ok {
		return p
	}
	return "Apply general game development best practices."
}

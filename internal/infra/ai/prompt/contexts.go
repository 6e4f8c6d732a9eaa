// Package prompt builds the analysis prompt sent to the model and parses the
// reply back into a suggestion.
package prompt

import "strings"

// Game development focus areas. The analysis prompt embeds exactly one of
// these, picked by DetermineContext.
var gameContexts = map[string]string{
	"performance": `Performance Optimization Focus:
- Game loop optimization: fixed/variable timestep, delta time, frame rate limiting
- Memory management: object pooling, resource caching, GC pressure, asset streaming
- Rendering optimization: batching, culling (frustum, occlusion), LOD, texture atlasing, draw call reduction
- Physics optimization: broad phase collision, spatial partitioning (quadtree, octree)`,

	"gameplay": `Gameplay Systems Focus:
- Input systems: mapping, buffering, gesture recognition, controller support
- Combat systems: hit detection, damage calculation, combat state machines, projectiles
- AI systems: pathfinding (A*, Dijkstra), behavior trees, state machines, navigation meshes
- Game mechanics: power-ups, inventory, quests, progression, economy`,

	"architecture": `Game Architecture Focus:
- Core systems: entity component systems, event/message systems, dependency injection, scene graphs
- Data management: save/load systems, serialization, configuration, asset management
- Game state: state machines, scene management, level loading, checkpoints
- Networking: client-server architecture, state synchronization, prediction, lag compensation`,

	"graphics": `Graphics Systems Focus:
- Rendering pipeline: custom shaders, post-processing, particle systems, animation, cameras
- Visual effects: sprite management, lighting, shadows, weather systems
- UI/UX: HUD systems, menus, UI animation, screen space effects
- Asset pipeline: texture management, model loading, bundling, streaming`,

	"audio": `Audio Systems Focus:
- Sound engine: source management, 3D positional audio, mixing, effects processing
- Music systems: dynamic music, state transitions, adaptive playlists
- Sound effects: SFX pooling, priority, distance attenuation, environmental effects`,

	"tools": `Game Development Tools Focus:
- Debug systems: profiling, debug visualization, logging, state inspection, replays
- Level tools: editor integration, tile systems, procedural generation, spawn points
- Testing: unit and integration testing, automated replay testing, performance testing`,
}

var contextKeywords = []struct {
	name  string
	terms []string
}{
	{"performance", []string{"fps", "performance", "optimize", "speed", "memory", "lag"}},
	{"gameplay", []string{"input", "player", "enemy", "combat", "ai", "npc"}},
	{"architecture", []string{"component", "system", "manager", "service", "state"}},
	{"graphics", []string{"render", "draw", "sprite", "shader", "camera"}},
	{"audio", []string{"sound", "audio", "music", "play"}},
	{"tools", []string{"debug", "test", "tool", "editor"}},
}

// DetermineContext routes a request to the most relevant focus area by
// scanning both the prompt and the code for keyword clues. Defaults to
// performance.
func DetermineContext(code, prompt string) string {
	promptLower := strings.ToLower(prompt)
	codeLower := strings.ToLower(code)
	for _, c := range contextKeywords {
		for _, term := range c.terms {
			if strings.Contains(promptLower, term) || strings.Contains(codeLower, term) {
				return c.name
			}
		}
	}
	return "performance"
}

// ContextBlock returns the focus-area text for a context name.
func ContextBlock(name string) string {
	if block, ok := gameContexts[name]; ok {
		return block
	}
	return gameContexts["performance"]
}

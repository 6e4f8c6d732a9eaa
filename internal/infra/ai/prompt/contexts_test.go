package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineContext(t *testing.T) {
	cases := []struct {
		name   string
		code   string
		prompt string
		want   string
	}{
		{"performance from prompt", "", "my fps is terrible", "performance"},
		{"gameplay from prompt", "", "the enemy pathing feels wrong", "gameplay"},
		{"architecture from prompt", "", "refactor this into a component", "architecture"},
		{"graphics from code", "void drawSprite() {}", "clean this up please", "graphics"},
		{"audio from prompt", "", "the music stutters on scene change", "audio"},
		{"tools from prompt", "", "add a debug overlay", "tools"},
		{"default performance", "int x = 1;", "make this nicer", "performance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetermineContext(tc.code, tc.prompt))
		})
	}
}

func TestDetermineContextPrefersEarlierArea(t *testing.T) {
	// "optimize" (performance) outranks "render" (graphics): areas are
	// checked in a fixed order
	got := DetermineContext("", "optimize my render loop")
	assert.Equal(t, "performance", got)
}

func TestBuildIncludesAllSections(t *testing.T) {
	p := Build("performance", "cpp", "int main() {}", "make it faster")

	assert.Contains(t, p, "specializing in performance")
	assert.Contains(t, p, "```cpp\nint main() {}\n```")
	assert.Contains(t, p, "make it faster")
	assert.Contains(t, p, "Explanation:")
	assert.Contains(t, p, "RAII")
}

func TestPracticesBlockUnknownLanguage(t *testing.T) {
	assert.True(t, strings.Contains(PracticesBlock("rust"), "general game development"))
}

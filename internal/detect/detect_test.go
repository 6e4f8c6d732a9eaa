package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPerRule(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   Language
	}{
		{"python def", "def foo():", Python},
		{"python import with colon", "import os\nx: int = 1", Python},
		{"cpp include", "#include <iostream>", Cpp},
		{"cpp cout", "std::cout << x;", Cpp},
		{"csharp console", "Console.WriteLine(\"hi\");", CSharp},
		{"csharp namespace", "namespace Game { }", CSharp},
		{"java public class", "public class Foo implements Bar {}", Java},
		{"java private void", "private void update() {}", Java},
		{"javascript arrow", "const f = () => {}", JavaScript},
		{"javascript function", "function update() { return 1 }", JavaScript},
		{"typescript interface", "interface X { f: () => void }", TypeScript},
		{"typescript type alias", "type State = { hp: number }\nconst f = () => hp", TypeScript},
		{"fallback plain text", "plain text", TypeScript},
		{"fallback empty", "", TypeScript},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.source))
		})
	}
}

// A comment mentioning "import " plus any colon anywhere classifies as python
// before the later rules get a chance. Intentional: rule order is part of the
// contract, do not "fix" without updating this test.
func TestDetectImportColonPrecedence(t *testing.T) {
	src := "// import the util namespace\nConsole.WriteLine(\"x:\");"
	assert.Equal(t, Python, Detect(src))
}

// Arrow functions win over Java keywords that appear later in rule order only
// when no earlier rule fires; "extends" sits above rule 5, so it wins here.
func TestDetectJavaBeforeArrow(t *testing.T) {
	src := "public class A extends B { Runnable r = () -> run(); }"
	assert.Equal(t, Java, Detect(src))
}

func TestDetectDeterministic(t *testing.T) {
	inputs := []string{"def foo():", "plain text", "const f = () => {}", "#include <vector>"}
	for _, in := range inputs {
		assert.Equal(t, Detect(in), Detect(in))
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("python"))
	assert.True(t, Known("typescript"))
	assert.False(t, Known("cobol"))
	assert.False(t, Known(""))
}

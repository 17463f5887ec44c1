package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Code
	}{
		{"empty defaults to french", "", French},
		{"no keywords defaults to french", "xyzzy plugh", French},
		{"french", "Bonjour, quelles sont les dates ?", French},
		{"english", "Hello, what are the dates?", English},
		{"spanish", "Hola, ¿cuándo es el evento? gracias", Spanish},
		{"russian", "Привет, когда выставка?", Russian},
		{"chinese", "你好", Chinese},
		{"arabic", "مرحبا", Arabic},
		{"chinese wins over english keywords", "hello what is 博览会", Chinese},
		{"arabic wins over french keywords", "bonjour مرحبا", Arabic},
		{"russian wins over english keywords", "hello what how спасибо", Russian},
		{"french english tie resolves to french", "merci thank", French},
		{"spanish must beat both scores", "hola hello", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, English, Detect("HELLO WHAT"))
	assert.Equal(t, Russian, Detect("СПАСИБО"))
}

func TestParse(t *testing.T) {
	c, ok := Parse(" EN ")
	assert.True(t, ok)
	assert.Equal(t, English, c)

	c, ok = Parse("de")
	assert.False(t, ok)
	assert.Equal(t, Default, c)
}

func TestSupportedReturnsCopy(t *testing.T) {
	s := Supported()
	s[0] = "xx"
	assert.Equal(t, French, Supported()[0])
}

package wikifetch_test

import (
	"testing"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "single latin word", text: "diamond", want: 1},
		{name: "latin words", text: "Diamond ore generates deep underground", want: 5},
		{name: "cjk counts per ideograph", text: "钻石矿石", want: 4},
		{name: "mixed scripts", text: "钻石 diamond ore", want: 4},
		{name: "punctuation splits runs", text: "mob-proof", want: 2},
		{name: "digits do not count", text: "level 12", want: 1},
		{name: "whitespace only", text: "  \n\t ", want: 0},
		{name: "cjk embedded in latin run", text: "a钻b", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wikifetch.CountWords(tt.text))
		})
	}
}

package wikifetch_test

import (
	"testing"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "spaces become underscores", title: "Diamond Ore", want: "Diamond_Ore"},
		{name: "first letter uppercased", title: "diamond", want: "Diamond"},
		{name: "trims whitespace", title: "  Creeper  ", want: "Creeper"},
		{name: "empty", title: "", want: ""},
		{name: "already normalized", title: "Nether_Portal", want: "Nether_Portal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wikifetch.NormalizeTitle(tt.title))
		})
	}
}

func TestPageURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://minecraft.wiki/w/Diamond_Ore",
		wikifetch.PageURL("https://minecraft.wiki/", "diamond ore"))
}

func TestTitleFromURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Diamond Ore", wikifetch.TitleFromURL("https://minecraft.wiki/w/Diamond_Ore"))
	assert.Empty(t, wikifetch.TitleFromURL("https://minecraft.wiki/wiki.php?curid=5"))
	assert.Empty(t, wikifetch.TitleFromURL("://bad"))
}

package game

import (
	"testing"

	"puzzle-score-bot/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Game
		ok   bool
	}{
		{
			"wordle share",
			"Wordle 247 4/6\n\n⬛⬛🟨⬛⬛\n🟩🟩🟩🟩🟩",
			model.GameWordle, true,
		},
		{
			"wordle mentioned in a sentence",
			"I played Wordle 247 4/6 today",
			model.GameWordle, true,
		},
		{
			"wordle failure row",
			"Wordle 250 X/6",
			model.GameWordle, true,
		},
		{
			"flagle share",
			"#Flagle #123 3/6\nhttps://www.flagle.io",
			model.GameFlagle, true,
		},
		{
			"kelma share",
			"Kelma 126 5/6\nkelma.mt",
			model.GameKelma, true,
		},
		{
			"quordle share",
			"Daily Quordle 123\n5️⃣7️⃣\n4️⃣6️⃣\nquordle.com",
			model.GameQuordle, true,
		},
		{
			"plain chatter",
			"good morning everyone",
			"", false,
		},
		{
			"fraction without a game name",
			"I scored 4/6 on some random quiz",
			"", false,
		},
		{
			"wordle without the fraction",
			"Wordle is great",
			"", false,
		},
		{
			"flagle url without hashtag",
			"check out https://www.flagle.io",
			"", false,
		},
		{
			"quordle without domain",
			"Daily Quordle was hard",
			"", false,
		},
		{
			"empty message",
			"",
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestClassify_FlagleBeforeWordle(t *testing.T) {
	// A flagle share also contains "/6"; the flagle signature must win
	// because it is evaluated first.
	text := "#Flagle #123 X/6\nhttps://www.flagle.io"
	got, ok := Classify(text)
	if !ok || got != model.GameFlagle {
		t.Errorf("Classify(%q) = (%q, %v), want (flagle, true)", text, got, ok)
	}
}

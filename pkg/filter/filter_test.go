package filter_test

import (
	"testing"

	"github.com/NeuralTrust/CommentGuard/pkg/filter"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Matches(t *testing.T) {
	f := filter.New(nil)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "clean text", text: "what a lovely day", want: false},
		{name: "empty string", text: "", want: false},
		{name: "plain profanity", text: "this is shit", want: true},
		{name: "uppercase profanity", text: "this is SHIT", want: true},
		{name: "profanity with punctuation", text: "shit!", want: true},
		{name: "embedded substring does not flag", text: "classic assessment", want: false},
		{name: "non-ascii text", text: "これは静かなコメントです", want: false},
		{name: "non-ascii around profanity", text: "そのコメントは shit だ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Matches(tt.text))
		})
	}
}

func TestFilter_CustomWords(t *testing.T) {
	f := filter.New([]string{"Blocked", "  spaced  ", ""})

	assert.True(t, f.Matches("this is blocked content"))
	assert.True(t, f.Matches("very SPACED out"))
	assert.False(t, f.Matches("this is shit")) // default list replaced
}

func TestFilter_SharedUse(t *testing.T) {
	f := filter.New(nil)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				f.Matches("some harmless text with shit in it")
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}

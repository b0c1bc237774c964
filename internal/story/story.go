// Package story holds the story record and the list snapshot that every
// rendering surface draws from.
package story

// Story is a single story record as returned by the item endpoint.
type Story struct {
	ID          int    `json:"id"`
	By          string `json:"by"`
	Score       int    `json:"score"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type,omitempty"`
	Time        int64  `json:"time,omitempty"` // unix seconds
	Descendants int    `json:"descendants,omitempty"`
}

const (
	placeholderCount = 5
	placeholderBy    = "user"
	placeholderScore = 126
	placeholderTitle = "Pokegb: A gameboy emulator that only plays Pokémon Blue, in 68 lines of C++"
	placeholderURL   = "https://binji.github.io/posts/pokegb/"
)

// Placeholder returns the sample records shown before any fetch completes.
func Placeholder() []Story {
	out := make([]Story, placeholderCount)
	for i := range out {
		out[i] = Story{
			ID:    i,
			By:    placeholderBy,
			Score: placeholderScore,
			Title: placeholderTitle,
			URL:   placeholderURL,
		}
	}
	return out
}

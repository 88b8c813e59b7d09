// Package fetch retrieves the quote and image payload for one refresh
// cycle. Network failure never escapes this package: the quote falls
// back to built-in pairs and the image degrades to a secondary source
// or an absent result.
package fetch

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultQuoteURL        = "https://dummyjson.com/quotes/random"
	DefaultImageBaseURL    = "https://loremflickr.com"
	DefaultFallbackBaseURL = "https://picsum.photos"

	// The image timeout is longer than the quote timeout because the
	// payload is much larger.
	quoteTimeout = 5 * time.Second
	imageTimeout = 10 * time.Second
)

// Default field values when the quote endpoint replies but omits a field.
const (
	defaultQuoteText = "Inspiration allows us to do great things."
	defaultAuthor    = "Unknown"
)

// Static fallback pairs. The two failure modes return distinct pairs so
// an API error can be told apart from being offline.
var (
	apiErrorQuote = Quote{Text: "The beauty of the world lies in the details.", Author: "Default"}
	offlineQuote  = Quote{Text: "Stay focused and never give up.", Author: "Offline Mode"}
)

// Quote is one retrieved quote. It is immutable and lives for one cycle.
type Quote struct {
	Text   string
	Author string
}

// Fetcher retrieves quotes and raw image bytes sized for the canvas.
// Base URLs are fields so tests can point them at local servers.
type Fetcher struct {
	QuoteURL        string
	ImageBaseURL    string
	FallbackBaseURL string
	Width, Height   int

	quoteClient *http.Client
	imageClient *http.Client
}

// New creates a Fetcher for the given canvas dimensions using the
// default public sources.
func New(width, height int) *Fetcher {
	return &Fetcher{
		QuoteURL:        DefaultQuoteURL,
		ImageBaseURL:    DefaultImageBaseURL,
		FallbackBaseURL: DefaultFallbackBaseURL,
		Width:           width,
		Height:          height,
		quoteClient:     &http.Client{Timeout: quoteTimeout},
		imageClient:     &http.Client{Timeout: imageTimeout},
	}
}

// FetchQuote retrieves a random quote. It never fails: a non-200 status
// yields the API-error pair and a network or decode error yields the
// distinct offline pair.
func (f *Fetcher) FetchQuote() Quote {
	resp, err := f.quoteClient.Get(f.QuoteURL)
	if err != nil {
		log.Printf("quote fetch failed: %v", err)
		return offlineQuote
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("quote API error: status %d", resp.StatusCode)
		return apiErrorQuote
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("quote read failed: %v", err)
		return offlineQuote
	}
	q, ok := quoteFromJSON(body)
	if !ok {
		log.Printf("quote body not decodable")
		return offlineQuote
	}
	return q
}

// quoteFromJSON decodes the endpoint's body: a single object or a list
// whose first element is used. The quote text lives under "quote" or
// "content"; the author under "author". Missing fields get defaults.
func quoteFromJSON(body []byte) (Quote, bool) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return Quote{}, false
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return Quote{}, false
		}
		v = list[0]
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Quote{}, false
	}

	q := Quote{Text: defaultQuoteText, Author: defaultAuthor}
	if s, ok := obj["quote"].(string); ok {
		q.Text = s
	} else if s, ok := obj["content"].(string); ok {
		q.Text = s
	}
	if s, ok := obj["author"].(string); ok {
		q.Author = s
	}
	return q, true
}

// FetchImage retrieves raw encoded image bytes at the canvas size. It
// tries the keyworded primary source first, then the blurred unkeyworded
// fallback, both with the same randomized cache-buster. Returns nil if
// both fail.
func (f *Fetcher) FetchImage(keyword string) []byte {
	lock := rand.Intn(10000) + 1

	primary := fmt.Sprintf("%s/%d/%d/%s?lock=%d",
		f.ImageBaseURL, f.Width, f.Height, url.PathEscape(keyword), lock)
	log.Printf("fetching image from %s", primary)
	if body := f.getImage(primary); body != nil {
		return body
	}

	log.Printf("primary image source failed, falling back")
	fallback := fmt.Sprintf("%s/%d/%d?blur=1&random=%d",
		f.FallbackBaseURL, f.Width, f.Height, lock)
	return f.getImage(fallback)
}

func (f *Fetcher) getImage(imgURL string) []byte {
	resp, err := f.imageClient.Get(imgURL)
	if err != nil {
		log.Printf("image fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("image source error: status %d", resp.StatusCode)
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("image read failed: %v", err)
		return nil
	}
	return body
}

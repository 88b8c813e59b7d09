package compose

import (
	"log"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	largeFontSize = 36
	smallFontSize = 24
)

// FontSet holds the glyph resources for the quote and author lines.
type FontSet struct {
	Large font.Face
	Small font.Face
}

// Candidate font files tried in order, first hit wins.
var fontCandidates = []string{
	// macOS
	"/System/Library/Fonts/HelveticaNeue.ttc",
	"/System/Library/Fonts/SFNS.ttf",
	"/Library/Fonts/Arial.ttf",
	// Windows
	`C:\Windows\Fonts\arial.ttf`,
	`C:\Windows\Fonts\segoeui.ttf`,
	`C:\Windows\Fonts\calibri.ttf`,
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

var (
	fontsOnce sync.Once
	fonts     FontSet
)

// Fonts returns the process-wide FontSet, resolving it on first use.
// Resolution cannot fail: if no candidate file loads, the built-in
// bitmap face is used for both sizes.
func Fonts() FontSet {
	fontsOnce.Do(func() {
		fonts = resolveFonts(fontCandidates)
	})
	return fonts
}

func resolveFonts(candidates []string) FontSet {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return FontSet{
			Large: truetype.NewFace(f, &truetype.Options{Size: largeFontSize}),
			Small: truetype.NewFace(f, &truetype.Options{Size: smallFontSize}),
		}
	}
	log.Printf("no candidate fonts found, using built-in face")
	return FontSet{Large: basicfont.Face7x13, Small: basicfont.Face7x13}
}

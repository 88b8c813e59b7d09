// QuoteFrame shows a periodically refreshed inspirational quote
// composited over a photograph, full-window. Fetching and compositing
// run on worker goroutines; the window only ever receives finished
// frames.
package main

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/quoteframe/quoteframe/internal/compose"
	"github.com/quoteframe/quoteframe/internal/config"
	"github.com/quoteframe/quoteframe/internal/fetch"
	"github.com/quoteframe/quoteframe/internal/scheduler"
	"github.com/quoteframe/quoteframe/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.quoteframe.quoteframe"
	AppName = "QuoteFrame"
)

func main() {
	fmt.Printf("QuoteFrame v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	width := settings.GetCanvasWidth()
	height := settings.GetCanvasHeight()
	keyword := settings.GetSearchKeyword()

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))
	myWindow.SetFixedSize(true)

	viewer := ui.NewViewer(width, height)
	myWindow.SetContent(viewer.CanvasObject())

	fetcher := fetch.New(width, height)
	spec := compose.CanvasSpec{Width: width, Height: height}

	sched := scheduler.New(settings.GetRefreshInterval(),
		func() (string, string, []byte) {
			q := fetcher.FetchQuote()
			return q.Text, q.Author, fetcher.FetchImage(keyword)
		},
		func(data []byte, text, author string) (image.Image, error) {
			return compose.Render(data, text, author, spec)
		},
		func(frame image.Image) {
			fyne.Do(func() { viewer.SetFrame(frame) })
		},
	)
	sched.Start()
	myWindow.SetOnClosed(sched.Stop)

	myWindow.ShowAndRun()
}

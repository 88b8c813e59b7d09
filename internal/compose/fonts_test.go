package compose

import "testing"

func TestResolveFontsAllCandidatesFail(t *testing.T) {
	fs := resolveFonts([]string{
		"/nonexistent/one.ttf",
		"/nonexistent/two.ttf",
		"/nonexistent/three.ttf",
		"/nonexistent/four.ttf",
	})
	if fs.Large == nil || fs.Small == nil {
		t.Fatal("Font resolution must always return usable faces")
	}
}

func TestResolveFontsNonFontFile(t *testing.T) {
	// A file that exists but is not a font must be skipped, not fatal.
	fs := resolveFonts([]string{"fonts.go"})
	if fs.Large == nil || fs.Small == nil {
		t.Fatal("Unparseable candidate should fall through to the built-in face")
	}
}

func TestFontsCached(t *testing.T) {
	a := Fonts()
	b := Fonts()
	if a != b {
		t.Error("Fonts should resolve once and return the same FontSet")
	}
}

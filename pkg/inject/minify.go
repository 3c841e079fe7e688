package inject

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// MinifyResult holds minified CSS text and the achieved size reduction.
type MinifyResult struct {
	Styles string
	// Efficiency is the fraction of bytes removed (0 when nothing shrank).
	// Informational only, never load-bearing.
	Efficiency float64
}

// Minifier minifies CSS text.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a CSS minifier.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	return &Minifier{m: m}
}

// Minify compresses raw CSS.
func (mf *Minifier) Minify(raw string) (MinifyResult, error) {
	out, err := mf.m.String("text/css", raw)
	if err != nil {
		return MinifyResult{}, err
	}

	efficiency := 0.0
	if len(raw) > 0 && len(out) < len(raw) {
		efficiency = 1 - float64(len(out))/float64(len(raw))
	}
	return MinifyResult{Styles: out, Efficiency: efficiency}, nil
}

// Package inject loads local stylesheet files, minifies them, and applies
// them to a remote webview document exactly once per path. Injections are
// recorded in a per-document manifest (a JSON array in a dataset attribute
// on the document root) so repeat attempts fail fast instead of duplicating
// styles.
package inject

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/domkit/internal/logging"
	"github.com/bnema/domkit/pkg/webview"
)

// DefaultDatasetKey is the dataset key (camelCase) holding the manifest,
// i.e. the data-injected-stylesheets attribute.
const DefaultDatasetKey = "injectedStylesheets"

const readChunkSize = 32 * 1024

// Injector applies stylesheet files to one remote document.
//
// Concurrent InjectFile calls through the same Injector are safe: attempts
// for the same path are collapsed via singleflight and the manifest
// read-modify-write is serialized. Two independent Injector instances
// pointed at the same document can still lose manifest updates to each
// other (last write wins); that matches the original host behavior.
type Injector struct {
	view       webview.Webview
	minifier   *Minifier
	datasetKey string

	group singleflight.Group
	mu    sync.Mutex
}

// Option configures an Injector.
type Option func(*Injector)

// WithDatasetKey overrides the manifest dataset key.
func WithDatasetKey(key string) Option {
	return func(inj *Injector) { inj.datasetKey = key }
}

// WithMinifier overrides the CSS minifier.
func WithMinifier(m *Minifier) Option {
	return func(inj *Injector) { inj.minifier = m }
}

// NewInjector creates an injector bound to the given webview document.
func NewInjector(view webview.Webview, opts ...Option) *Injector {
	inj := &Injector{
		view:       view,
		minifier:   NewMinifier(),
		datasetKey: DefaultDatasetKey,
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// InjectFile reads, minifies, and inserts the stylesheet at path, then
// records the path in the document manifest. It returns the minified CSS.
//
// Failure modes, in protocol order: *ParseError when the manifest attribute
// is unparsable (no file read happens); ErrAlreadyInjected when path is in
// the manifest (neither minifier nor insertion run); *ReadError on file
// stream errors (no partial injection); *RemoteError on rejected remote
// calls — when the manifest write is what failed, the CSS is already
// applied but unrecorded.
func (inj *Injector) InjectFile(ctx context.Context, path string) (string, error) {
	v, err, _ := inj.group.Do(path, func() (any, error) {
		return inj.injectFile(ctx, path)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (inj *Injector) injectFile(ctx context.Context, path string) (string, error) {
	inj.mu.Lock()
	defer inj.mu.Unlock()

	log := logging.FromContext(ctx).With().
		Str("component", "inject").
		Str("path", path).
		Logger()

	raw, _, err := webview.DatasetGet(ctx, inj.view, inj.datasetKey)
	if err != nil {
		return "", &RemoteError{Op: "read-manifest", Err: err}
	}

	manifest, err := ParseManifest(raw)
	if err != nil {
		return "", err
	}
	if manifest.Contains(path) {
		return "", fmt.Errorf("stylesheet %s: %w", path, ErrAlreadyInjected)
	}

	cssText, err := readStylesheet(path)
	if err != nil {
		return "", err
	}

	result, err := inj.minifier.Minify(cssText)
	if err != nil {
		return "", fmt.Errorf("failed to minify %s: %w", path, err)
	}
	log.Debug().
		Int("raw_len", len(cssText)).
		Int("minified_len", len(result.Styles)).
		Float64("efficiency", result.Efficiency).
		Msg("stylesheet minified")

	if err := inj.view.InsertCSS(ctx, result.Styles); err != nil {
		return "", &RemoteError{Op: "insert-css", Err: err}
	}

	manifest.Add(path)
	if err := webview.DatasetSet(ctx, inj.view, inj.datasetKey, manifest.Encode()); err != nil {
		// The CSS is applied but the manifest now lags behind; the next
		// attempt for this path will re-inject instead of failing.
		return "", &RemoteError{Op: "update-manifest", Err: err}
	}

	log.Debug().Int("manifest_len", manifest.Len()).Msg("stylesheet injected")
	return result.Styles, nil
}

// readStylesheet streams the file as UTF-8 chunks into a single buffer,
// then trims it and appends one line terminator. Any stream error aborts
// with a *ReadError.
func readStylesheet(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var buf strings.Builder
	reader := bufio.NewReader(f)
	chunk := make([]byte, readChunkSize)
	for {
		n, err := reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", &ReadError{Path: path, Err: err}
		}
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

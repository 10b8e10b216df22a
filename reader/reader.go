package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/draftline/core"
	"github.com/tsawler/draftline/format"
)

// Result holds a loaded tag stream and what was detected along the way.
type Result struct {
	Tags     core.Tags
	Version  format.Version
	Codepage string
}

// Option configures loading.
type Option func(*options)

type options struct {
	codepage string
	lenient  bool
	logger   *zap.Logger
}

// WithCodepage overrides codepage detection with a fixed identifier.
func WithCodepage(codepage string) Option {
	return func(o *options) { o.codepage = codepage }
}

// Lenient makes the loader skip malformed tag pairs instead of failing.
// Skipped pairs are reported through the logger.
func Lenient() Option {
	return func(o *options) { o.lenient = true }
}

// WithLogger sets the structured logger for load diagnostics. Without it
// the loader stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Open loads a tag stream from a file.
func Open(filename string, opts ...Option) (*Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Load reads the whole stream, decodes it according to the detected (or
// overridden) codepage, and lexes it into tags. The format revision is
// detected from the $ACADVER header variable.
func Load(r io.Reader, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}

	codepage := o.codepage
	if codepage == "" {
		codepage = detectCodepage(data)
	}
	if decoder := encodingFor(codepage); decoder != nil {
		decoded, err := decoder.Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding codepage %s: %w", codepage, err)
		}
		data = decoded
	} else if codepage != "" {
		o.logger.Warn("unsupported codepage, reading bytes as-is",
			zap.String("codepage", codepage))
	}

	tags, err := lexAll(bytes.NewReader(data), &o)
	if err != nil {
		return nil, err
	}
	return &Result{
		Tags:     tags,
		Version:  format.Detect(tags),
		Codepage: codepage,
	}, nil
}

// lexAll lexes the stream into tags. In lenient mode malformed pairs are
// logged and skipped; otherwise the first malformed pair aborts the load.
func lexAll(r io.Reader, o *options) (core.Tags, error) {
	lexer := core.NewLexer(r)
	var tags core.Tags
	for {
		tag, err := lexer.NextTag()
		if err == io.EOF {
			return tags, nil
		}
		if err != nil {
			if o.lenient && errors.Is(err, core.ErrMalformedTag) {
				o.logger.Warn("skipping malformed tag",
					zap.Int("line", lexer.Line()),
					zap.Error(err))
				continue
			}
			return nil, err
		}
		tags = append(tags, tag)
	}
}

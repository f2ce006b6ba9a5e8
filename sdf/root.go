package sdf

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Root is parsed <sdf> document.
type Root struct {
	Version string
	Worlds  []World
	Models  []Model
	Actors  []Actor
	Lights  []Light
}

// parser carries per document settings. It is created by each Parse* call and
// never shared.
type parser struct {
	log     *zap.Logger
	lenient bool
}

// Option modifies parser behavior.
type Option func(*parser)

// WithLogger sets logger for diagnostics, default is no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithLenient makes parser drop malformed optional values with a warning
// instead of failing. Required values are never recovered.
func WithLenient(lenient bool) Option {
	return func(p *parser) {
		p.lenient = lenient
	}
}

func newParser(opts []Option) *parser {
	p := &parser{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads and parses SDF document from file.
func ParseFile(path string, opts ...Option) (*Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open SDF file: %w", err)
	}
	defer f.Close()

	return ParseReader(f, opts...)
}

// ParseReader reads and parses SDF document. Documents in legacy encodings
// are decoded according to their XML declaration.
func ParseReader(r io.Reader, opts ...Option) (*Root, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read SDF: %w", err)
	}
	return ParseDocument(doc, opts...)
}

// ParseDocument builds model tree from already loaded XML document. Resulting
// tree does not reference document in any way.
func ParseDocument(doc *etree.Document, opts ...Option) (*Root, error) {
	p := newParser(opts)

	el := doc.Root()
	if el == nil {
		return nil, &MissingFieldError{Element: "document", Field: "sdf"}
	}
	root, err := parseElement[Root](p, el, "sdf")
	if err != nil {
		return nil, err
	}
	p.log.Debug("SDF parsed",
		zap.String("version", root.Version),
		zap.Int("worlds", len(root.Worlds)),
		zap.Int("models", len(root.Models)),
		zap.Int("actors", len(root.Actors)),
		zap.Int("lights", len(root.Lights)))
	return &root, nil
}

func (r *Root) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enumAttr(f, "version", supportedVersions, &r.Version)
	many(f, "world", &r.Worlds)
	many(f, "model", &r.Models)
	many(f, "actor", &r.Actors)
	many(f, "light", &r.Lights)
	return f.done()
}

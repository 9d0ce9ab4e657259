package sharefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/vitalvas/polysecret/radix"
	"github.com/vitalvas/polysecret/shamir"
)

// Format is the encoding of a share document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// keysField is the document entry holding n and k.
const keysField = "keys"

var (
	// ErrInvalidDocument is returned when a document does not have the expected shape.
	ErrInvalidDocument = errors.New("sharefile: invalid document")

	// ErrUnsupportedFormat is returned for unknown formats or file extensions.
	ErrUnsupportedFormat = errors.New("sharefile: unsupported format")
)

// Document is a loaded share file: the request parameters and the shares.
type Document struct {
	N      int
	K      int
	Shares []shamir.EncodedShare
}

// Request returns the reconstruction parameters of the document.
func (d *Document) Request() shamir.Request {
	return shamir.Request{N: d.N, K: d.K}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath detects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %s", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Load reads and parses a share document, the format is taken from the extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// Save writes doc to path, the format is taken from the extension.
func Save(path string, doc *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Parse decodes a share document.
//
// Every format carries the same shape: a "keys" entry with n and k, and one
// entry per share keyed by its decimal index holding base and value.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		raw map[string]entry
		err error
	)

	switch format {
	case FormatJSON:
		raw, err = decodeJSON(data)
	case FormatYAML:
		raw, err = decodeYAML(data)
	case FormatCBOR:
		raw, err = decodeCBOR(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	return fromEntries(raw)
}

// Marshal encodes doc in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(doc)
	case FormatYAML:
		return encodeYAML(doc)
	case FormatCBOR:
		return encodeCBOR(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// entry is one top-level value of a document, either the keys or a share.
type entry struct {
	N     int        `json:"n,omitempty" yaml:"n,omitempty" cbor:"n,omitempty"`
	K     int        `json:"k,omitempty" yaml:"k,omitempty" cbor:"k,omitempty"`
	Base  baseString `json:"base,omitempty" yaml:"base,omitempty" cbor:"base,omitempty"`
	Value string     `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
}

func fromEntries(raw map[string]entry) (*Document, error) {
	keys, ok := raw[keysField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidDocument, keysField)
	}

	doc := &Document{
		N:      keys.N,
		K:      keys.K,
		Shares: make([]shamir.EncodedShare, 0, len(raw)-1),
	}

	for name, item := range raw {
		if name == keysField {
			continue
		}

		index, err := strconv.Atoi(name)
		if err != nil || index < 1 {
			return nil, fmt.Errorf("%w: share key %q is not a positive integer", ErrInvalidDocument, name)
		}

		base, err := strconv.Atoi(strings.TrimSpace(string(item.Base)))
		if err != nil {
			return nil, fmt.Errorf("%w: share %d: base %q: %w", ErrInvalidDocument, index, item.Base, radix.ErrInvalidBase)
		}

		doc.Shares = append(doc.Shares, shamir.EncodedShare{
			Index: index,
			Base:  base,
			Value: item.Value,
		})
	}

	slices.SortFunc(doc.Shares, func(a, b shamir.EncodedShare) int {
		return a.Index - b.Index
	})

	return doc, nil
}

func toEntries(doc *Document) map[string]entry {
	raw := make(map[string]entry, len(doc.Shares)+1)
	raw[keysField] = entry{N: doc.N, K: doc.K}

	for _, share := range doc.Shares {
		raw[strconv.Itoa(share.Index)] = entry{
			Base:  baseString(strconv.Itoa(share.Base)),
			Value: share.Value,
		}
	}

	return raw
}

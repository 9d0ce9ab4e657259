package report

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/polysecret/shamir"
)

// Format is the output encoding of reports.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ErrUnsupportedFormat is returned for unknown output formats.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// Point is a point rendered with decimal coordinates.
type Point struct {
	X string `json:"x" yaml:"x" cbor:"x"`
	Y string `json:"y" yaml:"y" cbor:"y"`
}

// Report describes one reconstruction.
type Report struct {
	Source      string  `json:"source,omitempty" yaml:"source,omitempty" cbor:"source,omitempty"`
	N           int     `json:"n" yaml:"n" cbor:"n"`
	K           int     `json:"k" yaml:"k" cbor:"k"`
	At          string  `json:"at" yaml:"at" cbor:"at"`
	Secret      string  `json:"secret" yaml:"secret" cbor:"secret"`
	Points      []Point `json:"points" yaml:"points" cbor:"points"`
	Fingerprint string  `json:"fingerprint" yaml:"fingerprint" cbor:"fingerprint"`
}

// New builds a report for a result evaluated at x.
func New(source string, req shamir.Request, x *big.Int, res *shamir.Result) Report {
	points := make([]Point, 0, len(res.Points))
	for _, p := range res.Points {
		points = append(points, Point{X: p.X.String(), Y: p.Y.String()})
	}

	return Report{
		Source:      source,
		N:           req.N,
		K:           req.K,
		At:          x.String(),
		Secret:      res.Secret.String(),
		Points:      points,
		Fingerprint: Fingerprint(res.Points),
	}
}

// Fingerprint returns the hex blake3 digest of the ordered point set.
// Two reconstructions from the same points have the same fingerprint.
func Fingerprint(points []shamir.Point) string {
	hasher := blake3.New()
	for _, p := range points {
		fmt.Fprintf(hasher, "%s:%s\n", p.X, p.Y)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case FormatAuto, FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ResolveFormat parses name and turns FormatAuto into text when out is a
// terminal, json otherwise.
func ResolveFormat(name string, out *os.File) (Format, error) {
	format, err := ParseFormat(name)
	if err != nil {
		return "", err
	}

	if format != FormatAuto {
		return format, nil
	}

	if out != nil && IsTerminal(out.Fd()) {
		return FormatText, nil
	}

	return FormatJSON, nil
}

// Write encodes reports to w.
func Write(w io.Writer, reports []Report, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, reports)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()

	case FormatCBOR:
		return cbor.NewEncoder(w).Encode(reports)

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeText(w io.Writer, reports []Report) error {
	var b strings.Builder

	for i, r := range reports {
		if i > 0 {
			b.WriteByte('\n')
		}

		if r.Source != "" {
			fmt.Fprintf(&b, "source:      %s\n", r.Source)
		}
		fmt.Fprintf(&b, "threshold:   %d of %d\n", r.K, r.N)
		b.WriteString("points:\n")
		for _, p := range r.Points {
			fmt.Fprintf(&b, "  (x=%s, y=%s)\n", p.X, p.Y)
		}
		if r.At != "0" {
			fmt.Fprintf(&b, "value at %s: %s\n", r.At, r.Secret)
		} else {
			fmt.Fprintf(&b, "secret:      %s\n", r.Secret)
		}
		fmt.Fprintf(&b, "fingerprint: %s\n", r.Fingerprint)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

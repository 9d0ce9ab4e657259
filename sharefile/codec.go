package sharefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// baseString holds a base as written in the document. JSON and CBOR documents
// may carry it either as a string or as a number.
type baseString string

func (b *baseString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = baseString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("base must be a string or a number: %w", err)
	}

	*b = baseString(n.String())
	return nil
}

func (b *baseString) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err == nil {
		*b = baseString(s)
		return nil
	}

	var n int64
	if err := cbor.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("base must be a string or an integer: %w", err)
	}

	*b = baseString(strconv.FormatInt(n, 10))
	return nil
}

func decodeJSON(data []byte) (map[string]entry, error) {
	var raw map[string]entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeYAML(data []byte) (map[string]entry, error) {
	var raw map[string]entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeCBOR(data []byte) (map[string]entry, error) {
	var raw map[string]entry
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// encodeJSON writes "keys" first and shares in index order,
// encoding/json would sort the keys as strings.
func encodeJSON(doc *Document) ([]byte, error) {
	raw := toEntries(doc)

	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(name string, value entry) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		item, err := json.Marshal(value)
		if err != nil {
			return err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(item)
		return nil
	}

	if err := write(keysField, raw[keysField]); err != nil {
		return nil, err
	}
	for _, share := range doc.Shares {
		name := strconv.Itoa(share.Index)
		if err := write(name, raw[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')

	return out.Bytes(), nil
}

func encodeYAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(toEntries(doc)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeCBOR(doc *Document) ([]byte, error) {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(toEntries(doc))
}

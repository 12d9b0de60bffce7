package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDocumentMissing reports that no document file exists for a locale.
var ErrDocumentMissing = errors.New("content: document missing")

var documentExtensions = []string{".json", ".yaml", ".yml"}

// UnmarshalJSON decodes the document and records its top-level key order.
func (d *Document) UnmarshalJSON(b []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	keys, err := jsonKeyOrder(b)
	if err != nil {
		return err
	}
	*d = Document(p)
	d.keys = keys
	return nil
}

// UnmarshalYAML decodes the document and records its top-level key order.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("content: document must be a mapping, got %s", node.ShortTag())
	}
	type plain Document
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	*d = Document(p)
	d.keys = keys
	return nil
}

func jsonKeyOrder(b []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("content: document must be a JSON object")
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("content: unexpected token %v", tok)
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// DecodeDocument parses raw bytes according to the file extension of name.
func DecodeDocument(name string, raw []byte) (*Document, error) {
	var doc Document
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("content: decode %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("content: decode %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("content: unsupported document format %q", name)
	}
	return &doc, nil
}

// LoadDocument reads company.<code>.{json,yaml,yml} from dir.
func LoadDocument(fsys fs.FS, dir, code string) (*Document, string, error) {
	for _, ext := range documentExtensions {
		name := path.Join(dir, "company."+code+ext)
		raw, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, name, fmt.Errorf("content: read %s: %w", name, err)
		}
		doc, err := DecodeDocument(name, raw)
		return doc, name, err
	}
	return nil, "", fmt.Errorf("%w: %s/company.%s.*", ErrDocumentMissing, dir, code)
}

package session

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTranscript reads a transcript from a YAML or JSON file.
func LoadTranscript(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	t, err := ReadTranscript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTranscript decodes a transcript. JSON input is accepted because it is
// valid YAML. A bare list of messages is also accepted.
func ReadTranscript(r io.Reader) (*Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &Transcript{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	var t Transcript
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&t.Messages); err != nil {
			return nil, fmt.Errorf("decode messages: %w", err)
		}
	case yaml.MappingNode:
		if err := doc.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode transcript: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse transcript: expected a mapping or a list of messages")
	}

	for i := range t.Messages {
		if t.Messages[i].Role == "" {
			t.Messages[i] = NewMessage("", t.Messages[i].Content)
		}
	}
	return &t, nil
}

package config

import (
	"dario.cat/mergo"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// LoadJSON parses raw as a Document, following the teacher's
// initGameConfigs/jsoniter.UnmarshalFromString idiom, then merges the
// built-in gaConfig defaults over any field the document left zero.
func LoadJSON(raw []byte) (*Document, error) {
	doc := &Document{}
	if err := jsoniter.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	if err := mergeDefaults(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadYAML parses raw as a Document, for operators who prefer a YAML
// GA-tuning file over JSON.
func LoadYAML(raw []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	if err := mergeDefaults(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func mergeDefaults(doc *Document) error {
	return mergo.Merge(doc, defaultDocument)
}

// LoadSimulateJSON parses raw as a SimulateDocument for the "simulate"
// host mode. There are no defaults to merge: every field describes a
// specific already-sequenced reel set.
func LoadSimulateJSON(raw []byte) (*SimulateDocument, error) {
	doc := &SimulateDocument{}
	if err := jsoniter.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadSimulateYAML parses raw as a SimulateDocument, YAML variant.
func LoadSimulateYAML(raw []byte) (*SimulateDocument, error) {
	doc := &SimulateDocument{}
	if err := yaml.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

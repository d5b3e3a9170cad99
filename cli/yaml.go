package cli

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// JSONToYAML keeps key order by going through a yaml.Node. Objects become
// block mappings; arrays of numbers stay on one line.
func JSONToYAML(bs []byte) ([]byte, error) {
	node := yaml.Node{}
	if err := yaml.Unmarshal(bs, &node); err != nil {
		return nil, errors.Wrap(err, "JSONToYAML error")
	}
	setBlockStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, errors.Wrap(err, "JSONToYAML error")
	}
	return out, nil
}

func setBlockStyle(node *yaml.Node) {
	if node.Kind == yaml.MappingNode {
		node.Style = 0
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!str" {
		node.Style = 0
	}
	for _, child := range node.Content {
		setBlockStyle(child)
	}
}

func YAMLToJSON(bs []byte) ([]byte, error) {
	var value any
	if err := yaml.Unmarshal(bs, &value); err != nil {
		return nil, errors.Wrap(err, "YAMLToJSON error")
	}
	out, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "YAMLToJSON error")
	}
	return out, nil
}

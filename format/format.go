package format

import "fmt"

// Format names an output representation accepted by the CLI.
type Format string

const (
	Tree Format = "tree"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Tree, JSON, YAML:
		return f, nil
	case "":
		return Tree, nil
	}
	return "", fmt.Errorf("unknown output format %q (want tree, json or yaml)", s)
}

func (f Format) String() string {
	return string(f)
}

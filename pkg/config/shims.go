package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// osReadFile is a variable to allow mocking os.ReadFile in tests
var osReadFile = os.ReadFile

// osStat is a variable to allow mocking os.Stat in tests
var osStat = os.Stat

// osGetenv is a variable to allow mocking os.Getenv in tests
var osGetenv = os.Getenv

// yamlUnmarshal decodes strictly so misspelled keys are reported instead of ignored
var yamlUnmarshal = func(data []byte, v any) error {
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

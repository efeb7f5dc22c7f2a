// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves converter Settings from a layered key=value source:
// compiled-in defaults, an optional properties file, and XML2JSON_*
// environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"

	"github.com/magiconair/properties"
)

// DefaultFile is the properties file picked up from the working directory
// when no --config flag is given.
const DefaultFile = "xml2json.properties"

// LoadFile reads a properties file. Keys keep their case and ${...}
// references are left unexpanded.
func LoadFile(path string) (*properties.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	p, err := loader().LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return p, nil
}

// Parse reads properties from text.
func Parse(text string) (*properties.Properties, error) {
	p, err := loader().LoadBytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("parsing properties: %w", err)
	}
	return p, nil
}

// Discover loads DefaultFile from dir when it exists. A missing file is not an
// error; Discover returns nil properties and an empty path.
func Discover(dir string) (*properties.Properties, string, error) {
	path := DefaultFile
	if dir != "" {
		path = dir + string(os.PathSeparator) + DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("checking config %s: %w", path, err)
	}
	p, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return p, path, nil
}

func loader() *properties.Loader {
	return &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
}

// Package assets provides the embedded boilerplate files the tailwind
// format materializes into a render's output directory.
package assets

import (
	"embed"
	"fmt"
)

//go:embed boilerplate/*
var boilerplate embed.FS

// LoadBoilerplate loads an embedded boilerplate file by name.
// The name must be a bare file name such as "tailwind.css" or
// "postcss.config.js"; path components are rejected.
func LoadBoilerplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := boilerplate.ReadFile("boilerplate/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBoilerplateNotFound, name)
	}

	return string(content), nil
}

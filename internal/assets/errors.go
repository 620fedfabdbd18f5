package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrBoilerplateNotFound = errors.New("boilerplate file not found")
	ErrInvalidAssetName    = errors.New("invalid asset name")
)

package config

import (
	_ "embed"
)

//go:embed defaults/pixslide.yaml
var defaultYAML []byte

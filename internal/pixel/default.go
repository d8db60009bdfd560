package pixel

import (
	_ "embed"
)

//go:embed assets/default.png
var defaultPNG []byte

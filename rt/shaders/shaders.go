package shaders

import (
	_ "embed"
)

// The cube and pyramid programs are both linked from LitVert/LitFrag.

//go:embed lit.vert
var LitVert string

//go:embed lit.frag
var LitFrag string

//go:embed lamp.vert
var LampVert string

//go:embed lamp.frag
var LampFrag string

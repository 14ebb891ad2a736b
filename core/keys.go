package core

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeySpace  = int(glfw.KeySpace)
	KeyEscape = int(glfw.KeyEscape)
	KeyEnter  = int(glfw.KeyEnter)
	KeyTab    = int(glfw.KeyTab)
	KeyT      = int(glfw.KeyT)
	KeyM      = int(glfw.KeyM)
)

var keyNames = map[string]int{
	"space":  KeySpace,
	"escape": KeyEscape,
	"enter":  KeyEnter,
	"tab":    KeyTab,
	"t":      KeyT,
	"m":      KeyM,
}

// KeyByName resolves a key name as written in the config file.
func KeyByName(name string) (int, bool) {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return key, ok
}

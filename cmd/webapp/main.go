//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/drummonds/goSidebar/webapp"
)

func main() {
	// This main function is for the WASM build only
	// It registers the sidebar routes and starts go-app in the browser
	webapp.RunClient()
}

package main

import "github.com/goplus/meson/cmd/mesonb/internal"

func main() {
	internal.Execute()
}

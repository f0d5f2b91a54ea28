// Command rwm is the window manager daemon: run `rwm run` from an xinitrc
// or display-manager session script to take over a display.
package main

import "github.com/go-rwm/rwm/cmd/rwm/commands"

func main() {
	commands.Execute()
}

// eval contains a tool for inspecting membership configuration presets and
// deriving variant configurations.
package main

import (
	"github.com/gossipkit/membership/eval/cmd"
)

func main() {
	cmd.Execute()
}

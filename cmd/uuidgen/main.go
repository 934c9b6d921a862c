// uuidgen - example identifiers for UUID versions v1 to v4
package main

import "github.com/shamikhz/UUID-Generator/pkg/cli"

func main() {
	cli.Execute()
}

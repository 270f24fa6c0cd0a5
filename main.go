// Command pagegen builds a static HTML site from Markdown sources.
package main

import "github.com/gaurav-prasanna/pagegen/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/kxyxlxex/JCL-AT-Buddy/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/sparkfel/schedule1-reverse-search/cli"

func main() {
	cli.Execute()
}

package main

import "wsdlkit/internal/cli"

func main() {
	cli.Execute()
}

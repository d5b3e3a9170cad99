package main

import (
	"nifti-savior/cli"
)

func main() {
	cli.Start()
}

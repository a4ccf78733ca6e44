package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/bunko/internal/compress"
	"github.com/nguyengg/bunko/internal/decompress"
)

var opts struct {
	Compress   compress.Command   `command:"compress" alias:"c" description:"compress files"`
	Decompress decompress.Command `command:"decompress" alias:"d" description:"decompress files"`
}

func main() {
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil && !flags.WroteHelp(err) {
		os.Exit(1)
	}
}

// Package decompress implements the CLI command that decompresses files.
package decompress

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/bunko"
	"github.com/nguyengg/bunko/internal"
)

type Command struct {
	Args struct {
		Files []flags.Filename `positional-arg-name:"file" description:"the files to be decompressed" required:"yes"`
	} `positional-args:"yes"`
	Format string `short:"f" long:"format" choice:"gzip" choice:"deflate" choice:"zlib" default:"gzip" description:"format the files were compressed with"`

	logger *log.Logger
}

func (c *Command) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	format, err := bunko.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	success := 0
	n := len(c.Args.Files)
	for i, file := range c.Args.Files {
		c.logger = internal.NewLogger(i, n, file)

		if err = c.decompress(string(file), format); err != nil {
			c.logger.Printf("decompress error: %v", err)
			continue
		}

		success++
	}

	log.Printf("successfully decompressed %d/%d files", success, n)
	return nil
}

func (c *Command) decompress(name string, format bunko.Format) error {
	src, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open file error: %w", err)
	}
	defer src.Close()

	var size int64 = -1
	if fi, err := src.Stat(); err == nil {
		size = fi.Size()
	}

	// "file.txt.gz" becomes "file.txt"; a name without the format's extension gets ".out" appended instead.
	basename := filepath.Base(name)
	stem, ext := strings.TrimSuffix(basename, format.Ext()), ""
	if stem == basename {
		ext = ".out"
	}

	dst, err := internal.OpenExclFile(".", stem, ext, 0666)
	if err != nil {
		return err
	}

	bar := internal.DefaultBytes(size, basename)

	dec, err := bunko.NewDecoder(io.TeeReader(src, bar), format)
	if err == nil {
		if _, err = io.Copy(dst, dec); err == nil {
			err = dec.Close()
		} else {
			_ = dec.Close()
		}
	}
	if _, _ = bar.Close(), dst.Close(); err != nil {
		if removeErr := os.Remove(dst.Name()); removeErr != nil {
			c.logger.Printf(`clean up "%s" error: %v`, dst.Name(), removeErr)
		}

		return err
	}

	c.logger.Printf(`wrote "%s"`, dst.Name())
	return nil
}

// Package compress implements the CLI command that compresses files.
package compress

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/bunko"
	"github.com/nguyengg/bunko/internal"
)

type Command struct {
	Args struct {
		Files []flags.Filename `positional-arg-name:"file" description:"the files to be compressed" required:"yes"`
	} `positional-args:"yes"`
	Format string `short:"f" long:"format" choice:"gzip" choice:"deflate" choice:"zlib" default:"gzip" description:"compression format"`
	Level  string `short:"l" long:"level" choice:"fastest" choice:"default" choice:"best" default:"default" description:"compression level"`

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

	level, err := bunko.ParseLevel(c.Level)
	if err != nil {
		return err
	}

	success := 0
	n := len(c.Args.Files)
	for i, file := range c.Args.Files {
		c.logger = internal.NewLogger(i, n, file)

		if err = c.compress(string(file), format, level); err != nil {
			c.logger.Printf("compress error: %v", err)
			continue
		}

		success++
	}

	log.Printf("successfully compressed %d/%d files", success, n)
	return nil
}

func (c *Command) compress(name string, format bunko.Format, level bunko.Level) error {
	src, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open file error: %w", err)
	}
	defer src.Close()

	var size int64 = -1
	if fi, err := src.Stat(); err == nil {
		size = fi.Size()
	}

	basename := filepath.Base(name)
	dst, err := internal.OpenExclFile(".", basename, format.Ext(), 0666)
	if err != nil {
		return err
	}

	bar := internal.DefaultBytes(size, basename)

	enc, err := bunko.NewEncoder(dst, format, level)
	if err == nil {
		if _, err = io.Copy(enc, io.TeeReader(src, bar)); err == nil {
			err = enc.Close()
		} else {
			_ = enc.Close()
		}
	}
	if _, _ = bar.Close(), dst.Close(); err != nil {
		if removeErr := os.Remove(dst.Name()); removeErr != nil {
			c.logger.Printf(`clean up "%s" error: %v`, dst.Name(), removeErr)
		}

		return err
	}

	if fi, err := os.Stat(dst.Name()); err == nil && size >= 0 {
		c.logger.Printf(`wrote "%s"; %s -> %s (%.1f%% reduction)`,
			dst.Name(), humanize.IBytes(uint64(size)), humanize.IBytes(uint64(fi.Size())),
			bunko.CompressionRatio(int(size), int(fi.Size()))*100)
	} else {
		c.logger.Printf(`wrote "%s"`, dst.Name())
	}

	return nil
}

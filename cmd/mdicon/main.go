// Command mdicon draws the MDPreview application icon and writes it as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/mdpreview/mdicon"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		output  = flag.String("o", "AppIcon.png", "output PNG file")
		size    = flag.Int("size", mdicon.DefaultSize, "icon edge length in pixels")
		from    = flag.String("from", "#4A9EFF", "accent gradient start color")
		to      = flag.String("to", "#7C3AED", "accent gradient end color")
		text    = flag.String("text", "MD", "lettering drawn on the document")
		layout  = flag.String("layout", "", "write the resolved layout as JSON to this file")
		verbose = flag.Bool("v", false, "debug logging")
		fonts   stringList
	)
	flag.Var(&fonts, "font", "font file to try before the system fonts (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fromColor, err := mdicon.ParseHexColor(*from)
	if err != nil {
		log.Fatalf("-from: %v", err)
	}
	toColor, err := mdicon.ParseHexColor(*to)
	if err != nil {
		log.Fatalf("-to: %v", err)
	}

	icon, err := mdicon.New(
		mdicon.Size(*size),
		mdicon.Colors(fromColor, toColor),
		mdicon.Text(*text),
		mdicon.Fonts(fonts...),
		mdicon.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("configure icon: %v", err)
	}
	defer icon.Close()

	if *layout != "" {
		l := icon.Layout()
		data, err := l.JSON()
		if err != nil {
			log.Fatalf("encode layout: %v", err)
		}
		if err := os.WriteFile(*layout, data, 0644); err != nil {
			log.Fatalf("write layout: %v", err)
		}
	}

	if err := icon.Save(*output); err != nil {
		log.Fatalf("%v", err)
	}
}

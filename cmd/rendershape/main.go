// Command rendershape renders a single labeled node shape to stdout as a
// character grid. The label comes from the first argument or stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biantaishabi2/beautiful-mermaid/canvas"
	"github.com/biantaishabi2/beautiful-mermaid/markup"
	"github.com/biantaishabi2/beautiful-mermaid/shape"
)

func main() {
	var (
		kind     = flag.String("shape", "stadium", "Shape kind (stadium, rectangle, rounded)")
		ascii    = flag.Bool("ascii", false, "Use plain ASCII borders instead of Unicode box drawing")
		padding  = flag.Int("padding", 0, "Blank cells between label and border")
		maxWidth = flag.Int("max-width", 0, "Wrap the label to at most this many display cells (0 = no wrap)")
	)

	flag.Parse()

	label, err := readLabel(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading label: %v\n", err)
		os.Exit(1)
	}

	// Resolve markup before measuring: break tags and markdown become
	// canonical tags, which are then stripped for the text grid.
	label = markup.StripFormattingTags(markup.NormalizeBrTags(label))

	if *maxWidth > 0 {
		var wrapped []string
		for _, line := range strings.Split(label, "\n") {
			wrapped = append(wrapped, canvas.WrapText(line, *maxWidth)...)
		}
		label = strings.Join(wrapped, "\n")
	}

	opts := shape.Options{ASCII: *ascii, Padding: *padding}
	s := shape.Get(shape.Kind(*kind))
	dims := s.Dimensions(label, opts)
	fmt.Println(s.Render(label, dims, opts).String())
}

func readLabel(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

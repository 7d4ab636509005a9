package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	tagattr "github.com/KimNorgaard/go-tagattr"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [tag]",
	Short: "Scan a start tag's attribute list",
	Long: `Scan tokenizes the content of a start tag into key/value attributes.
The tag content is taken from the argument or, if absent, from stdin.
Unless --pos is given, scanning starts right after the leading element name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("html", false, "use the permissive HTML dialect")
	scanCmd.Flags().Bool("no-checks", false, "skip duplicate-key detection")
	scanCmd.Flags().Int("pos", -1, "byte offset of the first attribute")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runScan(cmd *cobra.Command, args []string) error {
	var buf []byte
	if len(args) == 1 {
		buf = []byte(args[0])
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		buf = data
	}

	html, err := cmd.Flags().GetBool("html")
	if err != nil {
		return fmt.Errorf("failed to get html flag: %w", err)
	}
	noChecks, err := cmd.Flags().GetBool("no-checks")
	if err != nil {
		return fmt.Errorf("failed to get no-checks flag: %w", err)
	}
	pos, err := cmd.Flags().GetInt("pos")
	if err != nil {
		return fmt.Errorf("failed to get pos flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if pos < 0 {
		pos = elementNameEnd(buf)
	}
	if pos > len(buf) {
		return fmt.Errorf("pos %d is past the end of the %d-byte tag", pos, len(buf))
	}

	attrs := tagattr.New(buf, pos, tagattr.Checks(!noChecks))
	if html {
		attrs = tagattr.NewHTML(buf, pos, tagattr.Checks(!noChecks))
	}

	switch format {
	case "pretty":
		return printPretty(cmd, attrs)
	case "json":
		return printJSON(attrs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// elementNameEnd returns the offset just past the leading element name,
// i.e. the first whitespace byte (or the end of the tag).
func elementNameEnd(buf []byte) int {
	for i, b := range buf {
		switch b {
		case ' ', '\t', '\r', '\n':
			return i
		}
	}
	return len(buf)
}

func printPretty(cmd *cobra.Command, attrs *tagattr.Attributes) error {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isatty.IsTerminal(os.Stdout.Fd()))
	keyC := color.New(color.FgCyan)
	errC := color.New(color.FgRed)
	if !useColor {
		keyC.DisableColor()
		errC.DisableColor()
	}

	for a, err := range attrs.All() {
		if err != nil {
			errC.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		keyC.Print(string(a.Key))
		fmt.Printf(" = %q\n", a.Value)
	}
	return nil
}

type jsonAttr struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func printJSON(attrs *tagattr.Attributes) error {
	out := []jsonAttr{}
	for a, err := range attrs.All() {
		if err != nil {
			out = append(out, jsonAttr{Error: err.Error()})
			continue
		}
		out = append(out, jsonAttr{Key: string(a.Key), Value: string(a.Value)})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

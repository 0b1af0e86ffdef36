// Command readable runs the extraction pipeline over a file or stdin
// and writes the result as HTML, plain text, Markdown, or JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/cobra"

	"github.com/arnegard/readable"
)

var (
	inputPath    string
	outputPath   string
	outputFormat string
	timeout      time.Duration
	minLength    int
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readable",
		Short: "Extract the readable content subtree from an HTML document",
	}

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract content from a file or stdin",
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input HTML file (default: stdin)")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "html", "Output format (html|text|markdown|json)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Extraction timeout")
	extractCmd.Flags().IntVar(&minLength, "min-length", 0, "Override the minimum accepted content length")
	extractCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log extraction debug messages to stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readable dev")
		},
	}

	rootCmd.AddCommand(extractCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	raw, err := readInput()
	if err != nil {
		return err
	}

	opts := []readable.Option{readable.WithTimeout(timeout)}
	if minLength > 0 {
		opts = append(opts, readable.WithMinContentLength(minLength))
	}
	if verbose {
		opts = append(opts, readable.WithLogger(func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		}))
	}

	extractor := readable.New(opts...)
	article, err := extractor.ExtractFromHTML(string(raw), nil)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	output, err := formatArticle(article)
	if err != nil {
		return err
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, []byte(output), 0644)
	}
	fmt.Println(output)
	return nil
}

func readInput() ([]byte, error) {
	if inputPath == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inputPath)
}

func formatArticle(article *readable.Article) (string, error) {
	switch outputFormat {
	case "html":
		return article.Content, nil
	case "text":
		return article.TextContent, nil
	case "markdown":
		converter := md.NewConverter("", true, nil)
		return converter.ConvertString(article.Content)
	case "json":
		out, err := json.MarshalIndent(article, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", outputFormat)
	}
}

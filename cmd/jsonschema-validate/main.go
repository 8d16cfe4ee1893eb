// Package main provides the CLI entry point for jsonschema-validate, a tool
// that validates JSON documents against a JSON Schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/DrDeano/jsonschema"
)

// ErrDocumentsRejected indicates that at least one document failed validation.
var ErrDocumentsRejected = errors.New("one or more documents failed validation")

type options struct {
	schemaPath string
	yamlSchema bool
	verbose    bool
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "jsonschema-validate --schema schema.json [flags] <instance.json> [instance2.json ...]",
		Short: "Validate JSON documents against a JSON Schema",
		Long: `jsonschema-validate compiles a schema document once and validates each
given JSON document against it. Pass "-" to read a document from stdin.
One JSON result line is written per rejected document (per every document
with --verbose); the exit code is non-zero when any document is rejected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "path to the schema document")
	rootCmd.Flags().BoolVar(&opts.yamlSchema, "yaml", false, "treat the schema document as YAML")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "also report documents that validate")

	if err := rootCmd.MarkFlagRequired("schema"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type result struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func run(opts *options, args []string) error {
	schemaData, err := os.ReadFile(opts.schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	var schema *jsonschema.Schema
	if opts.yamlSchema {
		schema, err = jsonschema.CompileYAML(schemaData)
	} else {
		schema, err = jsonschema.Compile(schemaData)
	}
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	defer schema.Release()

	out := json.NewEncoder(os.Stdout)
	rejected := false

	for _, arg := range args {
		data, err := readDocument(arg)
		if err != nil {
			rejected = true
			_ = out.Encode(result{File: arg, Error: err.Error()})
			continue
		}

		valid, err := schema.ValidateJSON(data)
		switch {
		case err != nil:
			rejected = true
			_ = out.Encode(result{File: arg, Error: err.Error()})
		case !valid:
			rejected = true
			_ = out.Encode(result{File: arg, Valid: false})
		case opts.verbose:
			_ = out.Encode(result{File: arg, Valid: true})
		}
	}

	if rejected {
		return ErrDocumentsRejected
	}
	return nil
}

func readDocument(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

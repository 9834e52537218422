package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/driver"
	"github.com/HZMonama/regolab/internal/resolve"
	"github.com/HZMonama/regolab/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [flags] document.json",
	Short: "Infer the shape of a JSON document",
	Long:  `Schema builds the type tree an editor would use for input/data completion, comments allowed`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().String("label", "input", "source label for the document (input|data)")
	schemaCmd.Flags().String("path", "", "resolve a reference path instead of dumping the tree (e.g. input.identity.)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	label, _ := cmd.Flags().GetString("label")
	path, _ := cmd.Flags().GetString("path")
	if label != "input" && label != "data" {
		return fmt.Errorf("unknown label %q (expected input or data)", label)
	}

	node, err := driver.BuildSchema(args[0], label)
	if err != nil {
		return fmt.Errorf("schema build failed: %w", err)
	}
	if node == nil {
		return fmt.Errorf("%s does not contain valid JSON", args[0])
	}

	if path != "" {
		return resolvePath(label, node, path)
	}
	printSchema(os.Stdout, label, node, 0)
	return nil
}

// resolvePath shows what the editor would offer at the given reference:
// hover info when the path lands on a node, completions otherwise.
func resolvePath(label string, node *schema.Node, path string) error {
	ctx := &schema.Context{}
	if label == "data" {
		ctx.Data = node
	} else {
		ctx.Input = node
	}

	if info := resolve.Hover(ctx, path); info != nil {
		fmt.Fprintf(os.Stdout, "type:    %s\n", info.Type)
		if info.Example != "" {
			fmt.Fprintf(os.Stdout, "example: %s\n", info.Example)
		}
		fmt.Fprintf(os.Stdout, "source:  %s\n", info.Source)
		return nil
	}

	candidates := resolve.Complete(ctx, path)
	if len(candidates) == 0 {
		return fmt.Errorf("nothing at %q", path)
	}
	for _, c := range candidates {
		fmt.Fprintf(os.Stdout, "%-24s %s\n", c.Label, c.Detail)
	}
	return nil
}

func printSchema(w *os.File, name string, node *schema.Node, depth int) {
	fmt.Fprintf(w, "%*s%s: %s\n", depth*2, "", name, node.TypeDescription())
	switch node.Type {
	case schema.TypeObject:
		for _, k := range node.Keys() {
			printSchema(w, k, node.Children[k], depth+1)
		}
	case schema.TypeArray:
		if node.ArrayItem != nil && node.ArrayItem.Type == schema.TypeObject {
			printSchema(w, "[_]", node.ArrayItem, depth+1)
		}
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"folio/internal/catalog"
)

// ValidFormats defines the allowed output formats of the catalog command.
var ValidFormats = []string{"text", "json"}

// NewCatalogCommand creates the catalog command, which validates a catalog
// and prints what it holds.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and list the project catalog",
		Long: `Load the catalog (the built-in one, or --catalog FILE), resolve image
references against --assets, and print one row per project.

Exits non-zero when the catalog cannot be parsed or has duplicate or empty titles.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			cfg, err := loadConfig(cmd, rootOpts)
			if err != nil {
				return err
			}
			c, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			if format == "json" {
				return writeCatalogJSON(cmd.OutOrStdout(), c)
			}
			return writeCatalogTable(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (json|text)")
	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeCatalogJSON(w io.Writer, c *catalog.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{"projects": c.All()}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

func writeCatalogTable(w io.Writer, c *catalog.Catalog) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TITLE", "CATEGORY", "IMAGES", "TECH")
	for _, p := range c.All() {
		names := make([]string, 0, len(p.Tech))
		for _, tag := range p.Tech {
			names = append(names, tag.Name)
		}
		t.Row(p.Title, p.Category, strconv.Itoa(len(p.Images)), strings.Join(names, ", "))
	}
	_, err := fmt.Fprintf(w, "%s\n%d projects, %d images, categories: %s\n",
		t.Render(), c.Len(), c.ImageCount(), strings.Join(c.Categories(), ", "))
	return err
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pianostudio/internal/domain"
)

type windowOptions struct {
	page   int
	total  int
	size   int
	asJSON bool
}

func newWindowCmd() *cobra.Command {
	opts := windowOptions{}
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page buttons a list view shows for a page",
		Example: `  studioadmin window --page 10 --total 20
  studioadmin window --page 3 --total 4 --size 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.page, "page", 1, "current page (1-based)")
	cmd.Flags().IntVar(&opts.total, "total", 1, "total number of pages")
	cmd.Flags().IntVar(&opts.size, "size", domain.DefaultWindowSize, "number of page buttons in the window; values below 3 show 3")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the window as JSON")
	return cmd
}

func runWindow(out io.Writer, opts windowOptions) error {
	if opts.total < 1 {
		return fmt.Errorf("total must be >= 1, got %d", opts.total)
	}
	if opts.page < 1 || opts.page > opts.total {
		return fmt.Errorf("page must be between 1 and %d, got %d", opts.total, opts.page)
	}

	w := domain.ComputeWindow(opts.page, opts.total, opts.size)
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(w)
	}
	_, err := fmt.Fprintln(out, renderWindow(opts.page, opts.total, w))
	return err
}

// renderWindow draws the navigation bar, bracketing the current page. First and previous
// are only drawn when they lead somewhere, and likewise next and last.
func renderWindow(current, total int, w domain.PageWindow) string {
	var parts []string
	if _, ok := domain.NavigateTo(1, current, total); ok {
		parts = append(parts, "«")
	}
	if _, ok := domain.NavigateTo(current-1, current, total); ok {
		parts = append(parts, "‹")
	}
	if w.ShowFirst {
		parts = append(parts, "1")
	}
	if w.ShowLeftEllipsis {
		parts = append(parts, "…")
	}
	for _, p := range w.Pages {
		if p == current {
			parts = append(parts, "["+strconv.Itoa(p)+"]")
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	if w.ShowRightEllipsis {
		parts = append(parts, "…")
	}
	if w.ShowLast {
		parts = append(parts, strconv.Itoa(total))
	}
	if _, ok := domain.NavigateTo(current+1, current, total); ok {
		parts = append(parts, "›")
	}
	if _, ok := domain.NavigateTo(total, current, total); ok {
		parts = append(parts, "»")
	}
	return strings.Join(parts, " ")
}

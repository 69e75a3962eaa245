package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/k0kubun/pp/v3"

	"github.com/letieu/idea-board/internal/idea"
	"github.com/letieu/idea-board/internal/taxonomy"
)

func renderIdea(w io.Writer, rec idea.Idea, origin string) {
	fmt.Fprintf(w, "%s\n", rec.Text)
	fmt.Fprintf(w, "  topic: %s  theme: %s  upvotes: %d\n", rec.Topic, rec.Theme, rec.Upvotes)
	fmt.Fprintf(w, "  id: %s  share: %s\n", rec.ID, rec.ShareLink(origin))
}

func renderList(w io.Writer, title string, ideas []idea.Idea, total int) {
	fmt.Fprintf(w, "%s (%d of %d)\n", title, len(ideas), total)
	if len(ideas) == 0 {
		fmt.Fprintln(w, "  no ideas yet")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, rec := range ideas {
		fmt.Fprintf(tw, "  %d.\t%d\t%s\t%s\t%s\n", i+1, rec.Upvotes, rec.Text, rec.Topic, rec.ID)
	}
	tw.Flush()
}

func renderCategories(w io.Writer, categories []taxonomy.Category) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPOPULARITY\tTRENDING\tTOPICS")
	for _, c := range categories {
		trending := ""
		if c.Trending {
			trending = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d%%\t%s\t%s\n", c.Name, c.Popularity, trending, strings.Join(c.Topics, ", "))
	}
	tw.Flush()
}

// dump pretty-prints v without colour escapes.
func dump(w io.Writer, v any) error {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	printer.SetOutput(w)
	_, err := printer.Println(v)
	return err
}

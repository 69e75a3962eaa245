package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/letieu/idea-board/internal/idea"
	"github.com/letieu/idea-board/internal/taxonomy"
)

type root struct {
	build Builder
	once  sync.Once
	app   *App
	err   error
}

func (r *root) get() (*App, error) {
	r.once.Do(func() {
		r.app, r.err = r.build()
	})
	return r.app, r.err
}

// NewRootCommand builds the ideas command tree. build is called once, by
// the first command that needs the App.
func NewRootCommand(out io.Writer, build Builder) *cobra.Command {
	r := &root{build: build}

	cmd := &cobra.Command{
		Use:           "ideas",
		Short:         "Generate, browse, upvote and share website ideas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.AddCommand(
		r.generateCommand(),
		r.listCommand(idea.Popular, "Most upvoted ideas"),
		r.listCommand(idea.Recent, "Newest ideas"),
		r.upvoteCommand(),
		r.shareCommand(),
		r.categoriesCommand(),
		r.topicsCommand(),
		r.snapshotCommand(),
	)
	return cmd
}

func (r *root) generateCommand() *cobra.Command {
	var category string
	var topics []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new idea, optionally within a category and topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}
			coord := app.Coordinator

			if category == "" && len(topics) > 0 {
				cat, err := coord.CategoryOf(topics[0])
				if err != nil {
					return err
				}
				category = cat.Name
			}
			if cat, ok := coord.ResolveCategory(category); ok {
				category = cat.Name
			}
			if category != "" {
				if err := coord.SelectCategory(category); err != nil {
					return err
				}
			}
			seen := make(map[string]struct{}, len(topics))
			for _, t := range topics {
				if _, dup := seen[t]; dup {
					continue
				}
				seen[t] = struct{}{}
				if err := coord.SelectTopic(t); err != nil {
					return err
				}
			}

			rec, err := coord.Generate(cmd.Context())
			if err != nil {
				return err
			}
			renderIdea(cmd.OutOrStdout(), rec, app.Config.Share.Origin)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name or slug to generate in")
	cmd.Flags().StringSliceVarP(&topics, "topic", "t", nil, "topic within the category (repeatable)")
	return cmd
}

func (r *root) listCommand(rank idea.Rank, short string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   string(rank),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}
			coord := app.Coordinator

			if limit <= 0 {
				limit = app.Config.Feed.RecentLimit
				if rank == idea.Popular {
					limit = app.Config.Feed.PopularLimit
				}
			}

			if rank == idea.Popular {
				_, err = coord.LoadPopular(cmd.Context(), limit)
			} else {
				_, err = coord.LoadRecent(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			ideas := coord.Recent()
			title := "Recent ideas"
			if rank == idea.Popular {
				ideas = coord.Popular()
				title = "Popular ideas"
			}
			renderList(cmd.OutOrStdout(), title, ideas, coord.Total(rank))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of ideas to fetch (default from config)")
	return cmd
}

func (r *root) upvoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upvote <id>...",
		Short: "Upvote one or more ideas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if err := app.Coordinator.Init(ctx); err != nil {
				app.Logger.Warnw("feeds not fully loaded", "error", err)
			}

			var mu sync.Mutex
			p := pool.New().WithErrors().WithContext(ctx)
			for _, id := range args {
				p.Go(func(ctx context.Context) error {
					count, skipped, err := app.Guard.Submit(ctx, id, app.Coordinator.Upvote)

					mu.Lock()
					defer mu.Unlock()
					switch {
					case skipped:
						fmt.Fprintf(out, "%s: vote already pending, skipped\n", id)
					case err != nil:
						fmt.Fprintf(out, "%s: upvote failed\n", id)
						return err
					default:
						fmt.Fprintf(out, "%s: %d upvotes\n", id, count)
					}
					return nil
				})
			}
			return p.Wait()
		},
	}
}

func (r *root) shareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share <hash|link>",
		Short: "Show a shared idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}

			rec, err := app.Coordinator.ResolveShared(cmd.Context(), args[0])
			if idea.IsNotFound(err) {
				return errors.New("this shared idea doesn't exist or may have been removed")
			}
			if err != nil {
				return err
			}
			renderIdea(cmd.OutOrStdout(), rec, app.Config.Share.Origin)
			return nil
		},
	}
}

// featuredCount is how many categories are listed without --all.
const featuredCount = 6

func (r *root) categoriesCommand() *cobra.Command {
	var sortBy string
	var all bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List idea categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}

			coord := app.Coordinator
			out := cmd.OutOrStdout()

			var categories []taxonomy.Category
			switch {
			case sortBy != "":
				by, err := taxonomy.ParseSortBy(sortBy)
				if err != nil {
					return err
				}
				if categories, err = coord.SortedCategories(by); err != nil {
					return err
				}
			case all:
				categories = coord.Categories()
			default:
				categories = coord.FeaturedCategories(featuredCount)
			}
			renderCategories(out, categories)

			if hidden := len(coord.Categories()) - len(categories); hidden > 0 {
				fmt.Fprintf(out, "%d more, use --all to show every category\n", hidden)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "popularity, trending or alphabetical (lists every category)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show every category")
	return cmd
}

func (r *root) topicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics <category|slug>",
		Short: "List the topics of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}

			name := args[0]
			if cat, ok := app.Coordinator.ResolveCategory(name); ok {
				name = cat.Name
			}
			topics, err := app.Coordinator.TopicsOf(name)
			if err != nil {
				return err
			}
			for _, t := range topics {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

func (r *root) snapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Load both feeds and dump the engagement state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.get()
			if err != nil {
				return err
			}

			if err := app.Coordinator.Init(cmd.Context()); err != nil {
				app.Logger.Warnw("feeds not fully loaded", "error", err)
			}
			return dump(cmd.OutOrStdout(), app.Coordinator.Snapshot())
		},
	}
}

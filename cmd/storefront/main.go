package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-storefront/cmd/storefront/internal/bootstrap"
	"github.com/goliatone/go-storefront/internal/commands"
	blogcmd "github.com/goliatone/go-storefront/internal/commands/blog"
	catalogcmd "github.com/goliatone/go-storefront/internal/commands/catalog"
	navigationcmd "github.com/goliatone/go-storefront/internal/commands/navigation"
	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/routing"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	root, a := newRootCommand(out)
	defer func() { a.module.Close() }()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

type app struct {
	out      io.Writer
	format   string
	provider string
	preview  bool
	locale   string
	retries  int
	module   *bootstrap.Module
}

func newRootCommand(out io.Writer) (*cobra.Command, *app) {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Query the storefront catalog, blog and localized routes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.format, "format", formatTable, "Output format: table or json")
	flags.StringVar(&a.provider, "provider", "", "Content provider: graphql or rest (defaults to STOREFRONT_CONTENT_PROVIDER)")
	flags.BoolVar(&a.preview, "preview", false, "Read draft content through the preview API")
	flags.StringVar(&a.locale, "locale", "", "Startup locale, e.g. en or sv-SE (defaults to LANG)")
	flags.IntVar(&a.retries, "retries", 1, "Retries for a command failing on a content source error")

	root.AddCommand(
		a.routesCommand(),
		a.resolveCommand(),
		a.switchCommand(),
		a.categoriesCommand(),
		a.productsCommand(),
		a.productCommand(),
		a.postsCommand(),
		a.postCommand(),
	)
	return root, a
}

func (a *app) initialize() error {
	switch a.format {
	case formatTable, formatJSON:
	default:
		return fmt.Errorf("unsupported format %q", a.format)
	}
	if a.retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", a.retries)
	}
	module, err := moduleBuilder(bootstrap.Options{
		Provider: a.provider,
		Preview:  a.preview,
		Locale:   a.locale,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	logger := commands.EnsureLogger(module.Logger)
	module.Subscribe(
		runner.WithMaxRetries(a.retries),
		runner.WithMiddleware(commands.RetrySourceErrors()),
		runner.WithErrorHandler(func(err error) {
			logger.Debug("command attempt failed", "error", err)
		}),
		runner.WithDoneHandler(func(*runner.Handler) {}),
	)
	a.module = module
	return nil
}

func (a *app) routesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes [locale]",
		Short: "List the generated localized routes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := navigationcmd.ListRoutesQuery{Result: commands.NewResult[[]routing.Route]()}
			if len(args) == 1 {
				msg.Locale = strings.TrimSpace(args[0])
			}
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderRoutes(msg.Result.Value())
		},
	}
}

func (a *app) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a path to its route, title and alternate links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := navigationcmd.ResolvePathCommand{Path: args[0], Result: commands.NewResult[navigationcmd.Resolution]()}
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderResolution(msg.Result.Value())
		},
	}
}

func (a *app) switchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <path> <locale>",
		Short: "Show the equivalent of a path in another locale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := navigationcmd.SwitchLocaleCommand{
				Path:   args[0],
				Locale: args[1],
				Result: commands.NewResult[navigationcmd.Resolution](),
			}
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderResolution(msg.Result.Value())
		},
	}
}

func (a *app) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg := catalogcmd.ListCategoriesQuery{Result: commands.NewResult[[]content.Category]()}
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderCategories(msg.Result.Value())
		},
	}
}

func (a *app) productsCommand() *cobra.Command {
	msg := catalogcmd.ListProductsQuery{}
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally of one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg.Result = commands.NewResult[content.ProductPage]()
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderProducts(msg.Result.Value())
		},
	}
	cmd.Flags().StringVar(&msg.Category, "category", "", "Category slug to list products of")
	cmd.Flags().IntVar(&msg.Limit, "limit", 0, "Page size (defaults to the provider page size)")
	cmd.Flags().IntVar(&msg.Skip, "skip", 0, "Number of products to skip")
	return cmd
}

func (a *app) productCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <slug>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := catalogcmd.GetProductQuery{Slug: args[0], Result: commands.NewResult[*content.Product]()}
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderProduct(msg.Result.Value())
		},
	}
}

func (a *app) postsCommand() *cobra.Command {
	msg := blogcmd.ListPostsQuery{}
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List blog posts, optionally filtered by tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg.Result = commands.NewResult[blogcmd.PostListing]()
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderPosts(msg.Result.Value())
		},
	}
	cmd.Flags().StringVar(&msg.Tag, "tag", "", "Only list posts carrying this tag")
	cmd.Flags().IntVar(&msg.Limit, "limit", 0, "Page size (defaults to the provider page size)")
	cmd.Flags().IntVar(&msg.Skip, "skip", 0, "Number of posts to skip")
	return cmd
}

func (a *app) postCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post <slug>",
		Short: "Show one blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := blogcmd.GetPostQuery{Slug: args[0], Result: commands.NewResult[*content.BlogPost]()}
			if err := dispatcher.Dispatch(cmd.Context(), msg); err != nil {
				return err
			}
			return a.renderPost(msg.Result.Value())
		},
	}
}

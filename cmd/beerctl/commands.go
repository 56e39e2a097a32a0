package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samvad-hq/beer-inventory-client/internal/app"
	"github.com/samvad-hq/beer-inventory-client/internal/config"
	"github.com/samvad-hq/beer-inventory-client/internal/logger"
	"github.com/samvad-hq/beer-inventory-client/pkg/beerclient"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	v   *viper.Viper
	out io.Writer
	app *app.App
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "beerctl",
		Short:         "Command-line client for the beer inventory API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.init()
		},
	}

	flags := root.PersistentFlags()
	flags.String("base-url", "", "Base URL of the beer inventory API")
	flags.Int64("timeout", 0, "Request timeout in seconds")
	flags.StringP("output", "o", "", "Output format (json, yaml or table)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	bindFlag(c.v, "beer_api_base_url", flags.Lookup("base-url"))
	bindFlag(c.v, "beer_api_timeout_seconds", flags.Lookup("timeout"))
	bindFlag(c.v, "output_format", flags.Lookup("output"))
	bindFlag(c.v, "log_level", flags.Lookup("log-level"))

	root.AddCommand(
		c.getCmd(),
		c.createCmd(),
		c.updateCmd(),
		c.deleteCmd(),
		c.listCmd(),
	)
	return root
}

// bindFlag ties a flag to a config key. viper prefers the flag over env and
// defaults only once the user sets it.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	_ = v.BindPFlag(key, flag)
}

func (c *cli) init() error {
	cfg, err := config.LoadWith(c.v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sugar, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a, err := app.New(cfg, logger.NewZapLogger(sugar), c.out)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	c.app = a
	return nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid beer id %q: %w", raw, err)
	}
	return id, nil
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <beer-id>",
		Short: "Show a single beer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			beer, err := c.app.Client().GetBeerByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.app.Render(beer)
		},
	}
}

// beerFlags are the record fields settable from the command line.
type beerFlags struct {
	name     string
	style    string
	upc      string
	quantity int
	price    string
}

func (f *beerFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Beer name")
	fs.StringVar(&f.style, "style", "", "Beer style (e.g. IPA, PALE_ALE)")
	fs.StringVar(&f.upc, "upc", "", "Universal product code")
	fs.IntVar(&f.quantity, "quantity", 0, "Quantity on hand")
	fs.StringVar(&f.price, "price", "", "Price as a decimal (e.g. 12.99)")
}

// apply copies the flags the user changed onto beer.
func (f *beerFlags) apply(fs *pflag.FlagSet, beer *beerclient.Beer) error {
	if fs.Changed("name") {
		beer.Name = f.name
	}
	if fs.Changed("style") {
		style, err := beerclient.ParseBeerStyle(f.style)
		if err != nil {
			return err
		}
		beer.Style = style
	}
	if fs.Changed("upc") {
		beer.UPC = f.upc
	}
	if fs.Changed("quantity") {
		qty := f.quantity
		beer.QuantityOnHand = &qty
	}
	if fs.Changed("price") {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", f.price, err)
		}
		beer.Price = &price
	}
	return nil
}

func (c *cli) createCmd() *cobra.Command {
	var f beerFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a beer and show the stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var beer beerclient.Beer
			if err := f.apply(cmd.Flags(), &beer); err != nil {
				return err
			}
			created, err := c.app.Client().CreateBeer(cmd.Context(), beer)
			if err != nil {
				return err
			}
			return c.app.Render(created)
		},
	}
	f.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *cli) updateCmd() *cobra.Command {
	var f beerFlags
	cmd := &cobra.Command{
		Use:   "update <beer-id>",
		Short: "Change fields of an existing beer",
		Long: `Reads the current record, applies the given flags and writes the full
record back. Fields without a flag keep their stored value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client := c.app.Client()
			current, err := client.GetBeerByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := f.apply(cmd.Flags(), current); err != nil {
				return err
			}
			current.ID = id
			updated, err := client.UpdateBeer(cmd.Context(), *current)
			if err != nil {
				return err
			}
			return c.app.Render(updated)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <beer-id>",
		Short: "Delete a beer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Client().DeleteBeer(cmd.Context(), id); err != nil {
				return err
			}
			c.app.Printf("deleted %s\n", id)
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	var (
		name          string
		style         string
		showInventory bool
		page          int
		size          int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List beers with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			var params beerclient.ListParams
			if fs.Changed("name") {
				params.BeerName = &name
			}
			if fs.Changed("style") {
				s, err := beerclient.ParseBeerStyle(style)
				if err != nil {
					return err
				}
				params.BeerStyle = &s
			}
			if fs.Changed("show-inventory") {
				params.ShowInventory = &showInventory
			}
			if fs.Changed("page") {
				params.PageNumber = &page
			}
			if fs.Changed("size") {
				params.PageSize = &size
			}

			result, err := c.app.Client().ListBeers(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.app.Render(result)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&name, "name", "", "Filter by beer name")
	fs.StringVar(&style, "style", "", "Filter by beer style")
	fs.BoolVar(&showInventory, "show-inventory", false, "Include quantity on hand")
	fs.IntVar(&page, "page", 1, "Page number, starting at 1")
	fs.IntVar(&size, "size", 25, "Page size (at most 1000)")
	return cmd
}

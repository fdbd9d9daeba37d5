package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nikolayk812/testshop/internal/config"
	"github.com/nikolayk812/testshop/internal/domain"
	"github.com/nikolayk812/testshop/internal/service"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("shop failed")
		stop()
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "shop",
		Usage:     "inspect and price the shopping cart described by an order file",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the TOML order file",
				Value:   "shop.toml",
				Sources: cli.EnvVars("SHOP_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "overrides [log] level from the order file",
				Sources: cli.EnvVars("SHOP_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print the products in the cart",
				Action: listAction,
			},
			{
				Name:   "total",
				Usage:  "print the cart total",
				Action: totalAction,
			},
			{
				Name:  "price",
				Usage: "print the order price after discount",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "remove",
						Usage: "product ID to remove from the cart before pricing, repeatable",
					},
				},
				Action: priceAction,
			},
		},
	}
}

// session is the state every subcommand starts from.
type session struct {
	cfg    config.Config
	user   *domain.UserAccount
	logger zerolog.Logger
	out    io.Writer
}

func newSession(cmd *cli.Command) (session, error) {
	root := cmd.Root()

	cfg, err := config.Load(root.String("config"))
	if err != nil {
		return session{}, fmt.Errorf("config.Load: %w", err)
	}

	level := cfg.LogLevel()
	if s := root.String("log-level"); s != "" {
		level, err = zerolog.ParseLevel(s)
		if err != nil {
			return session{}, fmt.Errorf("log level[%s] is not valid: %w", s, err)
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: root.ErrWriter, NoColor: true}).
		Level(level).
		With().Timestamp().
		Logger()

	user := cfg.Account()
	logger.Debug().
		Stringer("user_id", user.ID).
		Str("user", user.FullName()).
		Int("products", user.ShoppingCart.Len()).
		Msg("cart loaded")

	return session{
		cfg:    cfg,
		user:   user,
		logger: logger,
		out:    root.Writer,
	}, nil
}

func listAction(_ context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	for _, p := range s.user.ShoppingCart.Products() {
		fmt.Fprintln(s.out, p)
	}

	return nil
}

func totalAction(_ context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	total, err := domain.NewMoney(s.user.ShoppingCart.GetCartTotalPrice(), s.cfg.CurrencyUnit())
	if err != nil {
		return fmt.Errorf("cart total: %w", err)
	}

	fmt.Fprintln(s.out, total)

	return nil
}

func priceAction(_ context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	for _, raw := range cmd.StringSlice("remove") {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("product ID[%s] is not valid: %w", raw, err)
		}

		if err := s.user.ShoppingCart.RemoveProductFromCart(domain.Product{ID: id}); err != nil {
			return fmt.Errorf("cart.RemoveProductFromCart: %w", err)
		}
		s.logger.Debug().Int("product_id", id).Msg("product removed")
	}

	utility, err := s.cfg.DiscountUtility()
	if err != nil {
		return err
	}

	orderService, err := service.NewOrderService(utility, service.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("service.NewOrderService: %w", err)
	}

	quote, err := orderService.Quote(s.user, s.cfg.CurrencyUnit())
	if err != nil {
		return fmt.Errorf("orderService.Quote: %w", err)
	}

	fmt.Fprintf(s.out, "subtotal: %s\n", quote.Subtotal)
	fmt.Fprintf(s.out, "discount: %s\n", quote.Discount)
	fmt.Fprintf(s.out, "total:    %s\n", quote.Total)

	return nil
}

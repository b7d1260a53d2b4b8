package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// newClient is swapped out by tests.
var newClient = CreateClient

type listFunc func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error)

type getFunc func(ctx context.Context, client culture.Client, id int, query *culture.Query) (*culture.Response, error)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Query events",
		Long:    "List events with filters or fetch a single event by id",
	}

	cmd.AddCommand(newListCommand("list", "List events", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Events(ctx, query)
	}))
	cmd.AddCommand(newGetCommand("event", func(ctx context.Context, client culture.Client, id int, query *culture.Query) (*culture.Response, error) {
		return client.Event(ctx, id, query)
	}))

	return cmd
}

// NewPlacesCommand creates the places command group.
func NewPlacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "places",
		Aliases: []string{"place"},
		Short:   "Query places",
		Long:    "List places with filters or fetch a single place by id",
	}

	cmd.AddCommand(newListCommand("list", "List places", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Places(ctx, query)
	}))
	cmd.AddCommand(newGetCommand("place", func(ctx context.Context, client culture.Client, id int, query *culture.Query) (*culture.Response, error) {
		return client.Place(ctx, id, query)
	}))

	return cmd
}

// NewArticlesCommand creates the articles command.
func NewArticlesCommand() *cobra.Command {
	return newCollectionCommand("articles", "List articles", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Articles(ctx, query)
	})
}

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand() *cobra.Command {
	return newCollectionCommand("categories", "List categories", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Categories(ctx, query)
	})
}

// NewTagsCommand creates the tags command.
func NewTagsCommand() *cobra.Command {
	return newCollectionCommand("tags", "List tags", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Tags(ctx, query)
	})
}

// NewLocalesCommand creates the locales command.
func NewLocalesCommand() *cobra.Command {
	return newCollectionCommand("locales", "List locales", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Locales(ctx, query)
	})
}

// NewOrganizationsCommand creates the organizations command.
func NewOrganizationsCommand() *cobra.Command {
	cmd := newCollectionCommand("organizations", "List organizations", func(ctx context.Context, client culture.Client, query *culture.Query) (*culture.Response, error) {
		return client.Organizations(ctx, query)
	})
	cmd.Aliases = []string{"orgs"}

	return cmd
}

// newCollectionCommand is a top level command that lists a collection directly.
func newCollectionCommand(use, short string, list listFunc) *cobra.Command {
	cmd := newListCommand(use, short, list)
	cmd.Long = short + " with optional filters"

	return cmd
}

func newListCommand(use, short string, list listFunc) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := flags.buildQuery(cmd)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := list(ctx, client, query)
			if body, ok := csvBody(err, flags); ok {
				_, err = cmd.OutOrStdout().Write(body)

				return err
			}

			if err != nil {
				return fmt.Errorf("failed to fetch: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, flags.tableColumns())
		},
	}

	addQueryFlags(cmd, flags)

	return cmd
}

func newGetCommand(item string, get getFunc) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Get " + item + " details",
		Long:  "Display a single " + item + " by its numeric id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			query, err := flags.buildQuery(cmd)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := get(ctx, client, id, query)
			if body, ok := csvBody(err, flags); ok {
				_, err = cmd.OutOrStdout().Write(body)

				return err
			}

			if err != nil {
				return fmt.Errorf("failed to get %s %d: %w", item, id, err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, flags.tableColumns())
		},
	}

	addQueryFlags(cmd, flags)

	return cmd
}

// csvBody returns the raw payload of a --format csv request, which the
// client reports as a *culture.ParseError.
func csvBody(err error, flags *queryFlags) ([]byte, bool) {
	if err == nil || flags.format != string(culture.FormatCSV) {
		return nil, false
	}

	parseErr := &culture.ParseError{}
	if !errors.As(err, &parseErr) {
		return nil, false
	}

	return parseErr.Body, true
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q, must be a positive integer", constants.ErrInvalidID, arg)
	}

	return id, nil
}

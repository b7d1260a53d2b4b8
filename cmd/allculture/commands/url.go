package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/allculture"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// NewURLCommand creates the url command, which prints the request URL a query
// resolves to without sending it.
func NewURLCommand() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "url RESOURCE [ID]",
		Short: "Print the request URL for a query",
		Long: `Validate a query and print the URL it would be sent to, without contacting the API.

RESOURCE is one of: ` + strings.Join(culture.AllowedTypes(), ", "),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := culture.ParseResource(args[0])
			if err != nil {
				return err
			}

			var id int

			if len(args) == 2 {
				id, err = parseID(args[1])
				if err != nil {
					return err
				}
			}

			query, err := flags.buildQuery(cmd)
			if err != nil {
				return err
			}

			request, err := query.Request(resource, id)
			if err != nil {
				return err
			}

			base := allculture.NormalizeURL(viper.GetString("api"))
			if base == "" {
				base = constants.DefaultBaseURL
			}

			url, err := request.URL(base)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)

			return err
		},
	}

	addQueryFlags(cmd, flags)

	return cmd
}

// NewImageURLCommand creates the image-url command.
func NewImageURLCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "image-url NAME",
		Short: "Print the URL of a stored image",
		Long:  "Print the absolute URL of an uploaded image, optionally addressing a resized copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") != cmd.Flags().Changed("height") {
				return constants.ErrDimensionsNeeded
			}

			uploads := allculture.NormalizeURL(viper.GetString("uploads_url"))
			if uploads == "" {
				uploads = constants.DefaultUploadsURL
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), culture.ImageURL(uploads, args[0], width, height))

			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "resized image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "resized image height in pixels")

	return cmd
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// queryFlags holds the filter flags shared by every fetching command. Each
// flag maps onto one Query setter and is applied only when given.
type queryFlags struct {
	ids                  []int
	locales              []int
	places               []int
	subordinations       []int
	strictSubordinations []int
	organizations        []int
	fields               []string
	limit                int
	offset               int
	sort                 []string
	status               string
	resourceType         string
	format               string
	start                string
	end                  string
	createdFrom          string
	createdTo            string
	name                 string
	withIntegration      string
	inSourceID           string
	onlyIntegrated       bool
	params               []string
	timezone             string
	columns              string
}

func addQueryFlags(cmd *cobra.Command, flags *queryFlags) {
	cmd.Flags().IntSliceVar(&flags.ids, "ids", nil, "filter by item ids")
	cmd.Flags().IntSliceVar(&flags.locales, "locales", nil, "filter by locale ids")
	cmd.Flags().IntSliceVar(&flags.places, "places", nil, "filter by place ids")
	cmd.Flags().IntSliceVar(&flags.subordinations, "subordinations", nil, "filter by subordination ids")
	cmd.Flags().IntSliceVar(&flags.strictSubordinations, "strict-subordinations", nil, "filter by strict subordination ids")
	cmd.Flags().IntSliceVar(&flags.organizations, "organizations", nil, "filter by organization ids")
	cmd.Flags().StringSliceVar(&flags.fields, "fields", nil, "return only these fields")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of items")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "items to skip (used with --limit)")
	cmd.Flags().StringSliceVar(&flags.sort, "sort", nil, "sort fields in order, prefix with - for descending")
	cmd.Flags().StringVar(&flags.status, "status", "", "moderation status (accepted, new, rejected)")
	cmd.Flags().StringVar(&flags.resourceType, "type", "", "entity type filter")
	cmd.Flags().StringVar(&flags.format, "format", "", "response format (json, csv)")
	cmd.Flags().StringVar(&flags.start, "start", "", "events starting after this date")
	cmd.Flags().StringVar(&flags.end, "end", "", "events ending before this date")
	cmd.Flags().StringVar(&flags.createdFrom, "created-from", "", "items created after this date")
	cmd.Flags().StringVar(&flags.createdTo, "created-to", "", "items created before this date")
	cmd.Flags().StringVar(&flags.name, "name", "", "full text search on names")
	cmd.Flags().StringVar(&flags.withIntegration, "with-integration", "", "include data of this integration")
	cmd.Flags().StringVar(&flags.inSourceID, "in-source-id", "", "filter by id in the external source")
	cmd.Flags().BoolVar(&flags.onlyIntegrated, "only-integrated", false, "only items that came from an integration")
	cmd.Flags().StringArrayVar(&flags.params, "param", nil, "extra query parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&flags.timezone, "timezone", "", "IANA zone for dates without an offset (default UTC)")
	cmd.Flags().StringVar(&flags.columns, "columns", "", "comma separated columns for table output")
}

// buildQuery applies the flags that were set on cmd to a fresh query.
//
//nolint:cyclop,funlen // one branch per flag
func (f *queryFlags) buildQuery(cmd *cobra.Command) (*culture.Query, error) {
	query := culture.NewQuery()
	changed := cmd.Flags().Changed

	location, err := loadLocation(f.timezone)
	if err != nil {
		return nil, err
	}

	query.In(location)

	if changed("ids") {
		query.SetIDs(f.ids...)
	}

	if changed("locales") {
		query.SetLocales(f.locales...)
	}

	if changed("places") {
		query.SetPlaces(f.places...)
	}

	if changed("subordinations") {
		query.SetSubordinations(f.subordinations...)
	}

	if changed("strict-subordinations") {
		query.SetStrictSubordinations(f.strictSubordinations...)
	}

	if changed("organizations") {
		query.SetOrganizations(f.organizations...)
	}

	if changed("fields") {
		query.SetFilterByFields(f.fields...)
	}

	if changed("limit") || changed("offset") {
		query.SetLimit(f.limit, f.offset)
	}

	for _, field := range f.sort {
		query.AddSortField(strings.TrimPrefix(field, "-"), strings.HasPrefix(field, "-"))
	}

	if changed("status") {
		query.SetStatus(culture.Status(f.status))
	}

	if changed("type") {
		query.SetType(culture.Resource(f.resourceType))
	}

	if changed("format") {
		query.SetFormat(culture.Format(f.format))
	}

	if changed("start") {
		query.SetStart(f.start)
	}

	if changed("end") {
		query.SetEnd(f.end)
	}

	if changed("created-from") {
		query.SetCreateDateStart(f.createdFrom)
	}

	if changed("created-to") {
		query.SetCreateDateEnd(f.createdTo)
	}

	if changed("name") {
		query.SetNameQuery(f.name)
	}

	if changed("with-integration") {
		query.SetWithIntegration(f.withIntegration)
	}

	if changed("in-source-id") {
		query.SetInSourceID(f.inSourceID)
	}

	query.SetOnlyIntegrated(f.onlyIntegrated)

	for _, param := range f.params {
		key, value, ok := strings.Cut(param, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --param %q, expected key=value", constants.ErrInvalidConfigValue, param)
		}

		query.AddCustomParam(key, value)
	}

	return query, nil
}

// tableColumns returns the columns for list output: --columns, then the
// configured default.
func (f *queryFlags) tableColumns() []string {
	if f.columns != "" {
		return splitColumns(f.columns)
	}

	configured := viper.GetString("columns")
	if configured == "" {
		configured = constants.DefaultColumns
	}

	return splitColumns(configured)
}

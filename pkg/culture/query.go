package culture

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Parameter names understood by the API.
const (
	paramIDs                  = "ids"
	paramLocales              = "locales"
	paramPlaces               = "places"
	paramSubordinations       = "subordinations"
	paramStrictSubordinations = "strictSubordinations"
	paramOrganizations        = "organizations"
	paramFields               = "fields"
	paramLimit                = "limit"
	paramOffset               = "offset"
	paramStatus               = "status"
	paramType                 = "type"
	paramFormat               = "format"
	paramStart                = "start"
	paramEnd                  = "end"
	paramCreateDateStart      = "createDateStart"
	paramCreateDateEnd        = "createDateEnd"
	paramNameQuery            = "nameQuery"
	paramWithIntegration      = "withIntegration"
	paramInSourceID           = "inSourceId"
	paramOnlyIntegrated       = "onlyIntegrated"
	paramSort                 = "sort"
)

const descendingPrefix = "-"

// Param is one serialized query parameter. Scalars carry a single value.
type Param struct {
	Key    string
	Values []string
}

// Query accumulates filters for one API call. Setters never validate or do
// I/O; enumerated parameters are checked when Request freezes the query.
//
// Keys keep the position of their first write: overwriting a value does not
// move the key in the serialized query string.
//
// A Query is not safe for concurrent use.
type Query struct {
	params   []Param
	index    map[string]int
	sort     []string
	location *time.Location
	errs     []error
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{index: make(map[string]int)}
}

// In sets the location used to interpret dates given without a zone. The
// default is time.Local.
func (q *Query) In(location *time.Location) *Query {
	q.location = location

	return q
}

func (q *Query) set(key string, values ...string) *Query {
	if q.index == nil {
		q.index = make(map[string]int)
	}

	if i, ok := q.index[key]; ok {
		q.params[i].Values = values

		return q
	}

	q.index[key] = len(q.params)
	q.params = append(q.params, Param{Key: key, Values: values})

	return q
}

func (q *Query) setInts(key string, ids []int) *Query {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = strconv.Itoa(id)
	}

	return q.set(key, values...)
}

func (q *Query) setDate(key, date string) *Query {
	millis, err := ParseToEpochMillisIn(date, q.loc())
	if err != nil {
		q.errs = append(q.errs, &DateError{Param: key, Input: date, Err: err})

		return q
	}

	return q.set(key, strconv.FormatInt(millis, 10))
}

func (q *Query) loc() *time.Location {
	if q.location == nil {
		return time.Local
	}

	return q.location
}

// SetIDs restricts results to the given item ids.
func (q *Query) SetIDs(ids ...int) *Query {
	return q.setInts(paramIDs, ids)
}

// SetLocales restricts results to the given locale ids.
func (q *Query) SetLocales(locales ...int) *Query {
	return q.setInts(paramLocales, locales)
}

// SetPlaces restricts results to the given place ids.
func (q *Query) SetPlaces(places ...int) *Query {
	return q.setInts(paramPlaces, places)
}

// SetSubordinations restricts results to the subtrees of the given organizations.
func (q *Query) SetSubordinations(subordinations ...int) *Query {
	return q.setInts(paramSubordinations, subordinations)
}

// SetStrictSubordinations is SetSubordinations without the roots themselves.
func (q *Query) SetStrictSubordinations(subordinations ...int) *Query {
	return q.setInts(paramStrictSubordinations, subordinations)
}

// SetOrganizations restricts results to the given organization ids.
func (q *Query) SetOrganizations(organizations ...int) *Query {
	return q.setInts(paramOrganizations, organizations)
}

// SetFilterByFields limits the fields returned for each item.
func (q *Query) SetFilterByFields(fields ...string) *Query {
	return q.set(paramFields, fields...)
}

// SetLimit sets the page size and offset.
func (q *Query) SetLimit(limit, offset int) *Query {
	q.set(paramLimit, strconv.Itoa(limit))

	return q.set(paramOffset, strconv.Itoa(offset))
}

// AddSortField appends a sort key. Calls accumulate in order.
func (q *Query) AddSortField(field string, descending bool) *Query {
	if descending {
		field = descendingPrefix + field
	}

	q.sort = append(q.sort, field)

	return q
}

// SetStatus filters by moderation status.
func (q *Query) SetStatus(status Status) *Query {
	return q.set(paramStatus, string(status))
}

// SetType sets the "type" parameter.
func (q *Query) SetType(resource Resource) *Query {
	return q.set(paramType, string(resource))
}

// SetFormat sets the response format. Responses are decoded as JSON, so a
// FormatCSV answer fails with a *ParseError whose Body holds the CSV.
func (q *Query) SetFormat(format Format) *Query {
	return q.set(paramFormat, string(format))
}

// SetStart filters events starting at or after date. An unparseable date is
// reported by Request.
func (q *Query) SetStart(date string) *Query {
	return q.setDate(paramStart, date)
}

// SetEnd filters events ending at or before date.
func (q *Query) SetEnd(date string) *Query {
	return q.setDate(paramEnd, date)
}

// SetCreateDateStart filters by creation date lower bound.
func (q *Query) SetCreateDateStart(date string) *Query {
	return q.setDate(paramCreateDateStart, date)
}

// SetCreateDateEnd filters by creation date upper bound.
func (q *Query) SetCreateDateEnd(date string) *Query {
	return q.setDate(paramCreateDateEnd, date)
}

// SetNameQuery sets a free-text search. This is the only value that is
// escaped before serialization.
func (q *Query) SetNameQuery(text string) *Query {
	return q.set(paramNameQuery, url.QueryEscape(text))
}

// SetWithIntegration stores the integration filter verbatim.
func (q *Query) SetWithIntegration(integration string) *Query {
	return q.set(paramWithIntegration, integration)
}

// SetInSourceID stores the source id filter verbatim.
func (q *Query) SetInSourceID(sourceID string) *Query {
	return q.set(paramInSourceID, sourceID)
}

// SetOnlyIntegrated adds onlyIntegrated=true. Passing false is a no-op and
// does not clear an earlier true.
func (q *Query) SetOnlyIntegrated(onlyIntegrated bool) *Query {
	if !onlyIntegrated {
		return q
	}

	return q.set(paramOnlyIntegrated, "true")
}

// AddCustomParam stores an arbitrary scalar under an arbitrary key.
func (q *Query) AddCustomParam(name string, value interface{}) *Query {
	return q.set(name, fmt.Sprint(value))
}

// Reset clears every parameter, sort field and recorded date error.
func (q *Query) Reset() *Query {
	q.params = nil
	q.index = make(map[string]int)
	q.sort = nil
	q.errs = nil

	return q
}

// Get returns the stored values for key.
func (q *Query) Get(key string) ([]string, bool) {
	i, ok := q.index[key]
	if !ok {
		return nil, false
	}

	return q.params[i].Values, true
}

// SortFields returns the accumulated sort keys.
func (q *Query) SortFields() []string {
	return append([]string(nil), q.sort...)
}

// Params returns a copy of the parameters in serialization order, with any
// sort fields appended under "sort". The query is not modified.
func (q *Query) Params() []Param {
	params := make([]Param, 0, len(q.params)+1)
	for _, p := range q.params {
		params = append(params, Param{Key: p.Key, Values: append([]string(nil), p.Values...)})
	}

	if len(q.sort) == 0 {
		return params
	}

	sort := Param{Key: paramSort, Values: q.SortFields()}

	if i, ok := q.index[paramSort]; ok {
		params[i] = sort

		return params
	}

	return append(params, sort)
}

// Request validates the query and freezes it into an immutable request for
// resource. A positive id selects a single item (resource/{id}); zero selects
// the collection.
func (q *Query) Request(resource Resource, id int) (*Request, error) {
	if resource == "" {
		return nil, ErrResourceNotSelected
	}

	if id < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	if len(q.errs) > 0 {
		return nil, q.errs[0]
	}

	err := q.Validate()
	if err != nil {
		return nil, err
	}

	return &Request{resource: resource, id: id, params: q.Params()}, nil
}

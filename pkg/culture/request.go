package culture

import (
	"strconv"
	"strings"
)

// Request is an immutable, validated description of one API call. It is
// produced by Query.Request and consumed by a Client.
type Request struct {
	resource Resource
	id       int
	params   []Param
}

// Resource returns the targeted collection.
func (r *Request) Resource() Resource {
	return r.resource
}

// ID returns the single item id, or zero for a collection request.
func (r *Request) ID() int {
	return r.id
}

// Params returns a copy of the frozen parameters.
func (r *Request) Params() []Param {
	params := make([]Param, len(r.params))
	for i, p := range r.params {
		params[i] = Param{Key: p.Key, Values: append([]string(nil), p.Values...)}
	}

	return params
}

// Path returns the resource stub relative to the API root.
func (r *Request) Path() (string, error) {
	if r == nil || r.resource == "" {
		return "", ErrResourceNotSelected
	}

	if r.id > 0 {
		return string(r.resource) + "/" + strconv.Itoa(r.id), nil
	}

	return string(r.resource), nil
}

// RawQuery serializes the parameters as key=v1,v2&key2=v. Values are written
// as stored; only the name query is escaped, by its setter.
func (r *Request) RawQuery() string {
	if r == nil {
		return ""
	}

	var b strings.Builder

	for i, p := range r.params {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(strings.Join(p.Values, ","))
	}

	return b.String()
}

// URL joins base, the resource stub and the query string.
func (r *Request) URL(base string) (string, error) {
	path, err := r.Path()
	if err != nil {
		return "", err
	}

	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}

	rawQuery := r.RawQuery()
	if rawQuery == "" {
		return base + path, nil
	}

	return base + path + "?" + rawQuery, nil
}

package modrinth

import (
	"encoding/json"
	"net/url"
)

// QueryParams builds the query portion of list-style requests. Modrinth
// expects array- and boolean-valued filters as compact JSON text (for
// example `loaders=["fabric"]` and `featured=true`), never as native
// repeated query keys; plain string values pass through unmodified.
// Absent filters are omitted entirely — omission, not an empty value,
// signals "no filter".
type QueryParams struct {
	params map[string]string
	err    error
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		params: make(map[string]string),
	}
}

// WithString sets a string-valued filter, passed through as-is.
func (q *QueryParams) WithString(name, value string) *QueryParams {
	q.params[name] = value

	return q
}

// WithStringList sets a list-valued filter, serialized as a compact JSON
// array.
func (q *QueryParams) WithStringList(name string, values []string) *QueryParams {
	return q.withJSON(name, values)
}

// WithBool sets a boolean-valued filter, serialized as JSON true/false.
func (q *QueryParams) WithBool(name string, value bool) *QueryParams {
	return q.withJSON(name, value)
}

// WithIDs sets the batch lookup parameter: the full identifier list as a
// single JSON-array-valued `ids` parameter.
func (q *QueryParams) WithIDs(ids []string) *QueryParams {
	return q.withJSON("ids", ids)
}

// withJSON serializes value to its compact JSON form and records it
// under name. A marshal failure is retained and surfaced by ToValues so
// it is never silently dropped.
func (q *QueryParams) withJSON(name string, value any) *QueryParams {
	data, err := json.Marshal(value)
	if err != nil {
		if q.err == nil {
			q.err = &SerializationError{Err: err}
		}

		return q
	}

	q.params[name] = string(data)

	return q
}

// ToValues renders the present filters as url.Values. Encoding the
// result sorts parameter names, so the same input always produces the
// same wire output. The first serialization failure recorded by a
// builder method is returned here.
func (q *QueryParams) ToValues() (url.Values, error) {
	if q.err != nil {
		return nil, q.err
	}

	values := url.Values{}
	for name, value := range q.params {
		values.Set(name, value)
	}

	return values, nil
}

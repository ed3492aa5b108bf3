package mastodon

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// makeParams converts an argument mapping into URL query values. Slices of
// strings become repeated keys; everything else is stringified.
func makeParams(p map[string]any) url.Values {
	params := url.Values{}
	for k, v := range p {
		if s, ok := v.([]string); ok {
			for _, e := range s {
				params.Add(k, e)
			}
		} else {
			params.Add(k, fmt.Sprint(v))
		}
	}
	return params
}

// ParamValues converts a struct carrying `url:` tags into an argument
// mapping suitable for Request.Args. Repeated keys stay []string, single
// values collapse to plain strings.
func ParamValues(v any) (map[string]any, error) {
	vals, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestEncoding, err)
	}
	out := make(map[string]any, len(vals))
	for k, vs := range vals {
		if len(vs) == 1 {
			out[k] = vs[0]
		} else {
			out[k] = []string(vs)
		}
	}
	return out, nil
}

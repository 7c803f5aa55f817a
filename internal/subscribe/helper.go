package subscribe

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

var ErrInvalidOptions = errors.New("invalid subscribe options")

// FuncMap exposes the builder to html/template as paypalSubscribeButton and
// its alias paypalSubscribeForm. Both take key/value pairs, see OptionsFromPairs.
//
//	{{paypalSubscribeButton "image" "subscribe.gif" "alt" "Subscribe" "item_name" .Name}}
func (b *FormBuilder) FuncMap() template.FuncMap {
	helper := func(pairs ...any) (template.HTML, error) {
		opts, err := OptionsFromPairs(pairs...)
		if err != nil {
			return "", err
		}
		return b.BuildForm(opts)
	}

	return template.FuncMap{
		"paypalSubscribeButton": helper,
		"paypalSubscribeForm":   helper,
	}
}

// OptionsFromPairs builds Options from alternating keys and values.
//
// Recognized keys are image, alt, button, value, id, html (a
// map[string]string), html.<attr> and fields (a map[string]string). Any
// other key overrides the configured field of the same name.
func OptionsFromPairs(pairs ...any) (Options, error) {
	var opts Options
	if len(pairs)%2 != 0 {
		return opts, fmt.Errorf("%w: odd number of arguments (%d)", ErrInvalidOptions, len(pairs))
	}

	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return opts, fmt.Errorf("%w: key at position %d is %T", ErrInvalidOptions, i, pairs[i])
		}
		val := pairs[i+1]

		switch {
		case key == "image":
			opts.Image = toString(val)
		case key == "alt":
			opts.Alt = toString(val)
		case key == "value":
			opts.Value = toString(val)
		case key == "id":
			opts.ID = toString(val)
		case key == "button":
			on, err := toBool(val)
			if err != nil {
				return opts, fmt.Errorf("%w: button: %v", ErrInvalidOptions, err)
			}
			opts.Button = on
		case key == "html":
			m, ok := val.(map[string]string)
			if !ok {
				return opts, fmt.Errorf("%w: html is %T, want map[string]string", ErrInvalidOptions, val)
			}
			for k, v := range m {
				opts.HTML = put(opts.HTML, k, v)
			}
		case strings.HasPrefix(key, "html."):
			opts.HTML = put(opts.HTML, strings.TrimPrefix(key, "html."), toString(val))
		case key == "fields":
			m, ok := val.(map[string]string)
			if !ok {
				return opts, fmt.Errorf("%w: fields is %T, want map[string]string", ErrInvalidOptions, val)
			}
			for k, v := range m {
				opts.Fields = put(opts.Fields, k, v)
			}
		default:
			opts.Fields = put(opts.Fields, key, toString(val))
		}
	}

	return opts, nil
}

func put(m map[string]string, k, v string) map[string]string {
	if m == nil {
		m = make(map[string]string)
	}
	m[k] = v
	return m
}

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toBool(v any) (bool, error) {
	switch v := v.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		if v == "" {
			return false, nil
		}
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("unsupported type %T", v)
	}
}

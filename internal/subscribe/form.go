// Package subscribe renders PayPal "Subscribe" button forms.
//
// A FormBuilder is created once from the merchant configuration and is safe
// for concurrent use: every call works on its own copy of the configured
// fields.
package subscribe

import (
	"errors"
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"regexp"
)

const (
	// Command is the PayPal command for subscription checkouts.
	Command = "_xclick-subscriptions"

	// DefaultSubmitID is the id given to the submit control when Options.ID is empty.
	DefaultSubmitID = "paypal_submit"
)

// Callback keys hold route names, not literal values. They are always
// emitted after the other configured fields, in this order.
const (
	ReturnKey       = "return"
	CancelReturnKey = "cancel_return"
	NotifyURLKey    = "notify_url"
)

var callbackKeys = []string{ReturnKey, CancelReturnKey, NotifyURLKey}

var (
	ErrMissingEndpoint = errors.New("paypal endpoint url is empty")
	ErrMissingCallback = errors.New("callback route is not configured")
	ErrDuplicateField  = errors.New("field configured more than once")
	ErrReservedField   = errors.New("field name is reserved")
	ErrMissingImage    = errors.New("image is required when button mode is off")
)

// Field is a single hidden form input.
type Field struct {
	Name  string
	Value string
}

// Config is the static, process-wide merchant configuration.
type Config struct {
	// Endpoint is the URL the form posts to (sandbox or live).
	Endpoint string
	// Fields are the default values in the order they are emitted. The
	// return, cancel_return and notify_url entries name routes.
	Fields []Field
}

// Options are the per-call settings of a single form.
type Options struct {
	// Fields overrides configured values. An entry applies only when its
	// value is not the empty string; keys that are not configured are ignored.
	Fields map[string]string

	// Image is the logical asset name of the image submit control.
	Image string
	// Alt is the alt text of the image submit control.
	Alt string

	// Button switches to a plain submit button. It wins over Image.
	Button bool
	// HTML holds extra attributes for the submit button.
	HTML map[string]string
	// Value is the submit button label.
	Value string

	// ID is the submit control id, DefaultSubmitID when empty.
	ID string
}

// RouteResolver turns a route name into an absolute URL.
type RouteResolver interface {
	URLFor(name string) (string, error)
}

// RouteFunc adapts a function to RouteResolver.
type RouteFunc func(name string) (string, error)

func (f RouteFunc) URLFor(name string) (string, error) { return f(name) }

// AssetResolver turns a logical asset name into a served URL.
type AssetResolver interface {
	AssetPath(name string) (string, error)
}

// AssetFunc adapts a function to AssetResolver.
type AssetFunc func(name string) (string, error)

func (f AssetFunc) AssetPath(name string) (string, error) { return f(name) }

type ControlKind int

const (
	ImageControl ControlKind = iota
	ButtonControl
)

// Control describes the submit control closing the form.
type Control struct {
	Kind ControlKind
	ID   string

	// image submit
	Src string
	Alt string

	// submit button
	Value string
	Attrs map[string]string
}

// Form is an assembled form ready to be rendered.
type Form struct {
	Action string
	Method string
	Fields []Field
	Submit Control
}

type FormBuilder struct {
	endpoint  string
	fields    []Field
	callbacks []Field
	routes    RouteResolver
	assets    AssetResolver
}

// NewFormBuilder validates cfg and splits the callback routes from the
// plain fields. cfg is copied; later changes to it have no effect.
func NewFormBuilder(cfg Config, routes RouteResolver, assets AssetResolver) (*FormBuilder, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	b := &FormBuilder{
		endpoint: cfg.Endpoint,
		routes:   routes,
		assets:   assets,
	}

	seen := make(map[string]bool, len(cfg.Fields))
	routeNames := make(map[string]string, len(callbackKeys))
	for _, f := range cfg.Fields {
		if f.Name == "cmd" {
			return nil, fmt.Errorf("%w: %q", ErrReservedField, f.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true

		if isCallback(f.Name) {
			routeNames[f.Name] = f.Value
			continue
		}
		b.fields = append(b.fields, f)
	}

	for _, key := range callbackKeys {
		name := routeNames[key]
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingCallback, key)
		}
		b.callbacks = append(b.callbacks, Field{Name: key, Value: name})
	}

	return b, nil
}

var attrName = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// validAttrName guards the extra button attributes: x/net/html writes
// attribute names as given.
func validAttrName(name string) bool {
	return attrName.MatchString(name)
}

func isCallback(name string) bool {
	for _, key := range callbackKeys {
		if key == name {
			return true
		}
	}
	return false
}

// Endpoint returns the URL forms are posted to.
func (b *FormBuilder) Endpoint() string {
	return b.endpoint
}

// Assemble computes the fields and submit control of a form without
// rendering it.
func (b *FormBuilder) Assemble(opts Options) (*Form, error) {
	form := &Form{
		Action: b.endpoint,
		Method: http.MethodPost,
		Fields: make([]Field, 0, len(b.fields)+len(b.callbacks)+1),
	}

	form.Fields = append(form.Fields, Field{Name: "cmd", Value: Command})

	for _, f := range b.fields {
		value := f.Value
		if override := opts.Fields[f.Name]; override != "" {
			value = override
		}
		form.Fields = append(form.Fields, Field{Name: f.Name, Value: value})
	}

	for _, cb := range b.callbacks {
		url, err := b.routes.URLFor(cb.Value)
		if err != nil {
			return nil, fmt.Errorf("resolve %s route %q: %w", cb.Name, cb.Value, err)
		}
		form.Fields = append(form.Fields, Field{Name: cb.Name, Value: url})
	}

	submit, err := b.submitControl(opts)
	if err != nil {
		return nil, err
	}
	form.Submit = submit

	return form, nil
}

func (b *FormBuilder) submitControl(opts Options) (Control, error) {
	id := opts.ID
	if id == "" {
		id = DefaultSubmitID
	}

	if opts.Button {
		for k := range opts.HTML {
			if !validAttrName(k) {
				return Control{}, fmt.Errorf("%w: html attribute name %q", ErrInvalidOptions, k)
			}
		}
		attrs := maps.Clone(opts.HTML)
		if attrs == nil {
			attrs = make(map[string]string, 1)
		}
		attrs["id"] = id
		return Control{
			Kind:  ButtonControl,
			ID:    id,
			Value: opts.Value,
			Attrs: attrs,
		}, nil
	}

	if opts.Image == "" {
		return Control{}, ErrMissingImage
	}
	src, err := b.assets.AssetPath(opts.Image)
	if err != nil {
		return Control{}, fmt.Errorf("resolve image %q: %w", opts.Image, err)
	}

	return Control{
		Kind: ImageControl,
		ID:   id,
		Src:  src,
		Alt:  opts.Alt,
	}, nil
}

// BuildForm assembles and renders a subscription form. The result is
// already escaped and can be embedded in a page as is.
func (b *FormBuilder) BuildForm(opts Options) (template.HTML, error) {
	form, err := b.Assemble(opts)
	if err != nil {
		return "", err
	}
	return Render(form)
}

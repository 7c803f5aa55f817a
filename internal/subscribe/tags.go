package subscribe

import (
	"fmt"
	"html/template"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the form element with one hidden input per field and the
// submit control last.
func Render(f *Form) (template.HTML, error) {
	form := element(atom.Form,
		attr("action", f.Action),
		attr("method", strings.ToLower(f.Method)),
		attr("accept-charset", "UTF-8"),
	)

	for _, field := range f.Fields {
		form.AppendChild(hiddenField(field))
	}

	switch f.Submit.Kind {
	case ButtonControl:
		form.AppendChild(submitButton(f.Submit))
	default:
		form.AppendChild(imageSubmit(f.Submit))
	}

	var sb strings.Builder
	if err := html.Render(&sb, form); err != nil {
		return "", fmt.Errorf("render form: %w", err)
	}

	return template.HTML(sb.String()), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func hiddenField(f Field) *html.Node {
	return element(atom.Input,
		attr("type", "hidden"),
		attr("name", f.Name),
		attr("value", f.Value),
	)
}

// submitButton applies the extra attributes on top of the defaults, sorted
// by name, so the same options always render the same markup.
func submitButton(c Control) *html.Node {
	n := element(atom.Input,
		attr("type", "submit"),
		attr("name", "commit"),
	)
	if c.Value != "" {
		n.Attr = append(n.Attr, attr("value", c.Value))
	}

	keys := make([]string, 0, len(c.Attrs))
	for k := range c.Attrs {
		if k != "id" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		setAttr(n, k, c.Attrs[k])
	}
	setAttr(n, "id", c.ID)

	return n
}

func imageSubmit(c Control) *html.Node {
	n := element(atom.Input,
		attr("type", "image"),
		attr("src", c.Src),
	)
	if c.Alt != "" {
		n.Attr = append(n.Attr, attr("alt", c.Alt))
	}
	n.Attr = append(n.Attr, attr("name", "submit"), attr("id", c.ID))
	return n
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, attr(key, val))
}

package render

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"progviz/internal/domain"
)

// ErrTemplate is returned when the page template lacks an anchor element.
var ErrTemplate = errors.New("render: page template is missing an element")

// tooltipRightTerms is how many leading terms open their tooltip to the
// right; later terms open to the left so tooltips stay on screen.
const tooltipRightTerms = 4

// Page renders index.html for p. A non-empty version is appended as a
// "?v=" query to the local stylesheet and script URLs.
func Page(p domain.Program, version string) ([]byte, error) {
	tmpl, err := assets.ReadFile("assets/template.html")
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(tmpl))
	if err != nil {
		return nil, fmt.Errorf("render: parse template: %w", err)
	}

	anchors := map[string]*html.Node{}
	for _, id := range []string{"top-title", "site-title", "planselector", "legend", "display"} {
		n := findByID(doc, id)
		if n == nil {
			return nil, fmt.Errorf("%w: #%s", ErrTemplate, id)
		}
		anchors[id] = n
	}

	dept := strings.TrimSpace(p.Department)
	appendText(anchors["top-title"], strings.TrimSpace(dept+" Visualizer"))
	appendText(anchors["site-title"], strings.TrimSpace(dept+" Program Plan Visualizer"))

	l := newLayout(p)
	placeRadioInputs(anchors["planselector"], l)
	placeLegend(anchors["legend"], p.Categories)
	for i, pl := range l.plans {
		anchors["display"].AppendChild(planDiv(pl, i == 0))
	}
	if version != "" {
		versionAssets(doc, version)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render: write page: %w", err)
	}
	return buf.Bytes(), nil
}

func placeRadioInputs(form *html.Node, l layout) {
	for i, pl := range l.plans {
		id := "select" + pl.id
		input := element("input", "type", "radio", "name", "planselector", "value", pl.id, "id", id)
		if i == 0 {
			input.Attr = append(input.Attr, html.Attribute{Key: "checked"})
		}
		label := element("label", "for", id)
		appendText(label, pl.plan.Name)

		form.AppendChild(input)
		form.AppendChild(label)
		form.AppendChild(element("br"))
	}
}

func placeLegend(legend *html.Node, cats []domain.Category) {
	desc := element("b", "class", "legenddescription")
	appendText(desc, "Click on a Category Below to Highlight all Courses in that Category")
	legend.AppendChild(desc)

	boxes := element("div", "class", "legendboxes")
	for _, cat := range cats {
		cls := cleanID(cat.Name)
		button := element("div",
			"class", "legendbutton",
			"id", "legend"+cls,
			"data-category", cls)
		if cat.Color != "" {
			button.Attr = append(button.Attr, html.Attribute{Key: "style", Val: "background-color:#" + cat.Color})
		}
		appendText(button, cat.Name)
		boxes.AppendChild(button)
	}
	legend.AppendChild(boxes)
}

func planDiv(pl planLayout, visible bool) *html.Node {
	div := element("div", "class", "plan", "id", pl.id, "data-plan", pl.plan.Name)
	if !visible {
		div.Attr = append(div.Attr, html.Attribute{Key: "hidden"})
	}

	for t, term := range pl.plan.Terms {
		termDiv := element("div", "class", "term")
		header := element("h3", "class", "termheader")
		appendText(header, term.Name)
		termDiv.AppendChild(header)

		right := t < tooltipRightTerms
		for s := 0; s < len(term.Slots); {
			slot := term.Slots[s]
			if !slot.Alternative {
				container := element("div", "class", "coursecontainer")
				container.AppendChild(courseDiv(slot.Course, pl.ids[t][s], pl.id, "course", right))
				termDiv.AppendChild(container)
				s++
				continue
			}

			container := element("div", "class", "orcoursecontainer")
			for first := true; s < len(term.Slots) && term.Slots[s].Alternative && term.Slots[s].Group == slot.Group; s++ {
				if !first {
					or := element("p", "class", "ortext")
					appendText(or, "OR")
					container.AppendChild(or)
				}
				first = false
				container.AppendChild(courseDiv(term.Slots[s].Course, pl.ids[t][s], pl.id, "orcourse", right))
			}
			termDiv.AppendChild(container)
		}
		div.AppendChild(termDiv)
	}
	return div
}

func courseDiv(c domain.Course, id, planID, kind string, right bool) *html.Node {
	class := kind + " tooltip"
	if cls := categoryClass(c); cls != "" {
		class += " " + cls
	}
	div := element("div",
		"class", class,
		"id", id,
		"data-plan", planID,
		"data-course", string(c.Name),
		"data-prereqs", joinRequirements(c.Prereqs),
		"data-coreqs", joinRequirements(c.Coreqs))

	header := element("h3", "class", "embed")
	appendText(header, string(c.Name))
	div.AppendChild(header)
	div.AppendChild(tooltip(c, id, right))
	return div
}

func tooltip(c domain.Course, id string, right bool) *html.Node {
	side := "tooltiptextleft"
	if right {
		side = "tooltiptextright"
	}
	tip := element("div", "id", id+"desc", "class", side)

	title := element("b", "class", "descriptiontitle")
	tip.AppendChild(title)
	tip.AppendChild(element("hr", "class", "descriptionline"))

	if c.Elective != domain.ElectiveNone {
		appendText(title, string(c.Name))
		tip.AppendChild(textElement("p", "fulldescription", c.Description))
		return tip
	}

	name := string(c.Name)
	if c.LongTitle != "" {
		name += " - " + c.LongTitle
	}
	appendText(title, name)
	tip.AppendChild(textElement("p", "descriptioncredits", "★ "+c.EnggUnits+" "))
	tip.AppendChild(textElement("i", "descriptionfeeindex", "(fi "+c.CalcFeeIndex+") "))
	tip.AppendChild(textElement("p", "descriptionavailability", "("+c.Duration+", "))
	tip.AppendChild(textElement("p", "descriptionalphahours", c.AlphaHours+") "))
	tip.AppendChild(textElement("p", "fulldescription", c.Description))
	tip.AppendChild(element("br"))
	tip.AppendChild(textElement("b", "accreditationheader", "Accreditation Units"))

	units := element("div", "class", "accreditationunits")
	for _, cat := range domain.AccreditationCategories {
		v := c.Accreditation[cat]
		if v == 0 {
			continue
		}
		appendText(units, cat+": "+strconv.FormatFloat(v, 'f', -1, 64)+" Units")
		units.AppendChild(element("br"))
	}
	tip.AppendChild(units)
	return tip
}

// requirementSep joins the requirement expressions in data attributes.
const requirementSep = "|"

func joinRequirements(reqs []domain.Requirement) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = string(r)
	}
	return strings.Join(parts, requirementSep)
}

// versionAssets appends ?v=version to relative link and script URLs.
func versionAssets(n *html.Node, version string) {
	if n.Type == html.ElementNode {
		key := ""
		switch n.DataAtom {
		case atom.Link:
			key = "href"
		case atom.Script:
			key = "src"
		}
		for i, a := range n.Attr {
			if key != "" && a.Key == key && isLocal(a.Val) {
				n.Attr[i].Val = a.Val + "?v=" + version
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		versionAssets(c, version)
	}
}

func isLocal(url string) bool {
	return url != "" && !strings.Contains(url, "://") && !strings.HasPrefix(url, "//") && !strings.Contains(url, "?")
}

func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textElement(tag, class, text string) *html.Node {
	n := element(tag, "class", class)
	appendText(n, text)
	return n
}

func appendText(n *html.Node, text string) {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

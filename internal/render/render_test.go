package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"progviz/internal/domain"
	"progviz/internal/render"
)

func course(name, category string, prereqs, coreqs []domain.Requirement) domain.Course {
	return domain.Course{
		Name:          domain.CourseName(name),
		LongTitle:     "Title of " + name,
		Category:      category,
		EnggUnits:     "3.8",
		CalcFeeIndex:  "5.6",
		Duration:      "Either",
		AlphaHours:    "3-1s/2-0",
		Description:   "About " + name + ".",
		Accreditation: domain.AccreditationUnits{domain.AccredMath: 42, domain.AccredOther: 0},
		Prereqs:       prereqs,
		Coreqs:        coreqs,
	}
}

func elective() domain.Course {
	return domain.Course{
		Name:        "Program/Technical Elective",
		Elective:    domain.ElectiveProgram,
		Description: "Pick one.",
	}
}

func program() domain.Program {
	math100 := course("MATH 100", "Math", []domain.Requirement{}, []domain.Requirement{})
	math101 := course("MATH 101", "Math", []domain.Requirement{"MATH 100 or MATH 114"}, []domain.Requirement{"PHYS 130"})
	phys130 := course("PHYS 130", "", []domain.Requirement{}, []domain.Requirement{})
	math114 := course("MATH 114", "Math", []domain.Requirement{}, []domain.Requirement{})

	return domain.Program{
		Department: "ECE",
		Categories: []domain.Category{{Name: "Math", Color: "ff0000"}, {Name: "Natural Sciences", Color: ""}},
		Plans: []domain.Plan{
			{Name: "Traditional", Terms: []domain.Term{
				{Name: "Term 1", Slots: []domain.Slot{
					{Course: math100, Alternative: true, Group: 1},
					{Course: math114, Alternative: true, Group: 1},
					{Course: elective()},
				}},
				{Name: "Term 2", Slots: []domain.Slot{{Course: math101}, {Course: phys130}}},
				{Name: "Term 3"},
				{Name: "Term 4"},
				{Name: "Term 5", Slots: []domain.Slot{{Course: elective()}}},
			}},
			{Name: "Co-op Plan 1", Terms: []domain.Term{
				{Name: "Fall Term 1", Slots: []domain.Slot{{Course: math100}}},
			}},
		},
	}
}

func parse(t *testing.T, b []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(b))
	require.NoError(t, err)
	return doc
}

func byID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := byID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func collect(n *html.Node, tag string, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.Data == tag {
		*out = append(*out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, tag, out)
	}
}

func TestPage_TitlesAndPlans(t *testing.T) {
	b, err := render.Page(program(), "abc123")
	require.NoError(t, err)
	doc := parse(t, b)

	assert.Equal(t, "ECE Program Plan Visualizer", text(byID(doc, "site-title")))
	assert.Equal(t, "ECE Visualizer", text(byID(doc, "top-title")))

	first := byID(doc, "selectTraditional")
	require.NotNil(t, first)
	assert.True(t, hasAttr(first, "checked"))
	assert.Equal(t, "Traditional", attr(first, "value"))

	second := byID(doc, "CoopPlan1")
	require.NotNil(t, second)
	assert.True(t, hasAttr(second, "hidden"))
	assert.False(t, hasAttr(byID(doc, "Traditional"), "hidden"))
}

func TestPage_CourseElements(t *testing.T) {
	b, err := render.Page(program(), "")
	require.NoError(t, err)
	doc := parse(t, b)

	m101 := byID(doc, "MATH101Traditional")
	require.NotNil(t, m101)
	assert.Equal(t, "course tooltip Math", attr(m101, "class"))
	assert.Equal(t, "MATH 101", attr(m101, "data-course"))
	assert.Equal(t, "MATH 100 or MATH 114", attr(m101, "data-prereqs"))
	assert.Equal(t, "PHYS 130", attr(m101, "data-coreqs"))

	tip := byID(doc, "MATH101Traditionaldesc")
	require.NotNil(t, tip)
	assert.Equal(t, "tooltiptextright", attr(tip, "class"))
	assert.Contains(t, text(tip), "MATH 101 - Title of MATH 101")
	assert.Contains(t, text(tip), "Math: 42 Units")
	assert.NotContains(t, text(tip), "Other:")

	phys := byID(doc, "PHYS130Traditional")
	require.NotNil(t, phys)
	assert.Equal(t, "course tooltip", attr(phys, "class"))
}

func TestPage_AlternativesAndElectives(t *testing.T) {
	b, err := render.Page(program(), "")
	require.NoError(t, err)
	doc := parse(t, b)

	m100 := byID(doc, "MATH100Traditional")
	require.NotNil(t, m100)
	assert.Equal(t, "orcourse tooltip Math", attr(m100, "class"))
	container := m100.Parent
	assert.Equal(t, "orcoursecontainer", attr(container, "class"))
	assert.Equal(t, "MATH114Traditional", attr(container.LastChild, "id"))

	var ps []*html.Node
	collect(container, "p", &ps)
	var orTexts int
	for _, p := range ps {
		if attr(p, "class") == "ortext" {
			orTexts++
		}
	}
	assert.Equal(t, 1, orTexts)

	e0 := byID(doc, "ProgramTechnicalElectiveTraditional0")
	e1 := byID(doc, "ProgramTechnicalElectiveTraditional1")
	require.NotNil(t, e0)
	require.NotNil(t, e1)
	assert.Equal(t, "course tooltip PROG", attr(e0, "class"))
	assert.Equal(t, "tooltiptextright", attr(byID(doc, "ProgramTechnicalElectiveTraditional0desc"), "class"))
	assert.Equal(t, "tooltiptextleft", attr(byID(doc, "ProgramTechnicalElectiveTraditional1desc"), "class"))
	assert.Contains(t, text(e1), "Pick one.")
}

func TestPage_VersionsLocalAssets(t *testing.T) {
	b, err := render.Page(program(), "abc123")
	require.NoError(t, err)
	doc := parse(t, b)

	var links, scripts []*html.Node
	collect(doc, "link", &links)
	collect(doc, "script", &scripts)
	require.NotEmpty(t, links)
	require.NotEmpty(t, scripts)
	for _, l := range links {
		assert.True(t, strings.HasSuffix(attr(l, "href"), "?v=abc123"), attr(l, "href"))
	}
	for _, s := range scripts {
		assert.True(t, strings.HasSuffix(attr(s, "src"), "?v=abc123"), attr(s, "src"))
	}
}

func TestPlansJS(t *testing.T) {
	b, err := render.PlansJS(program())
	require.NoError(t, err)

	s := string(b)
	require.True(t, strings.HasPrefix(s, "window.PROGVIZ_PLANS = "))
	require.True(t, strings.HasSuffix(s, ";\n"))
	payload := strings.TrimSuffix(strings.TrimPrefix(s, "window.PROGVIZ_PLANS = "), ";\n")

	var plans []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Courses []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Term    string `json:"term"`
			Prereqs []struct {
				Text string   `json:"text"`
				IDs  []string `json:"ids"`
			} `json:"prereqs"`
			Coreqs []struct {
				Text string   `json:"text"`
				IDs  []string `json:"ids"`
			} `json:"coreqs"`
		} `json:"courses"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "Traditional", plans[0].ID)

	var found bool
	for _, c := range plans[0].Courses {
		if c.Name != "MATH 101" {
			continue
		}
		found = true
		assert.Equal(t, "Term 2", c.Term)
		require.Len(t, c.Prereqs, 1)
		assert.Equal(t, "MATH 100 or MATH 114", c.Prereqs[0].Text)
		assert.Equal(t, []string{"MATH100Traditional", "MATH114Traditional"}, c.Prereqs[0].IDs)
		require.Len(t, c.Coreqs, 1)
		assert.Equal(t, []string{"PHYS130Traditional"}, c.Coreqs[0].IDs)
	}
	assert.True(t, found)
}

func TestCategoryCSS(t *testing.T) {
	css := string(render.CategoryCSS([]domain.Category{
		{Name: "Math", Color: "ff0000"},
		{Name: "Natural Sciences", Color: ""},
		{Name: "Engineering Design", Color: "00ff00"},
	}))

	assert.Contains(t, css, ".Math:hover {")
	assert.Contains(t, css, ".Math-highlighted {\n  background-color: #ff0000;\n}")
	assert.Contains(t, css, ".EngineeringDesign-highlighted:hover {")
	assert.NotContains(t, css, "NaturalSciences")
}

func TestStaticAssets(t *testing.T) {
	files, err := render.StaticAssets()
	require.NoError(t, err)
	assert.Contains(t, string(files[render.ControllerFile]), "PROGVIZ_PLANS")
	assert.NotEmpty(t, files[render.MainCSSFile])
}

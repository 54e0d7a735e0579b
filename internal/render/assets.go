package render

import "embed"

//go:embed assets
var assets embed.FS

// Output paths of the generated and static files, relative to the site root.
const (
	IndexFile      = "index.html"
	PlansFile      = "js/plans.js"
	ControllerFile = "js/controller.js"
	MainCSSFile    = "styles/main.css"
	CategoryFile   = "styles/category.css"
)

// StaticAssets returns the files copied verbatim into the site, keyed by
// output path.
func StaticAssets() (map[string][]byte, error) {
	out := map[string][]byte{}
	for path, name := range map[string]string{
		ControllerFile: "assets/controller.js",
		MainCSSFile:    "assets/main.css",
	} {
		b, err := assets.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out[path] = b
	}
	return out, nil
}

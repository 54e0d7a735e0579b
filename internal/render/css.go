package render

import (
	"bytes"
	"fmt"

	"progviz/internal/domain"
)

const categoryRule = `.%[1]s:hover {
  background-color: #%[2]s !important;
  border-color: #%[2]s !important;
}
.%[1]s-highlighted {
  background-color: #%[2]s;
}
.%[1]s-highlighted:hover {
  background-color: #%[2]s !important;
  border-color: #%[2]s !important;
}
`

// CategoryCSS renders styles/category.css: hover and highlight rules for
// every category with a colour.
func CategoryCSS(cats []domain.Category) []byte {
	var buf bytes.Buffer
	for _, cat := range cats {
		cls := cleanID(cat.Name)
		if cls == "" || cat.Color == "" {
			continue
		}
		fmt.Fprintf(&buf, categoryRule, cls, cat.Color)
	}
	return buf.Bytes()
}

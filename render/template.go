package render

import (
	"image/color"
	"sort"
)

// Template controls the static look of a clip: content box, colors and where
// the logo and attribution line sit.
type Template struct {
	Name           string
	Box            bool
	BoxOpacity     uint8
	BorderColor    color.NRGBA
	TextColor      color.NRGBA
	AuthorColor    color.NRGBA
	AuthorPosition string // "bottom_right", "bottom_center", "inside_bottom"
	LogoPosition   string // "top_center", "top_left", "none"
	Description    string
}

var templates = map[string]Template{
	"classic": {
		Name: "classic", Box: true, BoxOpacity: 180,
		BorderColor:    color.NRGBA{79, 70, 229, 255},
		TextColor:      color.NRGBA{255, 255, 255, 255},
		AuthorColor:    color.NRGBA{124, 58, 237, 255},
		AuthorPosition: "bottom_right", LogoPosition: "top_center",
		Description: "Centered box with colored border and top logo",
	},
	"minimal": {
		Name: "minimal", Box: false,
		TextColor:      color.NRGBA{255, 255, 255, 255},
		AuthorColor:    color.NRGBA{200, 200, 200, 255},
		AuthorPosition: "bottom_center", LogoPosition: "top_left",
		Description: "No box, text straight on the background",
	},
	"bold": {
		Name: "bold", Box: true, BoxOpacity: 220,
		BorderColor:    color.NRGBA{236, 72, 153, 255},
		TextColor:      color.NRGBA{255, 255, 255, 255},
		AuthorColor:    color.NRGBA{236, 72, 153, 255},
		AuthorPosition: "inside_bottom", LogoPosition: "top_center",
		Description: "Dark box with pink accents, author inside the box",
	},
	"light": {
		Name: "light", Box: true, BoxOpacity: 200,
		BorderColor:    color.NRGBA{255, 255, 255, 255},
		TextColor:      color.NRGBA{30, 41, 59, 255},
		AuthorColor:    color.NRGBA{79, 70, 229, 255},
		AuthorPosition: "bottom_right", LogoPosition: "top_center",
		Description: "White box with dark text",
	},
}

// LookupTemplate returns the named template, defaulting to classic.
func LookupTemplate(name string) Template {
	if t, ok := templates[name]; ok {
		return t
	}
	return templates["classic"]
}

// TemplateNames lists the available template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package content is the static copy shown on each page.
package content

import "github.com/Zahin-Mohammad-plug/zahin.org/internal/page"

// Accent is a pin or card colour.
type Accent int

const (
	Orange Accent = iota
	Blue
)

// Point is a position as fractions of its container.
type Point struct {
	X, Y float64
}

// Offset is a displacement in pixels.
type Offset struct {
	X, Y float64
}

// Passion is a pinned hobby on the passions page.
type Passion struct {
	ID          string
	Title       string
	Description string
	Pin         Point
	CardOffset  Offset // from the pin
	Accent      Accent
}

// Project is a pinned project on the projects globe.
type Project struct {
	ID          string
	Name        string
	Description string
	Link        string
	LinkText    string
	Tech        []string
	Pin         Point
	CardOffset  Offset
	Accent      Accent
}

// Tech is one item on a stack orbit.
type Tech struct {
	Name string
	// Dark icons are drawn on a light disc.
	Dark bool
}

// Ring is one stack orbit.
type Ring struct {
	Label string
	Items []Tech
}

// Contact is an outbound link.
type Contact struct {
	Label string
	URL   string
}

// Heading is the title shown for a page.
func Heading(p page.Page) string {
	switch p {
	case page.About:
		return "About Me"
	case page.Passions:
		return "Passions"
	case page.Projects:
		return "Projects"
	case page.Stack:
		return "Stack"
	}
	return ""
}

const Bio = "I'm a CS student from Ottawa, Ontario who enjoys building real apps and learning how to design systems through practice."

var Passions = []Passion{
	{
		ID:          "3d-printing",
		Title:       "3D Printing",
		Description: `I may have misunderstood "software engineering" and spent too long learning CAD, slicing, and how designs fail physically.`,
		Pin:         Point{X: 0.18, Y: 0.72},
		CardOffset:  Offset{-180, -160},
		Accent:      Orange,
	},
	{
		ID:          "cars",
		Title:       "Cars",
		Description: "I've always been drawn to cars, partly for how they work, partly for how many problems they hide until you look closely.",
		Pin:         Point{X: 0.82, Y: 0.38},
		CardOffset:  Offset{30, -80},
		Accent:      Orange,
	},
	{
		ID:          "gym",
		Title:       "Gym",
		Description: "The gym is where I go when debugging stops making sense and problems are better solved one rep at a time.",
		Pin:         Point{X: 0.72, Y: 0.68},
		CardOffset:  Offset{30, -60},
		Accent:      Blue,
	},
	{
		ID:          "homelab",
		Title:       "Homelab",
		Description: "I keep a home server mostly to learn what actually happens when systems are left running without supervision.",
		Pin:         Point{X: 0.48, Y: 0.70},
		CardOffset:  Offset{-100, 40},
		Accent:      Blue,
	},
}

var Projects = []Project{
	{
		ID:          "lilycove",
		Name:        "LilyCove",
		Description: "Production web app aggregating listings for 18,000+ Pokémon cards, optimized for fast search.",
		Link:        "https://lilycove.io",
		LinkText:    "Built the production app",
		Tech:        []string{"React", "Python", "PostgreSQL", "Redis"},
		Pin:         Point{X: 0.42, Y: 0.55},
		CardOffset:  Offset{-280, -120},
		Accent:      Orange,
	},
	{
		ID:          "maple-leaf",
		Name:        "Maple Leaf 3D",
		Description: "Web platform that generates instant 3D printing quotes by aliased models and computing cost for near real G-code data.",
		Link:        "https://mapleleaf3d.ca",
		LinkText:    "Visit site",
		Tech:        []string{"Next.js", "Python", "PrusaSlicer", "Three.js", "Docker"},
		Pin:         Point{X: 0.58, Y: 0.40},
		CardOffset:  Offset{50, -180},
		Accent:      Blue,
	},
	{
		ID:          "latex-math",
		Name:        "LaTeX Math TTS",
		Description: "Client-side tool that parses nested LaTeX expressions and converts them into synchronized spoken math for accessibility.",
		Link:        "https://mathtts.zahin.org/",
		LinkText:    "Try it out",
		Tech:        []string{"TypeScript", "React", "Parsing", "Web Speech API"},
		Pin:         Point{X: 0.54, Y: 0.62},
		CardOffset:  Offset{50, -80},
		Accent:      Blue,
	},
}

// Stack is inner to outer.
var Stack = [3]Ring{
	{Label: "Languages", Items: []Tech{
		{Name: "Python"}, {Name: "JavaScript"}, {Name: "TypeScript"}, {Name: "HTML5"}, {Name: "CSS3"},
	}},
	{Label: "Frameworks", Items: []Tech{
		{Name: "React"}, {Name: "Next.js", Dark: true}, {Name: "Three.js", Dark: true},
		{Name: "FastAPI"}, {Name: "Flask", Dark: true}, {Name: "Express", Dark: true}, {Name: "PyTorch"},
	}},
	{Label: "Tools", Items: []Tech{
		{Name: "Docker"}, {Name: "PostgreSQL"}, {Name: "Redis"}, {Name: "Git"}, {Name: "Nginx"}, {Name: "Linux", Dark: true},
	}},
}

var Contacts = []Contact{
	{Label: "GitHub", URL: "https://github.com/Zahin-Mohammad-plug"},
	{Label: "LinkedIn", URL: "https://www.linkedin.com/in/zahin-mohammad/"},
	{Label: "Email", URL: "mailto:zahin@zahin.org"},
}

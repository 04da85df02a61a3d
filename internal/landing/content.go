// Package landing holds the copy shown over the aurora: the idea library, the
// blueprint steps, the lab dispatch cards and the call to action.
package landing

import (
	"fmt"
	"image/color"
)

type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

type Idea struct {
	Title      string
	Summary    string
	Tags       []string
	Momentum   string
	Difficulty Difficulty
}

type Status string

const (
	StatusPrototype Status = "prototype"
	StatusLive      Status = "live"
	StatusIdeating  Status = "ideating"
)

type LabUpdate struct {
	Title       string
	Description string
	ShipDate    string
	Status      Status
}

type StoryStep struct {
	Title   string
	Content string
}

type Link struct {
	Label string
	URL   string
}

// MomentumCard is one of the two blurbs derived from the active idea.
type MomentumCard struct {
	Label string
	Body  string
}

const (
	Pill     = "Agentic Playground"
	Headline = "Invent the next delightful tool today."
	Intro    = "Welcome to a micro lab for experiments, rituals, and creative prototypes. " +
		"Spin the wheel, catch a spark, and follow the thread to a shippable story."

	IdeaHeading   = "Idea in Focus"
	IdeaSubtitle  = "Each shuffle reveals a ready-to-ship creative experiment."
	StoryHeading  = "Blueprint a Moment"
	StorySubtitle = "Progress through repeatable rituals that turn sparks into polished experiences."
	LabHeading    = "Lab Dispatch"
	LabSubtitle   = "Snapshots from experiments brewing in the background."
	CTAHeading    = "Ready to explore?"
	CTABody       = "Save a snapshot of today's idea and remix it with your crew. Every visit reshapes the lab."
)

var ideas = []Idea{
	{
		Title:      "Living Moodboard",
		Summary:    "A collaborative canvas that rearranges itself using generative gradients and AI-assisted captions the moment someone drops a new inspiration tile.",
		Tags:       []string{"WebGL", "Realtime", "Figma API"},
		Momentum:   "Captures a team's evolving vibe and turns it into motion.",
		Difficulty: DifficultyHigh,
	},
	{
		Title:      "Pocket Mentor",
		Summary:    "Micro lessons that remix your own notes into flashcards and practice prompts, delivered in a calm 3-minute daily ritual.",
		Tags:       []string{"LLMs", "Spaced Repetition", "Progressive Web App"},
		Momentum:   "Gently nudges learners to keep up the streak without pressure.",
		Difficulty: DifficultyMedium,
	},
	{
		Title:      "Sonic Garden",
		Summary:    "Seed a soundscape with emojis; watch a generative music engine grow loops that respond to the emoji ecosystem's health.",
		Tags:       []string{"Web Audio", "Procedural", "Emoji UI"},
		Momentum:   "Transforms idle browsers into serene ambient instruments.",
		Difficulty: DifficultyMedium,
	},
	{
		Title:      "Moment Atlas",
		Summary:    "Automagically threads highlights into a narrative timeline, helping storytellers anchor key beats before the edit even starts.",
		Tags:       []string{"Video", "Embeddings", "Storyboarding"},
		Momentum:   "Keeps teams aligned on the emotional rhythm of their project.",
		Difficulty: DifficultyHigh,
	},
	{
		Title:      "Pulseboard",
		Summary:    "A mood-first dashboard that reads signals from your tools and paints a color dial showing the team's energy, not just velocity.",
		Tags:       []string{"Data Viz", "Sentiment", "Team Health"},
		Momentum:   "Surfaces the invisible pulses that keep creative teams thriving.",
		Difficulty: DifficultyLow,
	},
}

var labUpdates = []LabUpdate{
	{
		Title:       "Waveform UI Kit",
		Description: "An interface system for sonifying UI events with tasteful micro interactions and drag-and-drop gesture hooks.",
		ShipDate:    "Shipping Next",
		Status:      StatusPrototype,
	},
	{
		Title:       "Prompted Journeys",
		Description: "Opinionated flow templates for onboarding AI features without breaking trust or overwhelming nobody.",
		ShipDate:    "Live Today",
		Status:      StatusLive,
	},
	{
		Title:       "Playbook Archive",
		Description: "A living library of creative workouts that spark ideation sprints for remote teams in under 15 minutes.",
		ShipDate:    "Exploring",
		Status:      StatusIdeating,
	},
}

var storySteps = []StoryStep{
	{Title: "Spark", Content: "Collect fragments (screenshots, phrases, scribbles) and drop them into the nebula to begin shaping a new world."},
	{Title: "Weave", Content: "Use guided rituals to remix those fragments into narrative threads with directional audio cues to keep momentum."},
	{Title: "Polish", Content: "Invite collaborators, tune the emotional arc, and export a blueprint ready for decks, prototypes, or full builds."},
}

var ctaLinks = []Link{
	{Label: "Fork the Lab", URL: "https://vercel.com/templates"},
	{Label: "Explore Inspirations", URL: "https://github.com/vercel/next.js"},
}

var statusCopy = map[Status]string{
	StatusLive:      "Live",
	StatusPrototype: "In Prototype",
	StatusIdeating:  "Early Sketch",
}

var statusColor = map[Status]color.RGBA{
	StatusLive:      {R: 67, G: 233, B: 123, A: 255},
	StatusPrototype: {R: 255, G: 204, B: 112, A: 255},
	StatusIdeating:  {R: 159, G: 122, B: 234, A: 255},
}

// Ideas returns the idea library. The slice is a copy.
func Ideas() []Idea { return append([]Idea(nil), ideas...) }

func LabUpdates() []LabUpdate { return append([]LabUpdate(nil), labUpdates...) }

func StorySteps() []StoryStep { return append([]StoryStep(nil), storySteps...) }

func CTALinks() []Link { return append([]Link(nil), ctaLinks...) }

// Copy is the badge text for a status.
func (s Status) Copy() string {
	if c, ok := statusCopy[s]; ok {
		return c
	}
	return string(s)
}

// Color is the badge colour for a status.
func (s Status) Color() color.RGBA {
	if c, ok := statusColor[s]; ok {
		return c
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// MomentumCards derives the "why" and "effort" blurbs for an idea.
func MomentumCards(idea Idea) []MomentumCard {
	pace := "focused sprint"
	if idea.Difficulty == DifficultyLow {
		pace = "weekend dive"
	}
	return []MomentumCard{
		{Label: "Why it matters", Body: idea.Momentum},
		{Label: "Build energy", Body: fmt.Sprintf("Estimated lift: %s. Great for a %s.", idea.Difficulty, pace)},
	}
}

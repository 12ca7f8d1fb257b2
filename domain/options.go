package domain

import "strings"

var animalEmoji = map[Animal]string{
	Lion:     "🦁",
	Elephant: "🐘",
	Rabbit:   "🐰",
	Bear:     "🧸",
	Owl:      "🦉",
	Fox:      "🦊",
	Giraffe:  "🦒",
	Penguin:  "🐧",
}

type AnimalOption struct {
	Value Animal `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

type ThemeOption struct {
	Value  Theme  `json:"value"`
	Label  string `json:"label"`
	Lesson string `json:"lesson"`
}

type StoryOptions struct {
	Animals []AnimalOption `json:"animals"`
	Themes  []ThemeOption  `json:"themes"`
}

// Options describes every value a story request may pick from.
func Options() StoryOptions {
	opts := StoryOptions{
		Animals: make([]AnimalOption, 0, len(Animals)),
		Themes:  make([]ThemeOption, 0, len(Themes)),
	}
	for _, a := range Animals {
		opts.Animals = append(opts.Animals, AnimalOption{Value: a, Label: capitalize(string(a)), Emoji: animalEmoji[a]})
	}
	for _, t := range Themes {
		opts.Themes = append(opts.Themes, ThemeOption{Value: t, Label: capitalize(string(t)), Lesson: t.Lesson()})
	}
	return opts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

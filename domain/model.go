package domain

import "time"

type Animal string

const (
	Lion     Animal = "lion"
	Elephant Animal = "elephant"
	Rabbit   Animal = "rabbit"
	Bear     Animal = "bear"
	Owl      Animal = "owl"
	Fox      Animal = "fox"
	Giraffe  Animal = "giraffe"
	Penguin  Animal = "penguin"
)

// Animals lists the selectable animals in display order.
var Animals = []Animal{Lion, Elephant, Rabbit, Bear, Owl, Fox, Giraffe, Penguin}

func (a Animal) IsValid() bool {
	for _, animal := range Animals {
		if a == animal {
			return true
		}
	}
	return false
}

type Theme string

const (
	Friendship   Theme = "friendship"
	Courage      Theme = "courage"
	Sharing      Theme = "sharing"
	Honesty      Theme = "honesty"
	Perseverance Theme = "perseverance"
	Empathy      Theme = "empathy"
	Curiosity    Theme = "curiosity"
)

var Themes = []Theme{Friendship, Courage, Sharing, Honesty, Perseverance, Empathy, Curiosity}

var themeLessons = map[Theme]string{
	Friendship:   "the importance of making friends and being kind to others",
	Courage:      "being brave even when things seem scary or difficult",
	Sharing:      "the joy of sharing and caring for others",
	Honesty:      "the value of telling the truth and being honest",
	Perseverance: "never giving up even when things are hard",
	Empathy:      "understanding and caring about how others feel",
	Curiosity:    "the excitement of exploring and learning new things",
}

func (t Theme) IsValid() bool {
	_, ok := themeLessons[t]
	return ok
}

// Lesson returns the lesson phrase woven into a story for the theme.
// Themes are validated before they get here, so an unknown theme panics.
func (t Theme) Lesson() string {
	lesson, ok := themeLessons[t]
	if !ok {
		panic("domain: no lesson for theme " + string(t))
	}
	return lesson
}

type StoryRequest struct {
	ChildName string
	Animal    Animal
	Theme     Theme
}

type GeneratedStory struct {
	Title   string
	Content string
}

type NewStory struct {
	StoryRequest
	GeneratedStory
}

type Story struct {
	ID        int       `json:"id"`
	ChildName string    `json:"childName"`
	Animal    Animal    `json:"animal"`
	Theme     Theme     `json:"theme"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type NewUser struct {
	Username string
	Password string
}

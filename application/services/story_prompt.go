package services

import (
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/domain"
	"strings"
	"text/template"
)

const storytellerInstruction = "You are a magical storyteller who creates beautiful, educational bedtime stories for children. " +
	"Your stories are always positive, gentle, and filled with wonder. Give every story a different title. " +
	"Always respond with valid JSON."

var storyPromptTemplate = template.Must(template.New("story").Parse(
	`Create a magical bedtime story for a child named {{.ChildName}}. The story should:

- Feature {{.ChildName}} as the main character alongside a wise and friendly {{.Animal}}
- Teach a lesson about {{.Lesson}}
- Be exactly 1000-1200 words long
- Have a gentle, soothing tone perfect for bedtime
- Include magical elements like enchanted forests, talking animals, or mystical places
- End with {{.ChildName}} learning the important lesson and feeling peaceful for sleep
- Use descriptive, imaginative language that sparks wonder
- Be age-appropriate for children 4-10 years old

Respond with a single JSON object and nothing else. It must contain exactly these keys:
- "title": A magical title for the story
- "content": The full story text (1000-1200 words)

Make the story unique, engaging, and filled with wonder. Include vivid descriptions of magical settings and gentle adventures that teach the chosen lesson naturally through the story.`))

type storyPromptData struct {
	ChildName string
	Animal    domain.Animal
	Lesson    string
}

// BuildStoryPrompt renders the provider prompt for a validated request.
func BuildStoryPrompt(req domain.StoryRequest) (outbound.Prompt, error) {
	var builder strings.Builder
	err := storyPromptTemplate.Execute(&builder, storyPromptData{
		ChildName: req.ChildName,
		Animal:    req.Animal,
		Lesson:    req.Theme.Lesson(),
	})
	if err != nil {
		return outbound.Prompt{}, err
	}

	return outbound.Prompt{
		System: storytellerInstruction,
		User:   builder.String(),
	}, nil
}

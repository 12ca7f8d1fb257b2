package services

import (
	"encoding/json"
	"github.com/deanjroach84/DreamTales/domain"
	"regexp"
	"strings"
)

var (
	openingFenceRegexp = regexp.MustCompile("^```[A-Za-z]*[ \t]*\r?\n?")
	closingFenceRegexp = regexp.MustCompile("\r?\n?```$")
)

type storyReply struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ParseStoryReply turns the provider's raw reply into a story. A single
// markdown code fence around the JSON is tolerated; any other text is not.
func ParseStoryReply(raw string) (domain.GeneratedStory, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return domain.GeneratedStory{}, &domain.ResponseParseError{Reason: "empty reply"}
	}

	var reply storyReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return domain.GeneratedStory{}, &domain.ResponseParseError{Reason: "reply is not a JSON object with string fields", Err: err}
	}

	var missing []string
	if reply.Title == nil || strings.TrimSpace(*reply.Title) == "" {
		missing = append(missing, "title")
	}
	if reply.Content == nil || strings.TrimSpace(*reply.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return domain.GeneratedStory{}, &domain.ResponseParseError{Reason: "missing " + strings.Join(missing, " and ")}
	}

	return domain.GeneratedStory{
		Title:   strings.TrimSpace(*reply.Title),
		Content: strings.TrimSpace(*reply.Content),
	}, nil
}

func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = openingFenceRegexp.ReplaceAllString(cleaned, "")
	cleaned = closingFenceRegexp.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

package adapters

import (
	"context"
	"github.com/deanjroach84/DreamTales/domain"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps stories and users for the lifetime of the process.
// Ids start at 1 and are never reused.
type MemoryStore struct {
	mu          sync.RWMutex
	stories     map[int]domain.Story
	users       map[int]domain.User
	nextStoryID int
	nextUserID  int
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		stories:     make(map[int]domain.Story),
		users:       make(map[int]domain.User),
		nextStoryID: 1,
		nextUserID:  1,
		now:         now,
	}
}

func (m *MemoryStore) CreateStory(_ context.Context, story domain.NewStory) domain.Story {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := domain.Story{
		ID:        m.nextStoryID,
		ChildName: story.ChildName,
		Animal:    story.Animal,
		Theme:     story.Theme,
		Title:     story.Title,
		Content:   story.Content,
		CreatedAt: m.now(),
	}
	m.stories[created.ID] = created
	m.nextStoryID++

	return created
}

func (m *MemoryStore) GetStory(_ context.Context, id int) (domain.Story, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	story, ok := m.stories[id]
	if !ok {
		return domain.Story{}, domain.ErrStoryNotFound
	}
	return story, nil
}

func (m *MemoryStore) GetStoriesByChild(_ context.Context, childName string) []domain.Story {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stories := make([]domain.Story, 0)
	for _, story := range m.stories {
		if strings.EqualFold(story.ChildName, childName) {
			stories = append(stories, story)
		}
	}
	sort.Slice(stories, func(i, j int) bool { return stories[i].ID < stories[j].ID })

	return stories
}

func (m *MemoryStore) CreateUser(_ context.Context, user domain.NewUser) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}

	created := domain.User{
		ID:       m.nextUserID,
		Username: user.Username,
		Password: user.Password,
	}
	m.users[created.ID] = created
	m.nextUserID++

	return created, nil
}

func (m *MemoryStore) GetUser(_ context.Context, id int) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

package commands

import (
	"strings"

	"linkhoard/internal/application"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// fakeStore is an in-memory LinkStore used by the command tests. It keeps
// positions dense and records mutation calls so tests can assert on how
// commands drive the store, not just on the end state.
type fakeStore struct {
	links  []domain.Link
	nextID int64

	addCalls     int
	reorderCalls int
	replaceCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (s *fakeStore) Add(name, path, tags string) (*domain.Link, error) {
	s.addCalls++
	if strings.TrimSpace(path) == "" {
		return nil, &application.ValidationError{Field: "path", Message: "is required"}
	}
	link := domain.Link{
		ID:       s.nextID,
		Name:     name,
		Path:     path,
		Tags:     tags,
		Position: len(s.links),
	}
	s.nextID++
	s.links = append(s.links, link)
	return &link, nil
}

func (s *fakeStore) Update(id int64, fields ports.UpdateFields) error {
	i := s.index(id)
	if i < 0 {
		return application.ErrNotFound
	}
	if fields.Name != nil {
		s.links[i].Name = *fields.Name
	}
	if fields.Path != nil {
		s.links[i].Path = *fields.Path
	}
	if fields.Tags != nil {
		s.links[i].Tags = *fields.Tags
	}
	return nil
}

func (s *fakeStore) Delete(id int64) error {
	i := s.index(id)
	if i < 0 {
		return application.ErrNotFound
	}
	s.links = append(s.links[:i], s.links[i+1:]...)
	s.renumber()
	return nil
}

func (s *fakeStore) Reorder(id int64, newPosition int) error {
	s.reorderCalls++
	i := s.index(id)
	if i < 0 {
		return application.ErrNotFound
	}
	if newPosition < 0 || newPosition >= len(s.links) {
		return &application.ValidationError{Field: "position", Message: "out of range"}
	}
	link := s.links[i]
	s.links = append(s.links[:i], s.links[i+1:]...)
	s.links = append(s.links[:newPosition], append([]domain.Link{link}, s.links[newPosition:]...)...)
	s.renumber()
	return nil
}

func (s *fakeStore) ReplaceAll(links []domain.Link) error {
	s.replaceCalls++
	s.links = nil
	for _, l := range links {
		l.ID = s.nextID
		s.nextID++
		s.links = append(s.links, l)
	}
	s.renumber()
	return nil
}

func (s *fakeStore) Get(id int64) (*domain.Link, error) {
	i := s.index(id)
	if i < 0 {
		return nil, application.ErrNotFound
	}
	link := s.links[i]
	return &link, nil
}

func (s *fakeStore) List(filter string) ([]domain.Link, error) {
	if filter == "" {
		return append([]domain.Link(nil), s.links...), nil
	}
	needle := strings.ToLower(filter)
	var out []domain.Link
	for _, l := range s.links {
		haystack := strings.ToLower(l.Name + " " + l.Path + " " + l.Tags)
		if strings.Contains(haystack, needle) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) Count() (int, error) { return len(s.links), nil }

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) index(id int64) int {
	for i, l := range s.links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *fakeStore) renumber() {
	for i := range s.links {
		s.links[i].Position = i
	}
}

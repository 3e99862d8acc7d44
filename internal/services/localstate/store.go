package localstate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Tutorial names a first-run explanation shown once per device
type Tutorial string

const (
	TutorialWhiteElephant Tutorial = "white_elephant"
	TutorialTrivia        Tutorial = "trivia"
	TutorialContest       Tutorial = "contest"
)

// Identity is the participant this device joined as
type Identity struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	RealName    string `yaml:"real_name"`
}

type document struct {
	Participant *Identity         `yaml:"participant,omitempty"`
	Tutorials   map[Tutorial]bool `yaml:"tutorials,omitempty"`
}

// Store is the small amount of state kept on the device between runs.
// It is read once by Open and written through on every change.
type Store struct {
	path string

	mu  sync.Mutex
	doc document
}

// DefaultPath returns the state file under the user's config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config directory: %w", err)
	}
	return filepath.Join(dir, "holidayhub", "state.yaml"), nil
}

// Open loads the state file at path. A missing file is an empty state.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}

	s := &Store{
		path: path,
		doc:  document{Tutorials: map[Tutorial]bool{}},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if s.doc.Tutorials == nil {
		s.doc.Tutorials = map[Tutorial]bool{}
	}

	return s, nil
}

// Identity returns the stored participant, or nil when signed out
func (s *Store) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Participant == nil {
		return nil
	}
	identity := *s.doc.Participant
	return &identity
}

// SaveIdentity remembers the participant this device joined as
func (s *Store) SaveIdentity(identity *Identity) error {
	if identity == nil || identity.ID == "" {
		return errors.New("identity and ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *identity
	s.doc.Participant = &stored
	return s.save()
}

// ClearIdentity forgets the participant. The server record is untouched.
func (s *Store) ClearIdentity() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Participant = nil
	return s.save()
}

// HasSeenTutorial reports whether the tutorial was dismissed before
func (s *Store) HasSeenTutorial(tutorial Tutorial) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Tutorials[tutorial]
}

// MarkTutorialSeen records that the tutorial was dismissed
func (s *Store) MarkTutorialSeen(tutorial Tutorial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Tutorials[tutorial] = true
	return s.save()
}

// save writes to a temp file and renames it over the old one. Callers hold mu.
func (s *Store) save() error {
	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"grimoire/pkg/character"
)

const DataDir = "data/profiles"

var ErrInvalidName = errors.New("invalid profile name")

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// ProfileSave is the on-disk form of one character.
type ProfileSave struct {
	Name      string         `json:"name"`
	SavedAt   time.Time      `json:"saved_at"`
	Character character.Data `json:"character"`
}

// Store reads and writes profiles below Dir.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = DataDir
	}
	return &Store{Dir: dir}
}

func (s *Store) path(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.Dir, name+".json"), nil
}

// SaveProfile writes data under name. The file is replaced atomically.
func (s *Store) SaveProfile(name string, data character.Data) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(ProfileSave{Name: name, SavedAt: time.Now().UTC(), Character: data}); err != nil {
		tmp.Close()
		return fmt.Errorf("encode profile %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadProfile reads the profile called name. A profile that does not
// exist yet yields the starter character and found == false.
func (s *Store) LoadProfile(name string) (data character.Data, found bool, err error) {
	path, err := s.path(name)
	if err != nil {
		return character.Data{}, false, err
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return character.StarterData(), false, nil
		}
		return character.Data{}, false, err
	}
	defer file.Close()

	var save ProfileSave
	if err := json.NewDecoder(file).Decode(&save); err != nil {
		return character.Data{}, false, fmt.Errorf("decode profile %s: %w", name, err)
	}
	return save.Character, true, nil
}

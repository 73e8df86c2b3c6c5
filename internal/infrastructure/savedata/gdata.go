package savedata

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage location inside the gdata app directory
const (
	scoresObject   = "scores"
	scoresProperty = "levels"
)

// gdataBackend is the subset of *gdata.Manager the store needs
type gdataBackend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// GdataStore keeps all level records in one YAML document under the
// platform's app data directory. The document is read and written wholesale.
type GdataStore struct {
	mu      sync.Mutex
	backend gdataBackend
	logger  *log.Logger
}

// OpenGdata opens the app data directory for appName
func OpenGdata(appName string, logger *log.Logger) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("savedata: open gdata %q: %w", appName, err)
	}
	return newGdataStore(m, logger), nil
}

func newGdataStore(backend gdataBackend, logger *log.Logger) *GdataStore {
	return &GdataStore{backend: backend, logger: logger}
}

func (s *GdataStore) Get(level string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[level], nil
}

func (s *GdataStore) Update(level string, seconds float64, stars, total int) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	r := Merge(records[level], seconds, stars, total)
	records[level] = r

	data, err := yaml.Marshal(records)
	if err != nil {
		return r, fmt.Errorf("savedata: encode records: %w", err)
	}
	if err := s.backend.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return r, fmt.Errorf("savedata: save records: %w", err)
	}
	return copyRecord(r), nil
}

func (s *GdataStore) Close() error { return nil }

// load returns every stored record. A missing or unreadable document
// yields an empty set.
func (s *GdataStore) load() map[string]Record {
	records := make(map[string]Record)
	if !s.backend.ObjectPropExists(scoresObject, scoresProperty) {
		return records
	}

	data, err := s.backend.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		s.logger.Warn("cannot read save data, starting fresh", "error", err)
		return records
	}
	if err := yaml.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt save data, starting fresh", "error", err)
		return make(map[string]Record)
	}
	if records == nil {
		records = make(map[string]Record)
	}
	return records
}

package savedata

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGdata is an in-memory stand-in for *gdata.Manager
type fakeGdata struct {
	props   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newFakeGdata() *fakeGdata {
	return &fakeGdata{props: make(map[string][]byte)}
}

func (f *fakeGdata) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := f.props[objectKey+"/"+propKey]
	return ok
}

func (f *fakeGdata) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.props[objectKey+"/"+propKey], nil
}

func (f *fakeGdata) SaveObjectProp(objectKey, propKey string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.props[objectKey+"/"+propKey] = append([]byte(nil), data...)
	return nil
}

func createTestLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestGdataStore(t *testing.T) {
	testStoreContract(t, newGdataStore(newFakeGdata(), createTestLogger()))
}

func TestGdataStore_WritesWholeDocument(t *testing.T) {
	backend := newFakeGdata()
	store := newGdataStore(backend, createTestLogger())

	_, err := store.Update("a", 10, 1, 2)
	require.NoError(t, err)
	_, err = store.Update("b", 20, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, backend.saves)

	// A fresh store over the same backend sees both levels
	reopened := newGdataStore(backend, createTestLogger())
	a, err := reopened.Get("a")
	require.NoError(t, err)
	require.True(t, a.HasTime())
	assert.Equal(t, 10.0, *a.BestTime)

	b, err := reopened.Get("b")
	require.NoError(t, err)
	assert.Equal(t, 20.0, *b.BestTime)

	doc := string(backend.props[scoresObject+"/"+scoresProperty])
	assert.Contains(t, doc, "total_stars: 2")
}

func TestGdataStore_CorruptDocument(t *testing.T) {
	backend := newFakeGdata()
	backend.props[scoresObject+"/"+scoresProperty] = []byte("{{ not yaml")
	store := newGdataStore(backend, createTestLogger())

	r, err := store.Get("lvl1")
	require.NoError(t, err)
	assert.False(t, r.HasTime())

	r, err = store.Update("lvl1", 12.5, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 12.5, *r.BestTime, "corrupt data is replaced on the next save")
}

func TestGdataStore_ReadError(t *testing.T) {
	backend := newFakeGdata()
	backend.props[scoresObject+"/"+scoresProperty] = []byte("lvl1: {time: 3}")
	backend.loadErr = errors.New("disk on fire")
	store := newGdataStore(backend, createTestLogger())

	r, err := store.Get("lvl1")
	require.NoError(t, err)
	assert.False(t, r.HasTime())
}

func TestGdataStore_SaveError(t *testing.T) {
	backend := newFakeGdata()
	backend.saveErr = errors.New("read-only")
	store := newGdataStore(backend, createTestLogger())

	_, err := store.Update("lvl1", 1, 1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.saveErr)
}

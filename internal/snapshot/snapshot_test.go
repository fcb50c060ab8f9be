package snapshot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/mlb-payroll/internal/payroll"
)

type fakeSource struct {
	mu   sync.Mutex
	recs []payroll.SeasonRecord
	err  error
}

func (f *fakeSource) Load(context.Context) ([]payroll.SeasonRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recs, f.err
}

func (f *fakeSource) String() string { return "fake" }

func (f *fakeSource) set(recs []payroll.SeasonRecord, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs, f.err = recs, err
}

func rec(year int, code, name string, wins int) payroll.SeasonRecord {
	return payroll.SeasonRecord{
		Year: year, TeamCode: code, TeamName: name,
		League: payroll.LeagueAmerican, Division: "AL East",
		TotalPayroll: 100 * payroll.Million, Wins: wins,
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_Reload(t *testing.T) {
	src := &fakeSource{recs: []payroll.SeasonRecord{rec(2023, "NYY", "New York Yankees", 82)}}
	store := New(src, discard())

	assert.Nil(t, store.Current())
	assert.False(t, store.Status().Loaded)

	var hooked []uint64
	store.OnReload(func(s *Snapshot) { hooked = append(hooked, s.Generation) })

	snap, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Generation)
	assert.Same(t, snap, store.Current())
	assert.Equal(t, "fake", snap.Source)

	st := store.Status()
	assert.True(t, st.Loaded)
	assert.Equal(t, 1, st.Records)
	assert.Equal(t, 1, st.Teams)
	assert.Equal(t, []int{2023}, st.Years)
	assert.Empty(t, st.LastError)

	src.set([]payroll.SeasonRecord{
		rec(2023, "NYY", "New York Yankees", 82),
		rec(2024, "NYY", "New York Yankees", 94),
	}, nil)
	snap2, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap2.Generation)
	assert.Equal(t, []int{2023, 2024}, store.Current().Dataset.Years())
	assert.Equal(t, []int{2023}, snap.Dataset.Years(), "earlier snapshot untouched")
	assert.Equal(t, []uint64{1, 2}, hooked)
}

func TestStore_FailedReloadKeepsPrevious(t *testing.T) {
	src := &fakeSource{recs: []payroll.SeasonRecord{rec(2023, "NYY", "New York Yankees", 82)}}
	store := New(src, discard())
	first, err := store.Reload(context.Background())
	require.NoError(t, err)

	src.set(nil, errors.New("bucket unreachable"))
	_, err = store.Reload(context.Background())
	require.Error(t, err)
	assert.Same(t, first, store.Current())
	assert.Contains(t, store.Status().LastError, "bucket unreachable")

	src.set([]payroll.SeasonRecord{
		rec(2023, "NYY", "New York Yankees", 82),
		rec(2023, "NYY", "New York Yankees", 83),
	}, nil)
	_, err = store.Reload(context.Background())
	assert.ErrorIs(t, err, payroll.ErrDuplicateSeason)
	assert.Same(t, first, store.Current())
}

func TestStore_EmptyDataset(t *testing.T) {
	store := New(&fakeSource{}, discard())
	_, err := store.Reload(context.Background())
	assert.ErrorIs(t, err, payroll.ErrEmptyDataset)
	assert.Nil(t, store.Current())
}

func TestStore_ConcurrentReaders(t *testing.T) {
	src := &fakeSource{recs: []payroll.SeasonRecord{rec(2023, "NYY", "New York Yankees", 82)}}
	store := New(src, discard())
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				snap := store.Current()
				assert.NotNil(t, snap)
				assert.Len(t, snap.Dataset.Teams, 1)
			}
		}()
	}
	for range 5 {
		_, err := store.Reload(context.Background())
		require.NoError(t, err)
	}
	wg.Wait()
	assert.Equal(t, uint64(6), store.Current().Generation)
}

func TestNewScheduler(t *testing.T) {
	store := New(&fakeSource{}, discard())

	s, err := NewScheduler(context.Background(), store, "@every 1h")
	require.NoError(t, err)
	assert.Empty(t, s.Next())
	s.Start()
	assert.NotEmpty(t, s.Next())
	s.Stop()

	_, err = NewScheduler(context.Background(), store, "not a schedule")
	assert.Error(t, err)
}

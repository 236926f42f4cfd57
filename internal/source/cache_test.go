package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/diegoclair/absence-report/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCachedFetcher_Fetch(t *testing.T) {
	const location = "https://docs.example.com/pub?output=csv"
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	snapshot := func(body string, fetchedAt time.Time) *entity.SourceSnapshot {
		return &entity.SourceSnapshot{Location: location, ContentType: contentTypeCSV, Body: []byte(body), FetchedAt: fetchedAt}
	}

	type mocksT struct {
		downloader *mocks.MockDownloader
		cache      *mocks.MockSourceCacheRepo
	}

	tests := []struct {
		name      string
		buildMock func(m mocksT)
		wantRows  [][]string
		wantErr   bool
	}{
		{
			name: "Should serve a fresh snapshot without downloading",
			buildMock: func(m mocksT) {
				m.cache.EXPECT().GetByLocation(gomock.Any(), location).
					Return(snapshot("A\ncached\n", now.Add(-time.Minute)), nil).Times(1)
			},
			wantRows: [][]string{{"cached"}},
		},
		{
			name: "Should download and store when the snapshot is stale",
			buildMock: func(m mocksT) {
				m.cache.EXPECT().GetByLocation(gomock.Any(), location).
					Return(snapshot("A\nold\n", now.Add(-2*time.Hour)), nil).Times(1)
				fresh := snapshot("A\nfresh\n", now)
				m.downloader.EXPECT().Download(gomock.Any(), location).Return(fresh, nil).Times(1)
				m.cache.EXPECT().Upsert(gomock.Any(), fresh).Return(nil).Times(1)
			},
			wantRows: [][]string{{"fresh"}},
		},
		{
			name: "Should serve the stale snapshot when the download fails",
			buildMock: func(m mocksT) {
				m.cache.EXPECT().GetByLocation(gomock.Any(), location).
					Return(snapshot("A\nold\n", now.Add(-2*time.Hour)), nil).Times(1)
				m.downloader.EXPECT().Download(gomock.Any(), location).Return(nil, errors.New("timeout")).Times(1)
			},
			wantRows: [][]string{{"old"}},
		},
		{
			name: "Should fail when nothing is cached and the download fails",
			buildMock: func(m mocksT) {
				m.cache.EXPECT().GetByLocation(gomock.Any(), location).Return(nil, nil).Times(1)
				m.downloader.EXPECT().Download(gomock.Any(), location).Return(nil, errors.New("timeout")).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should still return the table when the cache cannot be written",
			buildMock: func(m mocksT) {
				m.cache.EXPECT().GetByLocation(gomock.Any(), location).Return(nil, errors.New("locked")).Times(1)
				fresh := snapshot("A\nfresh\n", now)
				m.downloader.EXPECT().Download(gomock.Any(), location).Return(fresh, nil).Times(1)
				m.cache.EXPECT().Upsert(gomock.Any(), fresh).Return(errors.New("locked")).Times(1)
			},
			wantRows: [][]string{{"fresh"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocksT{
				downloader: mocks.NewMockDownloader(ctrl),
				cache:      mocks.NewMockSourceCacheRepo(ctrl),
			}
			tt.buildMock(m)

			f := NewCachedFetcher(m.downloader, m.cache, time.Hour, zap.NewNop())
			f.now = func() time.Time { return now }

			table, err := f.Fetch(context.Background(), location)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, table.Rows)
		})
	}
}

func TestCachedFetcher_FetchLocalFileSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no cache expectations: any cache call fails the test
	cache := mocks.NewMockSourceCacheRepo(ctrl)
	f := NewCachedFetcher(NewFetcher(nil, zap.NewNop()), cache, time.Hour, zap.NewNop())

	path := filepath.Join(t.TempDir(), "agenda.csv")
	require.NoError(t, os.WriteFile(path, []byte("PROFESIONAL,DIA\nSMITH,Martes\n"), 0o600))

	first, err := f.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"SMITH", "Martes"}}, first.Rows)

	require.NoError(t, os.WriteFile(path, []byte("PROFESIONAL,DIA\nSMITH,Lunes\nSMITH,Lunes\n"), 0o600))

	second, err := f.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, second.Rows, 2)
	assert.Equal(t, []string{"SMITH", "Lunes"}, second.Rows[0])
}

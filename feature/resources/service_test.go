package resources

import (
	"context"
	"strings"
	"testing"
	"time"

	"stock-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
}

func TestService_StoredName(t *testing.T) {
	svc := NewService(new(mocks.Client), "uploads", zap.NewNop())
	svc.now = fixedClock

	tests := []struct {
		in   string
		want string
	}{
		{"Stock Milano.XLSX", "20260825-103000_stock_milano.xlsx"},
		{"stock.csv", "20260825-103000_stock.csv"},
		{"/tmp/path/Stock.csv", "20260825-103000_stock.csv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.StoredName(tt.in))
	}
}

func TestService_Upload(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "uploads", zap.NewNop())
		svc.now = fixedClock

		client.On("PutObject", mock.Anything, "uploads", "20260825-103000_stock.csv",
			mock.Anything, int64(11), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
				return opts.ContentType == "text/csv"
			})).Return(minio.UploadInfo{}, nil)

		stored, err := svc.Upload(context.Background(), "Stock.csv", strings.NewReader("sku,qta\nA,1"), 11)

		require.NoError(t, err)
		assert.Equal(t, "20260825-103000_stock.csv", stored)
		client.AssertExpectations(t)
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "uploads", zap.NewNop())

		_, err := svc.Upload(context.Background(), "stock.pdf", strings.NewReader(""), 0)

		require.Error(t, err)
		client.AssertNotCalled(t, "PutObject")
	})
}

func TestService_List(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "uploads", zap.NewNop())

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "a.csv", Size: 10}
	ch <- minio.ObjectInfo{Key: "b.xlsx", Size: 20}
	close(ch)
	client.On("ListObjects", mock.Anything, "uploads", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	files, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", files[0].Name)
	assert.Equal(t, int64(20), files[1].Size)
}

func TestService_Delete(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "uploads", zap.NewNop())

	client.On("RemoveObject", mock.Anything, "uploads", "a.csv", mock.Anything).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "a.csv"))
	client.AssertExpectations(t)
}

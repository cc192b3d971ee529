package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"groupwarden/domain"
	"groupwarden/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBroadcastService_HandleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmd := domain.Command{
		ChatID:   10,
		SenderID: 7,
		Name:     "update",
		Args:     "maintenance tonight",
		At:       time.Now().UTC(),
	}

	t.Run("admin broadcast is relayed with the update prefix", func(t *testing.T) {
		req := require.New(t)
		transport := mocks.NewMockITransport(ctrl)
		transport.EXPECT().
			ListAdmins(gomock.Any(), int64(10)).
			Return([]int64{3, 7, 12}, nil).
			Times(1)

		svc := NewBroadcastService(transport, slog.Default())
		action, err := svc.HandleUpdate(context.Background(), cmd)

		req.NoError(err)
		req.Equal(domain.SendMessage{ChatID: 10, Text: "🔊 Update:\nmaintenance tonight"}, action)
	})

	t.Run("non-admin gets a denial reply", func(t *testing.T) {
		req := require.New(t)
		transport := mocks.NewMockITransport(ctrl)
		transport.EXPECT().
			ListAdmins(gomock.Any(), int64(10)).
			Return([]int64{3, 12}, nil).
			Times(1)

		svc := NewBroadcastService(transport, slog.Default())
		action, err := svc.HandleUpdate(context.Background(), cmd)

		req.NoError(err)
		req.Equal(domain.SendMessage{ChatID: 10, Text: permissionDenied}, action)
	})

	t.Run("admin lookup failure propagates", func(t *testing.T) {
		req := require.New(t)
		transport := mocks.NewMockITransport(ctrl)
		transport.EXPECT().
			ListAdmins(gomock.Any(), int64(10)).
			Return(nil, fmt.Errorf("api unavailable")).
			Times(1)

		svc := NewBroadcastService(transport, slog.Default())
		action, err := svc.HandleUpdate(context.Background(), cmd)

		req.Error(err)
		req.Nil(action)
	})
}

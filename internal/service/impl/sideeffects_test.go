package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/kudos/internal/dispatcher"
	"github.com/Decentr-net/kudos/internal/entities"
	notifier "github.com/Decentr-net/kudos/internal/notifier/mock"
	servicemock "github.com/Decentr-net/kudos/internal/service/mock"
	storageinterface "github.com/Decentr-net/kudos/internal/storage"
	storage "github.com/Decentr-net/kudos/internal/storage/mock"
)

var testPostLiked = dispatcher.PostLiked{
	OwnerID: "b",
	ActorID: "a",
	PostID:  "p",
	EventID: "e1",
	At:      testTime,
}

func TestSideEffects_PostLiked(t *testing.T) {
	tt := []struct {
		name     string
		profile  *entities.Profile
		err      error
		nickname string
	}{
		{name: "with nickname", profile: &entities.Profile{ID: "a", Nickname: "alice"}, nickname: "alice"},
		{name: "empty nickname", profile: &entities.Profile{ID: "a"}, nickname: unknownNickname},
		{name: "no profile", err: storageinterface.ErrNotFound, nickname: unknownNickname},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := storage.NewMockStorage(ctrl)
			l := servicemock.NewMockLedger(ctrl)
			n := notifier.NewMockNotifier(ctrl)

			s.EXPECT().GetPost(gomock.Any(), "p").Return(&entities.Post{
				ID: "p", Owner: "b", Title: "hello", Number: 42, BoardSlug: "free",
			}, nil)
			s.EXPECT().GetProfile(gomock.Any(), "a").Return(tc.profile, tc.err)

			n.EXPECT().NotifyPostLiked(gomock.Any(), entities.PostLikedNotification{
				PostOwnerID:   "b",
				ActorID:       "a",
				ActorNickname: tc.nickname,
				PostID:        "p",
				PostTitle:     "hello",
				PostNumber:    42,
				BoardSlug:     "free",
			}).Return(nil)

			l.EXPECT().Grant(gomock.Any(), &entities.GrantRequest{
				UserID: "b", Kind: entities.RewardReceivedLike, SubjectID: "p", ActorID: "a", EventID: "e1",
				Exp: 10, Points: 5, At: testTime,
			}).Return(true, nil)
			l.EXPECT().Grant(gomock.Any(), &entities.GrantRequest{
				UserID: "a", Kind: entities.RewardGiveLike, SubjectID: "p", ActorID: "a", EventID: "e1",
				Exp: 3, Points: 0, At: testTime,
			}).Return(true, nil)

			require.NoError(t, NewSideEffects(s, l, n).Handle(context.Background(), testPostLiked))
		})
	}
}

func TestSideEffects_PostLiked_NotificationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)
	l := servicemock.NewMockLedger(ctrl)
	n := notifier.NewMockNotifier(ctrl)

	s.EXPECT().GetPost(gomock.Any(), "p").Return(nil, storageinterface.ErrNotFound)
	// grants are attempted anyway
	l.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	err := NewSideEffects(s, l, n).Handle(context.Background(), testPostLiked)
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSideEffects_PostLiked_GrantFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)
	l := servicemock.NewMockLedger(ctrl)
	n := notifier.NewMockNotifier(ctrl)

	s.EXPECT().GetPost(gomock.Any(), "p").Return(&entities.Post{ID: "p"}, nil)
	s.EXPECT().GetProfile(gomock.Any(), "a").Return(nil, context.DeadlineExceeded)
	n.EXPECT().NotifyPostLiked(gomock.Any(), gomock.Any()).Return(nil)
	l.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(false, context.Canceled)
	l.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(true, nil)

	err := NewSideEffects(s, l, n).Handle(context.Background(), testPostLiked)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSideEffects_LevelUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := notifier.NewMockNotifier(ctrl)

	n.EXPECT().NotifyLevelUp(gomock.Any(), entities.LevelUpNotification{UserID: "a", Level: 3}).Return(nil)

	h := NewSideEffects(storage.NewMockStorage(ctrl), servicemock.NewMockLedger(ctrl), n)
	require.NoError(t, h.Handle(context.Background(), dispatcher.LevelUp{UserID: "a", Level: 3}))
}

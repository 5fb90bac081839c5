package service

import (
	"context"
	"sync"
	"testing"

	"social-client/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeToggler 是 LikeToggler 的模拟实现
type MockLikeToggler struct {
	mock.Mock
}

func (m *MockLikeToggler) LikePost(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLikeToggler) UnlikePost(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestToggleLikeConfirmsFlippedState(t *testing.T) {
	toggler := new(MockLikeToggler)
	store := authenticatedStore(t)
	coordinator := NewLikeCoordinator(toggler, store)

	var observed []bool
	coordinator.OnChange = func(postID int, liked bool) {
		observed = append(observed, liked)
	}

	toggler.On("LikePost", mock.Anything, 7).Return(nil).Once()

	outcome := coordinator.ToggleLike(context.Background(), 7, false)

	assert.True(t, outcome)
	assert.Equal(t, []bool{true}, observed)
	toggler.AssertExpectations(t)
	toggler.AssertNotCalled(t, "UnlikePost", mock.Anything, mock.Anything)
}

func TestToggleLikeCallsUnlikeWhenCurrentlyLiked(t *testing.T) {
	toggler := new(MockLikeToggler)
	coordinator := NewLikeCoordinator(toggler, authenticatedStore(t))

	toggler.On("UnlikePost", mock.Anything, 7).Return(nil).Once()

	outcome := coordinator.ToggleLike(context.Background(), 7, true)

	assert.False(t, outcome)
	toggler.AssertExpectations(t)
}

func TestToggleLikeRollsBackOnFailure(t *testing.T) {
	toggler := new(MockLikeToggler)
	coordinator := NewLikeCoordinator(toggler, authenticatedStore(t))

	var observed []bool
	coordinator.OnChange = func(postID int, liked bool) {
		observed = append(observed, liked)
	}

	toggler.On("UnlikePost", mock.Anything, 7).
		Return(errors.New(errors.KindTransport, "request failed")).Once()

	outcome := coordinator.ToggleLike(context.Background(), 7, true)

	// 失败后维持切换前状态，乐观翻转被回滚
	assert.True(t, outcome)
	assert.Equal(t, []bool{false, true}, observed)
}

func TestToggleLikeClearsMarkerAfterFailure(t *testing.T) {
	toggler := new(MockLikeToggler)
	coordinator := NewLikeCoordinator(toggler, authenticatedStore(t))

	toggler.On("UnlikePost", mock.Anything, 7).
		Return(errors.New(errors.KindTransport, "request failed")).Once()
	toggler.On("UnlikePost", mock.Anything, 7).Return(nil).Once()

	assert.True(t, coordinator.ToggleLike(context.Background(), 7, true))
	// 失败后在途标记已释放，同帖的下一次切换被接受
	assert.False(t, coordinator.ToggleLike(context.Background(), 7, true))
	toggler.AssertExpectations(t)
}

func TestToggleLikeRejectsSecondInFlightToggle(t *testing.T) {
	toggler := new(MockLikeToggler)
	coordinator := NewLikeCoordinator(toggler, authenticatedStore(t))

	started := make(chan struct{})
	release := make(chan struct{})
	toggler.On("LikePost", mock.Anything, 7).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var first bool
	go func() {
		defer wg.Done()
		first = coordinator.ToggleLike(context.Background(), 7, false)
	}()

	<-started
	// 第一次切换尚在途中，第二次必须立即返回原状态
	second := coordinator.ToggleLike(context.Background(), 7, false)
	assert.False(t, second)

	close(release)
	wg.Wait()

	assert.True(t, first)
	toggler.AssertNumberOfCalls(t, "LikePost", 1)
}

func TestToggleLikeIsIndependentAcrossPosts(t *testing.T) {
	toggler := new(MockLikeToggler)
	coordinator := NewLikeCoordinator(toggler, authenticatedStore(t))

	started := make(chan struct{})
	release := make(chan struct{})
	toggler.On("LikePost", mock.Anything, 7).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil).Once()
	toggler.On("LikePost", mock.Anything, 8).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		coordinator.ToggleLike(context.Background(), 7, false)
	}()

	<-started
	// 其他帖子不受 7 号帖在途标记影响
	assert.True(t, coordinator.ToggleLike(context.Background(), 8, false))

	close(release)
	wg.Wait()
	toggler.AssertExpectations(t)
}

func TestToggleLikeIsNoopWhenUnauthenticated(t *testing.T) {
	toggler := new(MockLikeToggler)
	coordinator := NewLikeCoordinator(toggler, newSessionStore(t))

	var notified bool
	coordinator.OnChange = func(postID int, liked bool) { notified = true }

	assert.False(t, coordinator.ToggleLike(context.Background(), 7, false))
	assert.True(t, coordinator.ToggleLike(context.Background(), 7, true))
	assert.False(t, notified)
	toggler.AssertNotCalled(t, "LikePost", mock.Anything, mock.Anything)
	toggler.AssertNotCalled(t, "UnlikePost", mock.Anything, mock.Anything)
}

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/core/session"
	"github.com/goto/spotlight/core/session/mocks"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/discussion"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo             *mocks.Repository
	mockArtifactService  *mocks.ArtifactService
	mockPostStore        *mocks.PostStore
	mockNotifier         *mocks.Notifier
	mockDiscussionClient *mocks.DiscussionClient
	service              *session.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepo = &mocks.Repository{}
	s.mockArtifactService = &mocks.ArtifactService{}
	s.mockPostStore = &mocks.PostStore{}
	s.mockNotifier = &mocks.Notifier{}
	s.mockDiscussionClient = &mocks.DiscussionClient{}
	s.service = session.NewService(session.ServiceDeps{
		Repository:       s.mockRepo,
		ArtifactService:  s.mockArtifactService,
		PostStore:        s.mockPostStore,
		Notifier:         s.mockNotifier,
		DiscussionClient: s.mockDiscussionClient,
		Logger:           log.NewNoop(),
	})
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func enabledConfig() domain.FeedbackConfig {
	return domain.FeedbackConfig{Enabled: true}
}

func testRecording() *domain.Recording {
	return &domain.Recording{
		VideoURL:   "https://storage/videos/abc.webm",
		MimeType:   "video/webm",
		Size:       5 << 20,
		DurationMs: 42000,
	}
}

func (s *ServiceTestSuite) TestCreate() {
	actor := domain.Actor{ID: "reviewer@example.com", Role: domain.RoleMember}

	s.Run("should reject video session without recording metadata", func() {
		s.SetupTest()
		_, err := s.service.Create(context.Background(), enabledConfig(), uuid.New().String(), domain.SessionTypeVideo, nil, actor)
		s.ErrorIs(err, session.ErrRecordingRequired)
	})

	s.Run("should reject unknown session type", func() {
		s.SetupTest()
		_, err := s.service.Create(context.Background(), enabledConfig(), uuid.New().String(), domain.SessionType("AUDIO"), nil, actor)
		s.ErrorIs(err, session.ErrInvalidSessionType)
	})

	s.Run("should reject recording over the duration limit", func() {
		s.SetupTest()
		cfg := enabledConfig()
		cfg.MaxVideoDurationSeconds = 30
		rec := testRecording()
		rec.DurationMs = 31000
		_, err := s.service.Create(context.Background(), cfg, uuid.New().String(), domain.SessionTypeVideo, rec, actor)
		s.ErrorIs(err, session.ErrDurationExceeded)
	})

	s.Run("should reject recording over the size limit", func() {
		s.SetupTest()
		cfg := enabledConfig()
		cfg.MaxVideoSizeBytes = 1 << 20
		_, err := s.service.Create(context.Background(), cfg, uuid.New().String(), domain.SessionTypeVideo, testRecording(), actor)
		s.ErrorIs(err, session.ErrSizeExceeded)
	})

	s.Run("should clamp an absurd configured duration to the ceiling", func() {
		s.SetupTest()
		cfg := enabledConfig()
		cfg.MaxVideoDurationSeconds = 100000
		rec := testRecording()
		rec.DurationMs = int64(domain.MaxVideoDurationCeilingSeconds)*1000 + 1
		_, err := s.service.Create(context.Background(), cfg, uuid.New().String(), domain.SessionTypeVideo, rec, actor)
		s.ErrorIs(err, session.ErrDurationExceeded)
	})

	s.Run("should create session, notify the post author, and mirror to discussion", func() {
		s.SetupTest()
		postID := uuid.New().String()
		a := &domain.Artifact{
			ID:     uuid.New().String(),
			PostID: postID,
			Frames: []*domain.Frame{
				{ID: "frame-1", AttachmentID: "att-1", Order: 0},
				{ID: "frame-2", AttachmentID: "att-2", Order: 1},
			},
		}
		post := &domain.Post{ID: postID, AuthorID: "author@example.com"}
		rec := testRecording()

		s.mockArtifactService.EXPECT().
			Ensure(mock.Anything, mock.AnythingOfType("domain.FeedbackConfig"), postID, actor).
			Return(a, nil)
		s.mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Session")).
			Return(nil).
			Run(func(_a0 context.Context, created *domain.Session) {
				s.Equal(a.ID, created.ArtifactID)
				s.Equal(actor.ID, created.AuthorID)
				s.Equal(domain.SessionTypeVideo, created.Type)
				s.Equal(rec, created.Recording)
			})
		s.mockPostStore.EXPECT().
			GetPost(mock.Anything, postID).
			Return(post, nil)
		s.mockNotifier.EXPECT().
			Notify(mock.Anything, mock.AnythingOfType("[]domain.Notification")).
			Return(nil).
			Run(func(_a0 context.Context, notifications []domain.Notification) {
				s.Len(notifications, 1)
				s.Equal(post.AuthorID, notifications[0].User)
				s.Equal(domain.NotificationTypeFeedbackSession, notifications[0].Message.Type)
			})
		s.mockDiscussionClient.EXPECT().
			CreateComment(mock.Anything, mock.AnythingOfType("discussion.Comment")).
			Return(nil).
			Run(func(_a0 context.Context, mirrored discussion.Comment) {
				s.Equal(postID, mirrored.PostID)
				s.Equal(actor.ID, mirrored.AuthorID)
				s.Equal("att-1", mirrored.AttachmentID)
				s.Equal(discussion.SourceVisualFeedback, mirrored.Metadata.Source)
				s.Equal(discussion.EntryTypeSession, mirrored.Metadata.EntryType)
				s.Contains(mirrored.Body.Content[0].Content[0].Text, "42s")
			})

		created, err := s.service.Create(context.Background(), enabledConfig(), postID, domain.SessionTypeVideo, rec, actor)
		s.NoError(err)
		s.NotNil(created)

		time.Sleep(500 * time.Millisecond) // wait for async actions to complete
		s.mockNotifier.AssertExpectations(s.T())
		s.mockDiscussionClient.AssertExpectations(s.T())
	})

	s.Run("should not notify when the author records on their own post", func() {
		s.SetupTest()
		postID := uuid.New().String()
		selfActor := domain.Actor{ID: "author@example.com"}
		a := &domain.Artifact{ID: uuid.New().String(), PostID: postID}
		s.mockArtifactService.EXPECT().
			Ensure(mock.Anything, mock.AnythingOfType("domain.FeedbackConfig"), postID, selfActor).
			Return(a, nil)
		s.mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Session")).
			Return(nil)
		s.mockPostStore.EXPECT().
			GetPost(mock.Anything, postID).
			Return(&domain.Post{ID: postID, AuthorID: selfActor.ID}, nil)
		s.mockDiscussionClient.EXPECT().
			CreateComment(mock.Anything, mock.AnythingOfType("discussion.Comment")).
			Return(nil)

		_, err := s.service.Create(context.Background(), enabledConfig(), postID, domain.SessionTypeTextOnly, nil, selfActor)
		s.NoError(err)

		time.Sleep(500 * time.Millisecond)
		s.mockNotifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestAppendAnnotations() {
	actor := domain.Actor{ID: "reviewer@example.com"}
	sessionID := uuid.New().String()
	artifactID := uuid.New().String()
	storedSession := &domain.Session{ID: sessionID, ArtifactID: artifactID, AuthorID: actor.ID}
	storedArtifact := &domain.Artifact{
		ID: artifactID,
		Frames: []*domain.Frame{
			{ID: "frame-1", Order: 0},
			{ID: "frame-2", Order: 1},
		},
	}

	s.Run("should be a no-op for an empty batch", func() {
		s.SetupTest()
		inserted, err := s.service.AppendAnnotations(context.Background(), sessionID, nil, actor)
		s.NoError(err)
		s.Nil(inserted)
		s.mockRepo.AssertNotCalled(s.T(), "BulkInsertAnnotations", mock.Anything, mock.Anything)
	})

	s.Run("should reject batches over the limit", func() {
		s.SetupTest()
		events := make([]*domain.Annotation, session.MaxAnnotationBatchSize+1)
		for i := range events {
			events[i] = &domain.Annotation{Tool: domain.AnnotationToolPen, TStartMs: int64(i)}
		}
		_, err := s.service.AppendAnnotations(context.Background(), sessionID, events, actor)
		s.ErrorIs(err, session.ErrAnnotationBatchSize)
	})

	s.Run("should reject appends from anyone but the session author", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)

		_, err := s.service.AppendAnnotations(context.Background(), sessionID, []*domain.Annotation{
			{Tool: domain.AnnotationToolPen, TStartMs: 100},
		}, domain.Actor{ID: "someone.else@example.com"})
		s.ErrorIs(err, session.ErrNotSessionAuthor)
	})

	s.Run("should reject the whole batch on one bad frame reference", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockArtifactService.EXPECT().GetByID(mock.Anything, artifactID).Return(storedArtifact, nil)

		_, err := s.service.AppendAnnotations(context.Background(), sessionID, []*domain.Annotation{
			{Tool: domain.AnnotationToolPen, FrameID: "frame-1", TStartMs: 100},
			{Tool: domain.AnnotationToolArrow, FrameID: "frame-99", TStartMs: 200},
		}, actor)
		s.ErrorIs(err, session.ErrInvalidFrame)
		s.mockRepo.AssertNotCalled(s.T(), "BulkInsertAnnotations", mock.Anything, mock.Anything)
	})

	s.Run("should validate frame change payload targets", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockArtifactService.EXPECT().GetByID(mock.Anything, artifactID).Return(storedArtifact, nil)

		_, err := s.service.AppendAnnotations(context.Background(), sessionID, []*domain.Annotation{
			{Tool: domain.AnnotationToolFrameChange, TStartMs: 100, Payload: map[string]interface{}{"frame_id": "frame-99"}},
		}, actor)
		s.ErrorIs(err, session.ErrInvalidFrame)
	})

	s.Run("should stamp the session id and insert the batch", func() {
		s.SetupTest()
		events := []*domain.Annotation{
			{Tool: domain.AnnotationToolPen, FrameID: "frame-1", TStartMs: 100},
			{Tool: domain.AnnotationToolFrameChange, TStartMs: 5000, Payload: map[string]interface{}{"frame_id": "frame-2"}},
		}
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockArtifactService.EXPECT().GetByID(mock.Anything, artifactID).Return(storedArtifact, nil)
		s.mockRepo.EXPECT().
			BulkInsertAnnotations(mock.Anything, events).
			Return(nil).
			Run(func(_a0 context.Context, annotations []*domain.Annotation) {
				for _, e := range annotations {
					s.Equal(sessionID, e.SessionID)
				}
			})

		inserted, err := s.service.AppendAnnotations(context.Background(), sessionID, events, actor)
		s.NoError(err)
		s.Len(inserted, 2)
		s.mockRepo.AssertExpectations(s.T())
	})
}

func (s *ServiceTestSuite) TestDelete() {
	sessionID := uuid.New().String()
	artifactID := uuid.New().String()
	postID := uuid.New().String()
	storedSession := &domain.Session{ID: sessionID, ArtifactID: artifactID, AuthorID: "recorder@example.com"}

	s.Run("should allow the session author", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockRepo.EXPECT().Delete(mock.Anything, sessionID).Return(nil)

		err := s.service.Delete(context.Background(), sessionID, domain.Actor{ID: "recorder@example.com"})
		s.NoError(err)
	})

	s.Run("should allow a privileged actor without loading the post", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockRepo.EXPECT().Delete(mock.Anything, sessionID).Return(nil)

		err := s.service.Delete(context.Background(), sessionID, domain.Actor{ID: "admin@example.com", Role: domain.RoleAdmin})
		s.NoError(err)
		s.mockPostStore.AssertNotCalled(s.T(), "GetPost", mock.Anything, mock.Anything)
	})

	s.Run("should allow the post author", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockArtifactService.EXPECT().GetByID(mock.Anything, artifactID).Return(&domain.Artifact{ID: artifactID, PostID: postID}, nil)
		s.mockPostStore.EXPECT().GetPost(mock.Anything, postID).Return(&domain.Post{ID: postID, AuthorID: "author@example.com"}, nil)
		s.mockRepo.EXPECT().Delete(mock.Anything, sessionID).Return(nil)

		err := s.service.Delete(context.Background(), sessionID, domain.Actor{ID: "author@example.com"})
		s.NoError(err)
	})

	s.Run("should forbid unrelated members", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, sessionID).Return(storedSession, nil)
		s.mockArtifactService.EXPECT().GetByID(mock.Anything, artifactID).Return(&domain.Artifact{ID: artifactID, PostID: postID}, nil)
		s.mockPostStore.EXPECT().GetPost(mock.Anything, postID).Return(&domain.Post{ID: postID, AuthorID: "author@example.com"}, nil)

		err := s.service.Delete(context.Background(), sessionID, domain.Actor{ID: "bystander@example.com"})
		s.ErrorIs(err, session.ErrDeleteForbidden)
		s.mockRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestList() {
	s.Run("should default ordering to created_at", func() {
		s.SetupTest()
		artifactID := uuid.New().String()
		expected := []*domain.Session{{ID: uuid.New().String(), ArtifactID: artifactID}}
		s.mockRepo.EXPECT().
			List(mock.Anything, mock.AnythingOfType("domain.ListSessionsFilter")).
			Return(expected, nil).
			Run(func(_a0 context.Context, filter domain.ListSessionsFilter) {
				s.Equal(artifactID, filter.ArtifactID)
				s.Equal([]string{"created_at"}, filter.OrderBy)
			})

		actual, err := s.service.List(context.Background(), domain.ListSessionsFilter{ArtifactID: artifactID})
		s.NoError(err)
		s.Equal(expected, actual)
	})
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/goto/spotlight/core/comment"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/internal/store/postgres"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/pkg/postgrestest"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"
)

type CommentRepositorySuite struct {
	suite.Suite
	store      *postgres.Store
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.CommentRepository

	dummyArtifact *domain.Artifact
	dummySession  *domain.Session
}

func TestCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CommentRepositorySuite))
}

func (s *CommentRepositorySuite) SetupSuite() {
	var err error
	logger := log.NewCtxLogger("debug", []string{"test"})
	s.store, s.pool, s.resource, err = postgrestest.NewTestStore(logger)
	if err != nil {
		s.T().Fatal(err)
	}

	s.repository = postgres.NewCommentRepository(s.store.DB())

	ctx := context.Background()

	s.dummyArtifact = &domain.Artifact{
		PostID:         "post-1",
		CreatedByID:    "user-1",
		FrameSignature: "sig-1",
		Frames: []*domain.Frame{
			{AttachmentID: "att-1", URL: "https://cdn.test/1.png", Order: 0},
			{AttachmentID: "att-2", URL: "https://cdn.test/2.png", Order: 1},
		},
	}
	artifactRepository := postgres.NewArtifactRepository(s.store.DB())
	err = artifactRepository.Create(ctx, s.dummyArtifact)
	s.Require().NoError(err)

	s.dummySession = &domain.Session{
		ArtifactID: s.dummyArtifact.ID,
		AuthorID:   "user-1",
		Type:       domain.SessionTypeVideo,
		Recording: &domain.Recording{
			VideoURL:   "https://storage.test/recording.webm",
			MimeType:   "video/webm",
			Size:       2048,
			DurationMs: 42000,
		},
	}
	sessionRepository := postgres.NewSessionRepository(s.store.DB())
	err = sessionRepository.Create(ctx, s.dummySession)
	s.Require().NoError(err)
}

func (s *CommentRepositorySuite) TearDownSuite() {
	db, err := s.store.DB().DB()
	if err != nil {
		s.T().Fatal(err)
	}
	if err := db.Close(); err != nil {
		s.T().Fatal(err)
	}

	if err := postgrestest.PurgeTestDocker(s.pool, s.resource); err != nil {
		s.T().Fatal(err)
	}
}

func (s *CommentRepositorySuite) newComment(authorID string) *domain.Comment {
	return &domain.Comment{
		ArtifactID: s.dummyArtifact.ID,
		FrameID:    s.dummyArtifact.Frames[0].ID,
		AuthorID:   authorID,
		Body:       "the contrast here is too low",
		Region:     domain.Region{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.4},
		Status:     domain.CommentStatusOpen,
	}
}

func (s *CommentRepositorySuite) TestCreateAndGet() {
	s.Run("should round-trip a full comment", func() {
		timestampMs := int64(7500)
		c := s.newComment("user-2")
		c.SessionID = s.dummySession.ID
		c.TimestampMs = &timestampMs
		c.Audio = &domain.CommentAudio{
			URL:         "https://storage.test/audio.webm",
			MimeType:    "audio/webm",
			DurationSec: 12,
		}

		err := s.repository.Create(context.Background(), c)
		s.NoError(err)
		s.NotEmpty(c.ID)

		found, err := s.repository.GetByID(context.Background(), c.ID)
		s.NoError(err)
		s.Equal("user-2", found.AuthorID)
		s.Equal(domain.Region{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.4}, found.Region)
		s.Equal(s.dummySession.ID, found.SessionID)
		s.Require().NotNil(found.TimestampMs)
		s.Equal(int64(7500), *found.TimestampMs)
		s.Require().NotNil(found.Audio)
		s.Equal(12, found.Audio.DurationSec)
	})

	s.Run("should return not found for a malformed id", func() {
		_, err := s.repository.GetByID(context.Background(), "not-a-uuid")

		s.ErrorIs(err, comment.ErrCommentNotFound)
	})
}

func (s *CommentRepositorySuite) TestList() {
	parent := s.newComment("lister-1")
	s.Require().NoError(s.repository.Create(context.Background(), parent))

	reply := s.newComment("lister-2")
	reply.ParentID = parent.ID
	reply.FrameID = s.dummyArtifact.Frames[0].ID
	s.Require().NoError(s.repository.Create(context.Background(), reply))

	otherFrame := s.newComment("lister-1")
	otherFrame.FrameID = s.dummyArtifact.Frames[1].ID
	s.Require().NoError(s.repository.Create(context.Background(), otherFrame))

	s.Run("should filter by frame", func() {
		comments, err := s.repository.List(context.Background(), domain.ListCommentsFilter{
			ArtifactID: s.dummyArtifact.ID,
			FrameID:    s.dummyArtifact.Frames[1].ID,
		})

		s.NoError(err)
		s.Require().Len(comments, 1)
		s.Equal(otherFrame.ID, comments[0].ID)
	})

	s.Run("should include the reply with its parent reference", func() {
		comments, err := s.repository.List(context.Background(), domain.ListCommentsFilter{
			ArtifactID: s.dummyArtifact.ID,
			FrameID:    s.dummyArtifact.Frames[0].ID,
		})

		s.NoError(err)
		s.Require().Len(comments, 2)

		var foundReply *domain.Comment
		for _, c := range comments {
			if c.ID == reply.ID {
				foundReply = c
			}
		}
		s.Require().NotNil(foundReply)
		s.Equal(parent.ID, foundReply.ParentID)
	})
}

func (s *CommentRepositorySuite) TestUpdateStatus() {
	c := s.newComment("resolver-1")
	s.Require().NoError(s.repository.Create(context.Background(), c))

	s.Run("should stamp the resolution", func() {
		now := time.Now()
		c.Status = domain.CommentStatusResolved
		c.ResolvedAt = &now
		c.ResolvedByID = "admin-1"

		s.NoError(s.repository.UpdateStatus(context.Background(), c))

		found, err := s.repository.GetByID(context.Background(), c.ID)
		s.NoError(err)
		s.Equal(domain.CommentStatusResolved, found.Status)
		s.NotNil(found.ResolvedAt)
		s.Equal("admin-1", found.ResolvedByID)
	})

	s.Run("should clear the resolution on reopen", func() {
		c.Status = domain.CommentStatusOpen
		c.ResolvedAt = nil
		c.ResolvedByID = ""

		s.NoError(s.repository.UpdateStatus(context.Background(), c))

		found, err := s.repository.GetByID(context.Background(), c.ID)
		s.NoError(err)
		s.Equal(domain.CommentStatusOpen, found.Status)
		s.Nil(found.ResolvedAt)
		s.Empty(found.ResolvedByID)
	})

	s.Run("should return not found for an unknown comment", func() {
		unknown := s.newComment("resolver-1")
		unknown.ID = "11111111-1111-1111-1111-111111111111"
		unknown.Status = domain.CommentStatusResolved

		err := s.repository.UpdateStatus(context.Background(), unknown)

		s.ErrorIs(err, comment.ErrCommentNotFound)
	})
}

func (s *CommentRepositorySuite) TestDelete() {
	parent := s.newComment("deleter-1")
	s.Require().NoError(s.repository.Create(context.Background(), parent))

	reply := s.newComment("deleter-2")
	reply.ParentID = parent.ID
	s.Require().NoError(s.repository.Create(context.Background(), reply))

	s.Run("should delete the comment and its replies", func() {
		s.NoError(s.repository.Delete(context.Background(), parent.ID))

		_, err := s.repository.GetByID(context.Background(), parent.ID)
		s.ErrorIs(err, comment.ErrCommentNotFound)
		_, err = s.repository.GetByID(context.Background(), reply.ID)
		s.ErrorIs(err, comment.ErrCommentNotFound)
	})

	s.Run("should return not found for an already deleted comment", func() {
		err := s.repository.Delete(context.Background(), parent.ID)

		s.ErrorIs(err, comment.ErrCommentNotFound)
	})
}

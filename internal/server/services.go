package server

import (
	"fmt"

	"github.com/goto/spotlight/core/artifact"
	"github.com/goto/spotlight/core/comment"
	"github.com/goto/spotlight/core/session"
	"github.com/goto/spotlight/internal/store/postgres"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/discussion"
	"github.com/goto/spotlight/plugins/notifiers"
	"github.com/goto/spotlight/plugins/poststore"
)

type Services struct {
	ArtifactService *artifact.Service
	SessionService  *session.Service
	CommentService  *comment.Service
}

type ServiceDeps struct {
	Config *Config
	Logger log.Logger

	Notifier         notifiers.Client
	DiscussionClient discussion.Client
	PostStore        poststore.Client
}

// InitServices wires the feedback services on top of a postgres store and the
// external collaborator clients.
func InitServices(deps ServiceDeps) (*Services, error) {
	store, err := postgres.NewStore(&deps.Config.DB)
	if err != nil {
		return nil, fmt.Errorf("initializing postgres store: %w", err)
	}

	artifactRepository := postgres.NewArtifactRepository(store.DB())
	sessionRepository := postgres.NewSessionRepository(store.DB())
	commentRepository := postgres.NewCommentRepository(store.DB())

	artifactService := artifact.NewService(artifact.ServiceDeps{
		Repository:   artifactRepository,
		SessionStore: sessionRepository,
		PostStore:    deps.PostStore,
		Logger:       deps.Logger,
	})
	sessionService := session.NewService(session.ServiceDeps{
		Repository:       sessionRepository,
		ArtifactService:  artifactService,
		PostStore:        deps.PostStore,
		Notifier:         deps.Notifier,
		DiscussionClient: deps.DiscussionClient,
		Logger:           deps.Logger,
	})
	commentService := comment.NewService(comment.ServiceDeps{
		Repository:       commentRepository,
		ArtifactService:  artifactService,
		SessionService:   sessionService,
		PostStore:        deps.PostStore,
		Notifier:         deps.Notifier,
		DiscussionClient: deps.DiscussionClient,
		Logger:           deps.Logger,
	})

	return &Services{
		ArtifactService: artifactService,
		SessionService:  sessionService,
		CommentService:  commentService,
	}, nil
}

// Migrate runs the embedded SQL migrations against the configured database.
func Migrate(config *Config) error {
	store, err := postgres.NewStore(&config.DB)
	if err != nil {
		return fmt.Errorf("initializing postgres store: %w", err)
	}
	return store.Migrate()
}

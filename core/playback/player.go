package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goto/spotlight/core/timeline"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
)

const defaultFlushInterval = 5 * time.Second

// URLSigner resolves a stored video object into a time-limited download URL.
type URLSigner interface {
	SignDownloadURL(ctx context.Context, key string) (string, error)
}

//go:generate mockery --name=artifactService --exported --with-expecter
type artifactService interface {
	RecordView(ctx context.Context, postID, sessionID string) error
	RecordWatchTime(ctx context.Context, sessionID string, deltaMs int64) error
}

//go:generate mockery --name=sessionService --exported --with-expecter
type sessionService interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	ListAnnotations(ctx context.Context, sessionID string) ([]*domain.Annotation, error)
}

// Player opens playback views over saved sessions: it resolves the video URL,
// loads the annotation timeline, and reports view and watch-time telemetry.
type Player struct {
	artifacts artifactService
	sessions  sessionService
	signer    URLSigner
	logger    log.Logger

	flushInterval time.Duration
	timeNow       func() time.Time
}

type PlayerDeps struct {
	ArtifactService artifactService
	SessionService  sessionService
	Signer          URLSigner
	Logger          log.Logger

	// FlushInterval overrides how often accumulated watch time is reported.
	FlushInterval time.Duration
}

func NewPlayer(deps PlayerDeps) *Player {
	p := &Player{
		artifacts:     deps.ArtifactService,
		sessions:      deps.SessionService,
		signer:        deps.Signer,
		logger:        deps.Logger,
		flushInterval: deps.FlushInterval,
		timeNow:       time.Now,
	}
	if p.logger == nil {
		p.logger = log.NewNoop()
	}
	if p.flushInterval <= 0 {
		p.flushInterval = defaultFlushInterval
	}
	return p
}

// Open prepares playback of one video session over its artifact. The view is
// counted immediately; watch time accrues only while playing and is flushed
// periodically in deltas capped at the reporting ceiling.
func (p *Player) Open(ctx context.Context, a *domain.Artifact, sessionID string) (*Playback, error) {
	session, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Type != domain.SessionTypeVideo || session.Recording == nil {
		return nil, ErrNoRecording
	}

	videoURL := session.Recording.VideoURL
	if p.signer != nil {
		signed, err := p.signer.SignDownloadURL(ctx, videoURL)
		if err != nil {
			return nil, fmt.Errorf("signing video url: %w", err)
		}
		videoURL = signed
	}

	if err := p.artifacts.RecordView(ctx, a.PostID, sessionID); err != nil {
		p.logger.Warn(ctx, "failed to record view", "error", err, "session_id", sessionID)
	}

	events, err := p.sessions.ListAnnotations(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading annotations: %w", err)
	}

	defaultFrame := ""
	if first := a.FirstFrame(); first != nil {
		defaultFrame = first.ID
	}

	pb := &Playback{
		VideoURL:     videoURL,
		DurationMs:   session.Recording.DurationMs,
		sessionID:    sessionID,
		events:       events,
		defaultFrame: defaultFrame,
		player:       p,
	}

	flushCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	pb.cancel = cancel
	pb.done = make(chan struct{})
	go pb.flushLoop(flushCtx)

	return pb, nil
}

// Playback is one open viewing of a session. Position advances on wall time
// while playing; pausing freezes both the position and watch-time accrual.
type Playback struct {
	VideoURL   string
	DurationMs int64

	sessionID    string
	events       []*domain.Annotation
	defaultFrame string
	player       *Player

	mu         sync.Mutex
	playing    bool
	positionMs int64
	pendingMs  int64
	startedAt  time.Time
	closed     bool
	cancel     context.CancelFunc
	done       chan struct{}
}

func (pb *Playback) Play() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.playing || pb.closed {
		return
	}
	pb.playing = true
	pb.startedAt = pb.player.timeNow()
}

func (pb *Playback) Pause() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.advanceLocked()
	pb.playing = false
}

// Seek moves the playback position without accruing watch time for the jump.
func (pb *Playback) Seek(positionMs int64) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.advanceLocked()
	pb.positionMs = positionMs
}

// PositionMs returns the current playback position.
func (pb *Playback) PositionMs() int64 {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.advanceLocked()
	return pb.positionMs
}

// ActiveFrame reconciles which frame should be displayed at the current
// position.
func (pb *Playback) ActiveFrame() string {
	pb.mu.Lock()
	pb.advanceLocked()
	position := pb.positionMs
	pb.mu.Unlock()
	return timeline.ActiveFrame(pb.events, position, pb.defaultFrame)
}

// VisibleAnnotations returns the annotation events to render at the current
// position on the active frame.
func (pb *Playback) VisibleAnnotations() []*domain.Annotation {
	pb.mu.Lock()
	pb.advanceLocked()
	position := pb.positionMs
	pb.mu.Unlock()
	return timeline.VisibleAt(pb.events, position, pb.ActiveFrame())
}

// Close stops the flush loop and reports any remaining watch time.
func (pb *Playback) Close(ctx context.Context) error {
	pb.mu.Lock()
	if pb.closed {
		pb.mu.Unlock()
		return ErrAlreadyClosed
	}
	pb.closed = true
	pb.advanceLocked()
	pb.playing = false
	pb.mu.Unlock()

	pb.cancel()
	<-pb.done

	pb.flush(ctx)
	return nil
}

// advanceLocked folds wall time elapsed since the last observation into the
// position and the unflushed watch-time balance.
func (pb *Playback) advanceLocked() {
	if !pb.playing {
		return
	}
	now := pb.player.timeNow()
	dt := now.Sub(pb.startedAt).Milliseconds()
	if dt <= 0 {
		return
	}
	pb.startedAt = now
	pb.positionMs += dt
	pb.pendingMs += dt
}

func (pb *Playback) flushLoop(ctx context.Context) {
	defer close(pb.done)

	ticker := time.NewTicker(pb.player.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pb.mu.Lock()
			pb.advanceLocked()
			pb.mu.Unlock()
			pb.flush(ctx)
		}
	}
}

// flush reports the pending watch-time balance in deltas no larger than the
// per-report ceiling.
func (pb *Playback) flush(ctx context.Context) {
	for {
		pb.mu.Lock()
		if pb.pendingMs <= 0 {
			pb.mu.Unlock()
			return
		}
		delta := pb.pendingMs
		if delta > domain.MaxWatchTimeDeltaMs {
			delta = domain.MaxWatchTimeDeltaMs
		}
		pb.pendingMs -= delta
		pb.mu.Unlock()

		if err := pb.player.artifacts.RecordWatchTime(ctx, pb.sessionID, delta); err != nil {
			pb.mu.Lock()
			pb.pendingMs += delta
			pb.mu.Unlock()
			pb.player.logger.Warn(ctx, "failed to record watch time", "error", err, "session_id", pb.sessionID)
			return
		}
	}
}

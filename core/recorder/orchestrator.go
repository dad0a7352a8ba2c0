package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goto/spotlight/core/capture"
	"github.com/goto/spotlight/core/timeline"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
)

const (
	// CountdownTicks is the number of countdown beats before recording starts.
	CountdownTicks = 3

	// elapsed ticks drive the UI timer and the auto-stop check
	defaultTickInterval      = 250 * time.Millisecond
	defaultCountdownInterval = time.Second

	minDurationSeconds = 30
)

//go:generate mockery --name=captureEngine --exported --with-expecter
type captureEngine interface {
	Start(ctx context.Context, opts capture.StartOptions) error
	Stop() error
	HasCamera() bool
}

// Encoder accumulates composited frames and audio into an encoded recording.
// Close finalizes the stream and returns the blob with its negotiated mime
// type.
type Encoder interface {
	capture.Sink
	Pause()
	Resume()
	Close() (data []byte, mimeType string, err error)
}

//go:generate mockery --name=uploader --exported --with-expecter
type uploader interface {
	Upload(ctx context.Context, blob []byte, mimeType string) (string, error)
}

//go:generate mockery --name=sessionService --exported --with-expecter
type sessionService interface {
	Create(ctx context.Context, cfg domain.FeedbackConfig, postID string, sessionType domain.SessionType, recording *domain.Recording, actor domain.Actor) (*domain.Session, error)
	AppendAnnotations(ctx context.Context, sessionID string, events []*domain.Annotation, actor domain.Actor) ([]*domain.Annotation, error)
}

// Orchestrator sequences one recording: countdown, capture with pause/resume,
// elapsed-time tracking with auto-stop, and the stop path that either uploads
// and saves a session or discards everything. Media resources are released on
// every exit path.
type Orchestrator struct {
	engine   captureEngine
	encoder  Encoder
	uploader uploader
	sessions sessionService
	logger   log.Logger

	tickInterval      time.Duration
	countdownInterval time.Duration

	mu        sync.Mutex
	state     State
	discard   bool
	elapsedMs int64
	cancel    context.CancelFunc
	done      chan struct{}

	timeline *timeline.Buffer

	cfg    domain.FeedbackConfig
	postID string
	actor  domain.Actor

	onElapsed   func(elapsedMs int64)
	onCountdown func(remaining int)
	onAutoStop  func(*domain.Session, error)
}

type OrchestratorDeps struct {
	Engine   captureEngine
	Encoder  Encoder
	Uploader uploader
	Sessions sessionService
	Logger   log.Logger

	// TickInterval and CountdownInterval override the 250ms/1s defaults.
	// Used by tests.
	TickInterval      time.Duration
	CountdownInterval time.Duration
}

func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	o := &Orchestrator{
		engine:            deps.Engine,
		encoder:           deps.Encoder,
		uploader:          deps.Uploader,
		sessions:          deps.Sessions,
		logger:            deps.Logger,
		tickInterval:      deps.TickInterval,
		countdownInterval: deps.CountdownInterval,
		state:             StateIdle,
		timeline:          timeline.NewBuffer(),
	}
	if o.logger == nil {
		o.logger = log.NewNoop()
	}
	if o.tickInterval <= 0 {
		o.tickInterval = defaultTickInterval
	}
	if o.countdownInterval <= 0 {
		o.countdownInterval = defaultCountdownInterval
	}
	return o
}

type StartInput struct {
	PostID string
	Actor  domain.Actor
	Config domain.FeedbackConfig

	Source     capture.FrameSource
	WithCamera bool

	OnCameraStream func(capture.VideoTrack)
	OnCountdown    func(remaining int)
	OnElapsed      func(elapsedMs int64)

	// OnAutoStop receives the outcome when the max-duration auto-stop fires.
	OnAutoStop func(*domain.Session, error)
}

// Start begins the countdown and then recording. It returns once the devices
// are acquired and the countdown is running.
func (o *Orchestrator) Start(ctx context.Context, in StartInput) error {
	o.mu.Lock()
	// terminal states settle back to idle on the next start
	if o.state == StateDiscarded || o.state == StateError || o.state == StateSavingDraft {
		o.settleLocked(StateIdle)
	}
	if err := o.transitionLocked(StateCountingDown); err != nil {
		o.mu.Unlock()
		return err
	}
	o.cfg = in.Config.Clamped()
	o.postID = in.PostID
	o.actor = in.Actor
	o.discard = false
	o.elapsedMs = 0
	o.timeline = timeline.NewBuffer()
	o.onElapsed = in.OnElapsed
	o.onCountdown = in.OnCountdown
	o.onAutoStop = in.OnAutoStop

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	o.cancel = cancel
	o.done = make(chan struct{})
	o.mu.Unlock()

	if err := o.engine.Start(ctx, capture.StartOptions{
		Source:         in.Source,
		Sink:           o.encoder,
		WithCamera:     in.WithCamera,
		OnCameraStream: in.OnCameraStream,
	}); err != nil {
		o.mu.Lock()
		o.settleLocked(StateIdle)
		o.cancel = nil
		close(o.done)
		o.mu.Unlock()
		cancel()
		return err
	}

	go o.run(loopCtx)
	return nil
}

func (o *Orchestrator) run(ctx context.Context) {
	defer close(o.done)

	countdown := time.NewTicker(o.countdownInterval)
	remaining := CountdownTicks
	for remaining > 0 {
		o.emitCountdown(remaining)
		select {
		case <-ctx.Done():
			countdown.Stop()
			return
		case <-countdown.C:
			remaining--
		}
	}
	countdown.Stop()

	o.mu.Lock()
	if err := o.transitionLocked(StateRecording); err != nil {
		o.mu.Unlock()
		return
	}
	maxMs := o.maxDurationMsLocked()
	o.mu.Unlock()

	ticker := time.NewTicker(o.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.mu.Lock()
			if o.state != StateRecording {
				o.mu.Unlock()
				continue
			}
			o.elapsedMs += o.tickInterval.Milliseconds()
			elapsed := o.elapsedMs
			o.mu.Unlock()

			o.emitElapsed(elapsed)

			if elapsed >= maxMs {
				o.logger.Info(ctx, "max recording duration reached, auto-stopping", "elapsed_ms", elapsed)
				// Stop waits for this loop to exit, so it must run outside it
				go func() {
					session, err := o.Stop(context.WithoutCancel(ctx))
					if o.onAutoStop != nil {
						o.onAutoStop(session, err)
					}
				}()
				return
			}
		}
	}
}

// Pause freezes the elapsed timer and the encoder. Capture devices stay
// acquired.
func (o *Orchestrator) Pause() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.transitionLocked(StatePaused); err != nil {
		return err
	}
	o.encoder.Pause()
	return nil
}

func (o *Orchestrator) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StatePaused {
		return fmt.Errorf("%w: cannot resume from %q", ErrInvalidTransition, o.state)
	}
	if err := o.transitionLocked(StateRecording); err != nil {
		return err
	}
	o.encoder.Resume()
	return nil
}

// Discard marks the recording for disposal; the next Stop drops the captured
// bytes without any upload or session write.
func (o *Orchestrator) Discard() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.discard = true
}

// Stop finalizes the recording. Unless discarded, the captured blob is
// uploaded and a session with the buffered annotations is saved. Devices,
// timers, and the encoder are released on every path.
func (o *Orchestrator) Stop(ctx context.Context) (*domain.Session, error) {
	o.mu.Lock()
	fromCountdown := o.state == StateCountingDown
	if err := o.transitionLocked(StateStopping); err != nil {
		o.mu.Unlock()
		return nil, ErrNotRecording
	}
	cancel := o.cancel
	done := o.done
	discard := o.discard
	elapsed := o.elapsedMs
	o.mu.Unlock()

	cancel()
	<-done

	if err := o.engine.Stop(); err != nil {
		o.logger.Warn(ctx, "failed to stop capture engine", "error", err)
	}
	data, mimeType, encodeErr := o.encoder.Close()

	if discard || fromCountdown {
		o.finish(StateDiscarded)
		return nil, nil
	}
	if encodeErr != nil {
		o.finish(StateError)
		return nil, fmt.Errorf("finalizing recording: %w", encodeErr)
	}
	if int64(len(data)) > o.cfg.MaxVideoSizeBytes {
		o.finish(StateError)
		return nil, fmt.Errorf("%w: %d bytes over the %d limit", ErrRecordingTooLarge, len(data), o.cfg.MaxVideoSizeBytes)
	}

	o.mu.Lock()
	if err := o.transitionLocked(StateSavingDraft); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	o.mu.Unlock()

	publicURL, err := o.uploader.Upload(ctx, data, mimeType)
	if err != nil {
		o.finish(StateError)
		return nil, err
	}

	session, err := o.sessions.Create(ctx, o.cfg, o.postID, domain.SessionTypeVideo, &domain.Recording{
		VideoURL:   publicURL,
		MimeType:   mimeType,
		Size:       int64(len(data)),
		DurationMs: elapsed,
		HasCamera:  o.engine.HasCamera(),
	}, o.actor)
	if err != nil {
		o.finish(StateError)
		return nil, err
	}

	if err := o.timeline.Flush(ctx, o.sessions, session.ID, o.actor); err != nil {
		o.logger.Error(ctx, "failed to flush annotations", "error", err, "session_id", session.ID)
	}

	o.finish(StateIdle)
	return session, nil
}

// Timeline exposes the annotation buffer events are appended to while
// recording. Start swaps in a fresh buffer, so callers polling across
// recordings must re-read it.
func (o *Orchestrator) Timeline() *timeline.Buffer {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.timeline
}

// Annotate records one tool event stamped with the current elapsed time.
func (o *Orchestrator) Annotate(tool domain.AnnotationTool, frameID string, payload map[string]interface{}) error {
	o.mu.Lock()
	if o.state != StateRecording {
		o.mu.Unlock()
		return ErrNotRecording
	}
	elapsed := o.elapsedMs
	o.mu.Unlock()

	o.timeline.Append(tool, frameID, elapsed, nil, payload)
	return nil
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) ElapsedMs() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.elapsedMs
}

func (o *Orchestrator) transitionLocked(to State) error {
	if !canTransition(o.state, to) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, o.state, to)
	}
	o.state = to
	return nil
}

// finish settles the orchestrator in its terminal state. The next Start
// resets it to idle.
func (o *Orchestrator) finish(terminal State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.settleLocked(terminal)
	o.cancel = nil
}

// settleLocked routes cleanup writes through the transition table. A move the
// table does not know is logged and the state forced so the recorder cannot
// wedge mid-teardown.
func (o *Orchestrator) settleLocked(to State) {
	if err := o.transitionLocked(to); err != nil {
		o.logger.Warn(context.Background(), "unexpected recorder state during settle", "error", err)
		o.state = to
	}
}

func (o *Orchestrator) maxDurationMsLocked() int64 {
	seconds := o.cfg.MaxVideoDurationSeconds
	if seconds < minDurationSeconds {
		seconds = minDurationSeconds
	}
	return int64(seconds) * 1000
}

func (o *Orchestrator) emitElapsed(elapsedMs int64) {
	if o.onElapsed != nil {
		o.onElapsed(elapsedMs)
	}
}

func (o *Orchestrator) emitCountdown(remaining int) {
	if o.onCountdown != nil {
		o.onCountdown(remaining)
	}
}

package recorder

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/goto/spotlight/core/capture"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	mu        sync.Mutex
	started   bool
	stopped   bool
	hasCamera bool
	startErr  error
}

func (e *fakeEngine) Start(ctx context.Context, opts capture.StartOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.startErr != nil {
		return e.startErr
	}
	e.started = true
	return nil
}

func (e *fakeEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	return nil
}

func (e *fakeEngine) HasCamera() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasCamera
}

type fakeEncoder struct {
	mu       sync.Mutex
	data     []byte
	mimeType string
	closeErr error
	paused   int
	resumed  int
	closed   bool
}

func (e *fakeEncoder) WriteFrame(frame image.Image) error { return nil }
func (e *fakeEncoder) WriteSamples(samples []byte) error  { return nil }

func (e *fakeEncoder) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused++
}

func (e *fakeEncoder) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resumed++
}

func (e *fakeEncoder) Close() ([]byte, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return e.data, e.mimeType, e.closeErr
}

type fakeUploader struct {
	mu    sync.Mutex
	url   string
	err   error
	calls int
}

func (u *fakeUploader) Upload(ctx context.Context, blob []byte, mimeType string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

type fakeSessions struct {
	mu          sync.Mutex
	session     *domain.Session
	createErr   error
	createCalls int
	recordings  []*domain.Recording
	appended    [][]*domain.Annotation
}

func (s *fakeSessions) Create(ctx context.Context, cfg domain.FeedbackConfig, postID string, sessionType domain.SessionType, recording *domain.Recording, actor domain.Actor) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	s.recordings = append(s.recordings, recording)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.session, nil
}

func (s *fakeSessions) AppendAnnotations(ctx context.Context, sessionID string, events []*domain.Annotation, actor domain.Actor) ([]*domain.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appended = append(s.appended, events)
	return events, nil
}

type staticSource struct{}

func (staticSource) CurrentFrame() image.Image { return image.NewRGBA(image.Rect(0, 0, 10, 10)) }

func newTestOrchestrator(engine *fakeEngine, encoder *fakeEncoder, uploader *fakeUploader, sessions *fakeSessions) *Orchestrator {
	return NewOrchestrator(OrchestratorDeps{
		Engine:            engine,
		Encoder:           encoder,
		Uploader:          uploader,
		Sessions:          sessions,
		Logger:            log.NewNoop(),
		TickInterval:      2 * time.Millisecond,
		CountdownInterval: 2 * time.Millisecond,
	})
}

func startInput() StartInput {
	return StartInput{
		PostID: "post-1",
		Actor:  domain.Actor{ID: "reviewer@example.com"},
		Config: domain.FeedbackConfig{Enabled: true},
		Source: staticSource{},
	}
}

func waitForState(t *testing.T, o *Orchestrator, want State) {
	t.Helper()
	require.Eventually(t, func() bool { return o.State() == want }, time.Second, time.Millisecond)
}

func TestTransitions(t *testing.T) {
	allowed := []struct{ from, to State }{
		{StateIdle, StateCountingDown},
		{StateCountingDown, StateRecording},
		{StateCountingDown, StateStopping},
		{StateCountingDown, StateIdle},
		{StateRecording, StatePaused},
		{StatePaused, StateRecording},
		{StateRecording, StateStopping},
		{StatePaused, StateStopping},
		{StateStopping, StateSavingDraft},
		{StateStopping, StateDiscarded},
		{StateStopping, StateError},
		{StateSavingDraft, StateIdle},
		{StateDiscarded, StateIdle},
		{StateError, StateIdle},
	}
	for _, tc := range allowed {
		assert.True(t, canTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct{ from, to State }{
		{StateIdle, StateRecording},
		{StateRecording, StateIdle},
		{StatePaused, StateIdle},
		{StateCountingDown, StatePaused},
		{StateStopping, StateRecording},
		{StateDiscarded, StateRecording},
	}
	for _, tc := range forbidden {
		assert.False(t, canTransition(tc.from, tc.to), "%s -> %s should be forbidden", tc.from, tc.to)
	}
}

func TestRecordAndSave(t *testing.T) {
	engine := &fakeEngine{hasCamera: true}
	encoder := &fakeEncoder{data: []byte("encoded-bytes"), mimeType: "video/webm"}
	uploader := &fakeUploader{url: "https://cdn/recording.webm"}
	sessions := &fakeSessions{session: &domain.Session{ID: "session-1"}}
	o := newTestOrchestrator(engine, encoder, uploader, sessions)

	var countdowns []int
	var mu sync.Mutex
	in := startInput()
	in.OnCountdown = func(remaining int) {
		mu.Lock()
		countdowns = append(countdowns, remaining)
		mu.Unlock()
	}
	require.NoError(t, o.Start(context.Background(), in))
	waitForState(t, o, StateRecording)

	mu.Lock()
	assert.Equal(t, []int{3, 2, 1}, countdowns)
	mu.Unlock()

	require.NoError(t, o.Annotate(domain.AnnotationToolPen, "frame-1", map[string]interface{}{"color": "#ff0000"}))

	require.Eventually(t, func() bool { return o.ElapsedMs() > 0 }, time.Second, time.Millisecond)

	saved, err := o.Stop(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "session-1", saved.ID)

	assert.True(t, engine.stopped)
	assert.True(t, encoder.closed)
	assert.Equal(t, 1, uploader.calls)

	require.Len(t, sessions.recordings, 1)
	rec := sessions.recordings[0]
	assert.Equal(t, "https://cdn/recording.webm", rec.VideoURL)
	assert.Equal(t, "video/webm", rec.MimeType)
	assert.Equal(t, int64(len("encoded-bytes")), rec.Size)
	assert.True(t, rec.HasCamera)
	assert.Positive(t, rec.DurationMs)

	require.Len(t, sessions.appended, 1)
	assert.Equal(t, domain.AnnotationToolPen, sessions.appended[0][0].Tool)

	assert.Equal(t, StateIdle, o.State())
}

func TestDiscard(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: []byte("encoded-bytes"), mimeType: "video/webm"}
	uploader := &fakeUploader{}
	sessions := &fakeSessions{}
	o := newTestOrchestrator(engine, encoder, uploader, sessions)

	require.NoError(t, o.Start(context.Background(), startInput()))
	waitForState(t, o, StateRecording)

	o.Discard()
	saved, err := o.Stop(context.Background())
	require.NoError(t, err)
	assert.Nil(t, saved)

	assert.Zero(t, uploader.calls)
	assert.Zero(t, sessions.createCalls)
	assert.True(t, engine.stopped)
	assert.Equal(t, StateDiscarded, o.State())

	// a new recording can start after a discard
	require.NoError(t, o.Start(context.Background(), startInput()))
	waitForState(t, o, StateRecording)
	o.Discard()
	_, err = o.Stop(context.Background())
	require.NoError(t, err)
}

func TestStopDuringCountdownDiscards(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: []byte("x")}
	uploader := &fakeUploader{}
	sessions := &fakeSessions{}
	o := NewOrchestrator(OrchestratorDeps{
		Engine:            engine,
		Encoder:           encoder,
		Uploader:          uploader,
		Sessions:          sessions,
		Logger:            log.NewNoop(),
		TickInterval:      2 * time.Millisecond,
		CountdownInterval: time.Minute, // hold in countdown
	})

	require.NoError(t, o.Start(context.Background(), startInput()))
	require.Equal(t, StateCountingDown, o.State())

	saved, err := o.Stop(context.Background())
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Zero(t, uploader.calls)
	assert.Equal(t, StateDiscarded, o.State())
}

func TestPauseFreezesElapsed(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: []byte("x"), mimeType: "video/webm"}
	o := newTestOrchestrator(engine, encoder, &fakeUploader{url: "u"}, &fakeSessions{session: &domain.Session{ID: "s"}})

	require.NoError(t, o.Start(context.Background(), startInput()))
	waitForState(t, o, StateRecording)
	require.Eventually(t, func() bool { return o.ElapsedMs() > 0 }, time.Second, time.Millisecond)

	require.NoError(t, o.Pause())
	frozen := o.ElapsedMs()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, o.ElapsedMs())
	assert.Equal(t, 1, encoder.paused)

	require.NoError(t, o.Resume())
	require.Eventually(t, func() bool { return o.ElapsedMs() > frozen }, time.Second, time.Millisecond)
	assert.Equal(t, 1, encoder.resumed)

	_, err := o.Stop(context.Background())
	require.NoError(t, err)
}

func TestPauseOutsideRecording(t *testing.T) {
	o := newTestOrchestrator(&fakeEngine{}, &fakeEncoder{}, &fakeUploader{}, &fakeSessions{})
	require.ErrorIs(t, o.Pause(), ErrInvalidTransition)
	require.ErrorIs(t, o.Resume(), ErrInvalidTransition)
	_, err := o.Stop(context.Background())
	require.ErrorIs(t, err, ErrNotRecording)
}

func TestPauseAndResumeDuringCountdownRejected(t *testing.T) {
	o := NewOrchestrator(OrchestratorDeps{
		Engine:            &fakeEngine{},
		Encoder:           &fakeEncoder{data: []byte("x")},
		Uploader:          &fakeUploader{},
		Sessions:          &fakeSessions{},
		Logger:            log.NewNoop(),
		TickInterval:      2 * time.Millisecond,
		CountdownInterval: time.Minute, // hold in countdown
	})

	require.NoError(t, o.Start(context.Background(), startInput()))
	require.Equal(t, StateCountingDown, o.State())

	require.ErrorIs(t, o.Pause(), ErrInvalidTransition)
	require.ErrorIs(t, o.Resume(), ErrInvalidTransition)
	require.Equal(t, StateCountingDown, o.State())

	_, err := o.Stop(context.Background())
	require.NoError(t, err)
}

func TestTimelineSwapsAcrossRecordings(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: []byte("x"), mimeType: "video/webm"}
	o := newTestOrchestrator(engine, encoder, &fakeUploader{url: "u"}, &fakeSessions{session: &domain.Session{ID: "s"}})

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = o.Timeline()
			}
		}
	}()

	first := o.Timeline()
	require.NoError(t, o.Start(context.Background(), startInput()))
	waitForState(t, o, StateRecording)
	assert.NotSame(t, first, o.Timeline())

	o.Discard()
	_, err := o.Stop(context.Background())
	require.NoError(t, err)

	close(stop)
	wg.Wait()
}

func TestAutoStopAtMaxDuration(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: []byte("x"), mimeType: "video/webm"}
	uploader := &fakeUploader{url: "https://cdn/r.webm"}
	sessions := &fakeSessions{session: &domain.Session{ID: "session-1"}}
	o := newTestOrchestrator(engine, encoder, uploader, sessions)

	outcome := make(chan *domain.Session, 1)
	in := startInput()
	in.OnAutoStop = func(saved *domain.Session, err error) {
		require.NoError(t, err)
		outcome <- saved
	}
	require.NoError(t, o.Start(context.Background(), in))
	waitForState(t, o, StateRecording)

	// fast-forward to just under the limit; the next tick crosses it
	o.mu.Lock()
	o.elapsedMs = o.maxDurationMsLocked() - 1
	o.mu.Unlock()

	select {
	case saved := <-outcome:
		require.NotNil(t, saved)
		assert.Equal(t, "session-1", saved.ID)
	case <-time.After(time.Second):
		t.Fatal("auto-stop did not fire")
	}
	assert.Equal(t, 1, uploader.calls)
}

func TestOversizedRecordingRejected(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: make([]byte, 2048), mimeType: "video/webm"}
	uploader := &fakeUploader{}
	sessions := &fakeSessions{}
	o := newTestOrchestrator(engine, encoder, uploader, sessions)

	in := startInput()
	in.Config.MaxVideoSizeBytes = 1024
	require.NoError(t, o.Start(context.Background(), in))
	waitForState(t, o, StateRecording)

	_, err := o.Stop(context.Background())
	require.ErrorIs(t, err, ErrRecordingTooLarge)
	assert.Zero(t, uploader.calls)
	assert.True(t, engine.stopped)
	assert.Equal(t, StateError, o.State())
}

func TestUploadFailureReleasesResources(t *testing.T) {
	engine := &fakeEngine{}
	encoder := &fakeEncoder{data: []byte("x"), mimeType: "video/webm"}
	uploader := &fakeUploader{err: errors.New("network down")}
	sessions := &fakeSessions{}
	o := newTestOrchestrator(engine, encoder, uploader, sessions)

	require.NoError(t, o.Start(context.Background(), startInput()))
	waitForState(t, o, StateRecording)

	_, err := o.Stop(context.Background())
	require.Error(t, err)
	assert.True(t, engine.stopped)
	assert.True(t, encoder.closed)
	assert.Zero(t, sessions.createCalls)
	assert.Equal(t, StateError, o.State())
}

func TestEngineStartFailureResetsToIdle(t *testing.T) {
	engine := &fakeEngine{startErr: errors.New("no devices")}
	o := newTestOrchestrator(engine, &fakeEncoder{}, &fakeUploader{}, &fakeSessions{})

	err := o.Start(context.Background(), startInput())
	require.Error(t, err)
	assert.Equal(t, StateIdle, o.State())
}

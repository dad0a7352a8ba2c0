package capture

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/goto/spotlight/pkg/log"
)

const (
	// FrameRate is the compositor's fixed output rate.
	FrameRate = 30

	// CameraMaxWidth and CameraMaxHeight cap the camera acquisition so the
	// picture-in-picture never costs more pixels than it can show.
	CameraMaxWidth  = 640
	CameraMaxHeight = 360
)

// Devices acquires media hardware. Implementations wrap whatever device layer
// the host platform provides.
type Devices interface {
	OpenMicrophone(ctx context.Context) (AudioTrack, error)
	OpenCamera(ctx context.Context, maxWidth, maxHeight int) (VideoTrack, error)
}

// VideoTrack is a live stream of camera frames. Frame returns the most recent
// frame, or nil before the first one arrives.
type VideoTrack interface {
	Frame() image.Image
	Close() error
}

// AudioTrack is a live stream of encoded microphone samples. The channel
// closes when the track is closed.
type AudioTrack interface {
	Samples() <-chan []byte
	Close() error
}

// FrameSource supplies the image being reviewed at each compositor tick: the
// active frame with the in-progress annotations already painted.
type FrameSource interface {
	CurrentFrame() image.Image
}

// Sink receives composited output frames and microphone samples.
type Sink interface {
	WriteFrame(frame image.Image) error
	WriteSamples(samples []byte) error
}

type StartOptions struct {
	Source FrameSource
	Sink   Sink

	// WithCamera requests a camera picture-in-picture; acquisition failure
	// degrades to screen-only capture instead of failing the start.
	WithCamera bool

	// OnCameraStream reports the live camera track so the UI can show a self
	// view. Called only when a camera was acquired.
	OnCameraStream func(VideoTrack)
}

// Engine owns device acquisition and the fixed-rate compositing loop feeding
// a recording sink.
type Engine struct {
	devices       Devices
	logger        log.Logger
	frameInterval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mic     AudioTrack
	camera  VideoTrack
}

type EngineDeps struct {
	Devices Devices
	Logger  log.Logger

	// FrameInterval overrides the 30fps default. Used by tests.
	FrameInterval time.Duration
}

func NewEngine(deps EngineDeps) *Engine {
	e := &Engine{
		devices:       deps.Devices,
		logger:        deps.Logger,
		frameInterval: deps.FrameInterval,
	}
	if e.logger == nil {
		e.logger = log.NewNoop()
	}
	if e.frameInterval <= 0 {
		e.frameInterval = time.Second / FrameRate
	}
	return e
}

// Start acquires devices and runs the compositor loop until Stop. The
// microphone is required; the camera is attempted only when requested and its
// absence is not an error.
func (e *Engine) Start(ctx context.Context, opts StartOptions) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return ErrAlreadyStarted
	}

	mic, err := e.devices.OpenMicrophone(ctx)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNoMicrophone, err)
	}
	e.mic = mic

	var camera VideoTrack
	if opts.WithCamera {
		camera, err = e.devices.OpenCamera(ctx, CameraMaxWidth, CameraMaxHeight)
		if err != nil {
			e.logger.Warn(ctx, "camera unavailable, capturing without picture-in-picture", "error", err)
			camera = nil
		} else {
			e.camera = camera
		}
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.running = true

	e.wg.Add(2)
	go e.compositeLoop(loopCtx, opts.Source, opts.Sink)
	go e.audioLoop(loopCtx, opts.Sink)
	e.mu.Unlock()

	// the callback may call back into the engine, so it runs outside the lock
	if camera != nil && opts.OnCameraStream != nil {
		opts.OnCameraStream(camera)
	}
	return nil
}

// HasCamera reports whether a camera track is live.
func (e *Engine) HasCamera() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.camera != nil
}

// Stop halts the loops and releases every acquired track. Safe to call on any
// path; releasing is unconditional once started.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return ErrNotStarted
	}
	cancel := e.cancel
	e.running = false
	e.mu.Unlock()

	cancel()
	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.camera != nil {
		if err := e.camera.Close(); err != nil {
			e.logger.Warn(context.Background(), "failed to close camera track", "error", err)
		}
		e.camera = nil
	}
	if e.mic != nil {
		if err := e.mic.Close(); err != nil {
			e.logger.Warn(context.Background(), "failed to close microphone track", "error", err)
		}
		e.mic = nil
	}
	return nil
}

func (e *Engine) compositeLoop(ctx context.Context, source FrameSource, sink Sink) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			src := source.CurrentFrame()
			if src == nil {
				continue
			}
			var cam image.Image
			e.mu.Lock()
			if e.camera != nil {
				cam = e.camera.Frame()
			}
			e.mu.Unlock()

			if err := sink.WriteFrame(Composite(src, cam)); err != nil {
				e.logger.Error(ctx, "failed to write composited frame", "error", err)
			}
		}
	}
}

func (e *Engine) audioLoop(ctx context.Context, sink Sink) {
	defer e.wg.Done()

	e.mu.Lock()
	mic := e.mic
	e.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return
		case samples, ok := <-mic.Samples():
			if !ok {
				return
			}
			if err := sink.WriteSamples(samples); err != nil {
				e.logger.Error(ctx, "failed to write audio samples", "error", err)
			}
		}
	}
}

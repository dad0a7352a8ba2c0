package capture_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/goto/spotlight/core/capture"
	"github.com/goto/spotlight/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoTrack struct {
	mu     sync.Mutex
	frame  image.Image
	closed bool
}

func (t *fakeVideoTrack) Frame() image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame
}

func (t *fakeVideoTrack) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

type fakeAudioTrack struct {
	samples chan []byte
	mu      sync.Mutex
	closed  bool
}

func newFakeAudioTrack() *fakeAudioTrack {
	return &fakeAudioTrack{samples: make(chan []byte, 8)}
}

func (t *fakeAudioTrack) Samples() <-chan []byte { return t.samples }

func (t *fakeAudioTrack) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.closed = true
		close(t.samples)
	}
	return nil
}

type fakeDevices struct {
	mic       *fakeAudioTrack
	camera    *fakeVideoTrack
	micErr    error
	cameraErr error

	cameraMaxW, cameraMaxH int
}

func (d *fakeDevices) OpenMicrophone(ctx context.Context) (capture.AudioTrack, error) {
	if d.micErr != nil {
		return nil, d.micErr
	}
	return d.mic, nil
}

func (d *fakeDevices) OpenCamera(ctx context.Context, maxWidth, maxHeight int) (capture.VideoTrack, error) {
	d.cameraMaxW, d.cameraMaxH = maxWidth, maxHeight
	if d.cameraErr != nil {
		return nil, d.cameraErr
	}
	return d.camera, nil
}

type fakeSink struct {
	mu      sync.Mutex
	frames  []image.Image
	samples [][]byte
}

func (s *fakeSink) WriteFrame(frame image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frame)
	return nil
}

func (s *fakeSink) WriteSamples(samples []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, samples)
	return nil
}

func (s *fakeSink) frameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

func (s *fakeSink) sampleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples)
}

type staticSource struct{ frame image.Image }

func (s staticSource) CurrentFrame() image.Image { return s.frame }

func uniformImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEngineStart(t *testing.T) {
	t.Run("fails without a microphone", func(t *testing.T) {
		devices := &fakeDevices{micErr: errors.New("permission denied")}
		engine := capture.NewEngine(capture.EngineDeps{Devices: devices, Logger: log.NewNoop()})

		err := engine.Start(context.Background(), capture.StartOptions{
			Source: staticSource{frame: uniformImage(100, 100, color.White)},
			Sink:   &fakeSink{},
		})
		require.ErrorIs(t, err, capture.ErrNoMicrophone)
	})

	t.Run("camera failure degrades to screen-only capture", func(t *testing.T) {
		devices := &fakeDevices{mic: newFakeAudioTrack(), cameraErr: errors.New("no camera")}
		engine := capture.NewEngine(capture.EngineDeps{Devices: devices, Logger: log.NewNoop()})

		var reported bool
		err := engine.Start(context.Background(), capture.StartOptions{
			Source:         staticSource{frame: uniformImage(100, 100, color.White)},
			Sink:           &fakeSink{},
			WithCamera:     true,
			OnCameraStream: func(capture.VideoTrack) { reported = true },
		})
		require.NoError(t, err)
		defer engine.Stop()

		assert.False(t, engine.HasCamera())
		assert.False(t, reported)
	})

	t.Run("camera acquisition is capped and reported", func(t *testing.T) {
		devices := &fakeDevices{mic: newFakeAudioTrack(), camera: &fakeVideoTrack{}}
		engine := capture.NewEngine(capture.EngineDeps{Devices: devices, Logger: log.NewNoop()})

		var reported capture.VideoTrack
		err := engine.Start(context.Background(), capture.StartOptions{
			Source:         staticSource{frame: uniformImage(100, 100, color.White)},
			Sink:           &fakeSink{},
			WithCamera:     true,
			OnCameraStream: func(track capture.VideoTrack) { reported = track },
		})
		require.NoError(t, err)
		defer engine.Stop()

		assert.Equal(t, capture.CameraMaxWidth, devices.cameraMaxW)
		assert.Equal(t, capture.CameraMaxHeight, devices.cameraMaxH)
		assert.True(t, engine.HasCamera())
		assert.NotNil(t, reported)
	})

	t.Run("camera stream callback can call back into the engine", func(t *testing.T) {
		devices := &fakeDevices{mic: newFakeAudioTrack(), camera: &fakeVideoTrack{}}
		engine := capture.NewEngine(capture.EngineDeps{Devices: devices, Logger: log.NewNoop()})

		var sawCamera bool
		err := engine.Start(context.Background(), capture.StartOptions{
			Source:         staticSource{frame: uniformImage(100, 100, color.White)},
			Sink:           &fakeSink{},
			WithCamera:     true,
			OnCameraStream: func(capture.VideoTrack) { sawCamera = engine.HasCamera() },
		})
		require.NoError(t, err)
		defer engine.Stop()

		assert.True(t, sawCamera)
	})

	t.Run("double start is rejected", func(t *testing.T) {
		devices := &fakeDevices{mic: newFakeAudioTrack()}
		engine := capture.NewEngine(capture.EngineDeps{Devices: devices, Logger: log.NewNoop()})

		opts := capture.StartOptions{
			Source: staticSource{frame: uniformImage(100, 100, color.White)},
			Sink:   &fakeSink{},
		}
		require.NoError(t, engine.Start(context.Background(), opts))
		defer engine.Stop()

		err := engine.Start(context.Background(), opts)
		require.ErrorIs(t, err, capture.ErrAlreadyStarted)
	})
}

func TestEngineLoop(t *testing.T) {
	t.Run("pushes composited frames and audio samples to the sink", func(t *testing.T) {
		mic := newFakeAudioTrack()
		devices := &fakeDevices{mic: mic}
		engine := capture.NewEngine(capture.EngineDeps{
			Devices:       devices,
			Logger:        log.NewNoop(),
			FrameInterval: time.Millisecond,
		})

		sink := &fakeSink{}
		require.NoError(t, engine.Start(context.Background(), capture.StartOptions{
			Source: staticSource{frame: uniformImage(320, 240, color.White)},
			Sink:   sink,
		}))

		mic.samples <- []byte{1, 2, 3}
		mic.samples <- []byte{4, 5, 6}

		require.Eventually(t, func() bool {
			return sink.frameCount() >= 3 && sink.sampleCount() == 2
		}, time.Second, 5*time.Millisecond)

		require.NoError(t, engine.Stop())
	})

	t.Run("stop releases every track on every path", func(t *testing.T) {
		mic := newFakeAudioTrack()
		camera := &fakeVideoTrack{frame: uniformImage(64, 36, color.Black)}
		devices := &fakeDevices{mic: mic, camera: camera}
		engine := capture.NewEngine(capture.EngineDeps{
			Devices:       devices,
			Logger:        log.NewNoop(),
			FrameInterval: time.Millisecond,
		})

		require.NoError(t, engine.Start(context.Background(), capture.StartOptions{
			Source:     staticSource{frame: uniformImage(320, 240, color.White)},
			Sink:       &fakeSink{},
			WithCamera: true,
		}))
		require.NoError(t, engine.Stop())

		assert.True(t, mic.closed)
		assert.True(t, camera.closed)

		err := engine.Stop()
		require.ErrorIs(t, err, capture.ErrNotStarted)
	})
}

func TestComposite(t *testing.T) {
	t.Run("caps output width and keeps aspect ratio", func(t *testing.T) {
		src := uniformImage(3840, 2160, color.White)
		out := capture.Composite(src, nil)
		assert.Equal(t, capture.MaxOutputWidth, out.Bounds().Dx())
		assert.Equal(t, 1080, out.Bounds().Dy())
	})

	t.Run("leaves smaller sources at native size", func(t *testing.T) {
		src := uniformImage(1280, 720, color.White)
		out := capture.Composite(src, nil)
		assert.Equal(t, 1280, out.Bounds().Dx())
		assert.Equal(t, 720, out.Bounds().Dy())
	})

	t.Run("overlays the camera bottom-right at 22 percent width", func(t *testing.T) {
		src := uniformImage(1000, 600, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		cam := uniformImage(640, 360, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
		out := capture.Composite(src, cam)

		// pip is 220 wide, 123 tall, 16px margin from the bottom-right corner
		r, g, b, _ := out.At(999-16-110, 599-16-60).RGBA()
		assert.NotZero(t, r)
		assert.Zero(t, g)
		assert.Zero(t, b)

		// top-left stays the plain source
		r, g, b, _ = out.At(10, 10).RGBA()
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
	})

	t.Run("ignores an empty camera frame", func(t *testing.T) {
		src := uniformImage(100, 100, color.White)
		out := capture.Composite(src, image.NewRGBA(image.Rect(0, 0, 0, 0)))
		assert.Equal(t, 100, out.Bounds().Dx())
	})
}

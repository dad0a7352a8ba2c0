package domain

// Hard ceilings applied to workspace-configured feedback limits regardless of
// configuration. A misconfigured workspace can lower limits, never raise them
// past these.
const (
	MaxVideoDurationCeilingSeconds = 3600
	MaxVideoSizeCeilingBytes       = int64(1)<<31 - 1
	MaxAudioDurationCeilingSeconds = 300
	MaxWatchTimeDeltaMs            = 120000
)

// FeedbackConfig is the workspace-level visual feedback configuration. It is
// resolved once per operation and passed explicitly into service calls rather
// than read from ambient global state.
type FeedbackConfig struct {
	Enabled                 bool  `mapstructure:"enabled" json:"enabled" yaml:"enabled" default:"true"`
	MaxVideoDurationSeconds int   `mapstructure:"max_video_duration_seconds" json:"max_video_duration_seconds" yaml:"max_video_duration_seconds" default:"300"`
	MaxVideoSizeBytes       int64 `mapstructure:"max_video_size_bytes" json:"max_video_size_bytes" yaml:"max_video_size_bytes" default:"1073741824"`
	MaxAudioDurationSeconds int   `mapstructure:"max_audio_duration_seconds" json:"max_audio_duration_seconds" yaml:"max_audio_duration_seconds" default:"30"`
}

// Clamped returns a copy with every limit bounded by the absolute ceilings.
// Zero or negative configured values fall back to the defaults.
func (c FeedbackConfig) Clamped() FeedbackConfig {
	out := c
	if out.MaxVideoDurationSeconds <= 0 {
		out.MaxVideoDurationSeconds = 300
	}
	if out.MaxVideoDurationSeconds > MaxVideoDurationCeilingSeconds {
		out.MaxVideoDurationSeconds = MaxVideoDurationCeilingSeconds
	}
	if out.MaxVideoSizeBytes <= 0 {
		out.MaxVideoSizeBytes = 1 << 30
	}
	if out.MaxVideoSizeBytes > MaxVideoSizeCeilingBytes {
		out.MaxVideoSizeBytes = MaxVideoSizeCeilingBytes
	}
	if out.MaxAudioDurationSeconds <= 0 {
		out.MaxAudioDurationSeconds = 30
	}
	if out.MaxAudioDurationSeconds > MaxAudioDurationCeilingSeconds {
		out.MaxAudioDurationSeconds = MaxAudioDurationCeilingSeconds
	}
	return out
}

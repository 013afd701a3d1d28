package transcription

// Config captures runtime settings for recognition runs.
type Config struct {
	// Binary launches the WhisperX CLI (normally "uvx").
	Binary string
	// Model is the whisper model to load (e.g. "base", "large-v3").
	Model string
	// Language is the 2-letter language code, empty for autodetect.
	Language string
}

// Recognition backend constants.
const (
	DefaultBinary = "uvx"
	DefaultModel  = "base"

	batchSize     = "4"
	outputFormat  = "json"
	device        = "cpu"
	computeType   = "float32"
	pypiIndexURL  = "https://pypi.org/simple"
	whisperxEntry = "whisperx"
)

package whisper_test

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"testing"
	"time"

	"github.com/glasform/glasform/pkg/speech"
	"github.com/glasform/glasform/pkg/speech/whisper"
)

// testModelPath returns the path to a whisper model for integration tests.
// It reads from the WHISPER_MODEL_PATH environment variable. If unset the
// test is skipped.
func testModelPath(t *testing.T) string {
	t.Helper()
	p := os.Getenv("WHISPER_MODEL_PATH")
	if p == "" {
		t.Skip("WHISPER_MODEL_PATH not set; skipping whisper test")
	}
	return p
}

// makeSilencePCM builds n samples of silent 16-bit PCM.
func makeSilencePCM(n int) []byte {
	return make([]byte, n*2)
}

// makeSpeechPCM builds n samples of a 440 Hz sine wave loud enough to pass
// the silence detector.
func makeSpeechPCM(n int) []byte {
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		v := int16(12000 * math.Sin(2*math.Pi*440*float64(i)/16000))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}
	return out
}

func TestNewEmptyPathReturnsError(t *testing.T) {
	if _, err := whisper.New(""); err == nil {
		t.Fatal("expected error for empty model path, got nil")
	}
}

func TestNewInvalidPathReturnsError(t *testing.T) {
	if _, err := whisper.New("/nonexistent/path/to/model.bin"); err == nil {
		t.Fatal("expected error for invalid model path, got nil")
	}
}

func TestListenReturnsReadySession(t *testing.T) {
	modelPath := testModelPath(t)
	p, err := whisper.New(modelPath,
		whisper.WithLanguage("hr"),
		whisper.WithSampleRate(16000),
		whisper.WithSilenceThresholdMs(300),
		whisper.WithMaxBufferMs(5000),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	sess, err := p.Listen(context.Background(), speech.Config{Language: "hr-HR"})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer sess.Close()

	if sess.Utterances() == nil {
		t.Error("Utterances() returned nil channel")
	}
	if sess.Errors() == nil {
		t.Error("Errors() returned nil channel")
	}
}

func TestListenCancelledContextReturnsError(t *testing.T) {
	modelPath := testModelPath(t)
	p, err := whisper.New(modelPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Listen(ctx, speech.Config{}); err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}

func TestSilenceAloneDoesNotTriggerUtterance(t *testing.T) {
	modelPath := testModelPath(t)
	p, err := whisper.New(modelPath, whisper.WithSilenceThresholdMs(50))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	sess, err := p.Listen(context.Background(), speech.Config{})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	whisperSess := sess.(*whisper.Session)
	_ = whisperSess.SendAudio(makeSilencePCM(16000))
	time.Sleep(150 * time.Millisecond)
	sess.Close()

	select {
	case u, ok := <-sess.Utterances():
		if ok {
			t.Errorf("unexpected utterance for silence-only audio: %+v", u)
		}
	default:
	}
}

func TestCloseIdempotentAndClosesChannels(t *testing.T) {
	modelPath := testModelPath(t)
	p, err := whisper.New(modelPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	sess, err := p.Listen(context.Background(), speech.Config{})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	if err := sess.Close(); err != nil {
		t.Fatalf("first Close() returned error: %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("second Close() returned error: %v", err)
	}

	select {
	case _, open := <-sess.Utterances():
		if open {
			t.Error("Utterances channel should be closed after Close()")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Utterances channel to close")
	}
}

func TestSendAudioAfterCloseReturnsError(t *testing.T) {
	modelPath := testModelPath(t)
	p, err := whisper.New(modelPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	sess, err := p.Listen(context.Background(), speech.Config{})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	sess.Close()

	whisperSess := sess.(*whisper.Session)
	if err := whisperSess.SendAudio(makeSpeechPCM(100)); err == nil {
		t.Fatal("SendAudio after Close() should return an error")
	}
}

// Package google provides a Google Cloud Speech-to-Text input adapter.
package google

import (
	"context"
	"sync"

	speechapi "cloud.google.com/go/speech/apiv1"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"

	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/speech"
)

// Input implements speech.Input using Google Cloud streaming
// recognition. Each listening window is one single-utterance streaming
// session; the first final result is delivered as the transcript.
// Audio is supplied by the caller through SendAudio.
type Input struct {
	client *speechapi.Client
	lang   string
	rate   int32

	mu        sync.Mutex
	stream    speechpb.Speech_StreamingRecognizeClient
	listening bool
}

// New creates a Google STT input for the given locale.
// Requires GOOGLE_APPLICATION_CREDENTIALS to be set.
func New(ctx context.Context, code locale.Code, sampleRateHz int) (*Input, error) {
	c, err := speechapi.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Input{client: c, lang: string(code), rate: int32(sampleRateHz)}, nil
}

// Start opens a streaming recognition session configured for a single
// utterance. No-op when a window is already open.
func (i *Input) Start(ctx context.Context, cb speech.Callback) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.listening {
		return nil
	}

	stream, err := i.client.StreamingRecognize(ctx)
	if err != nil {
		return err
	}
	if err := stream.Send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: &speechpb.StreamingRecognitionConfig{
				Config: &speechpb.RecognitionConfig{
					Encoding:        speechpb.RecognitionConfig_LINEAR16,
					SampleRateHertz: i.rate,
					LanguageCode:    i.lang,
				},
				SingleUtterance: true,
			},
		},
	}); err != nil {
		return err
	}

	i.stream = stream
	i.listening = true
	go i.recv(stream, cb)
	return nil
}

// recv waits for the first final result and delivers it.
func (i *Input) recv(stream speechpb.Speech_StreamingRecognizeClient, cb speech.Callback) {
	for {
		resp, err := stream.Recv()
		if err != nil {
			if i.closeWindow(stream) {
				cb.OnError(err)
			}
			return
		}
		for _, r := range resp.Results {
			if !r.IsFinal || len(r.Alternatives) == 0 {
				continue
			}
			if i.closeWindow(stream) {
				cb.OnTranscript(r.Alternatives[0].Transcript)
			}
			return
		}
	}
}

// closeWindow marks the window closed if this stream still owns it.
// Returns false when the window was already stopped or replaced, in
// which case the result is discarded.
func (i *Input) closeWindow(stream speechpb.Speech_StreamingRecognizeClient) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.listening || i.stream != stream {
		return false
	}
	i.listening = false
	i.stream = nil
	return true
}

// Stop abandons the current window.
func (i *Input) Stop() {
	i.mu.Lock()
	stream := i.stream
	i.listening = false
	i.stream = nil
	i.mu.Unlock()
	if stream != nil {
		_ = stream.CloseSend()
	}
}

// Listening reports whether a window is open.
func (i *Input) Listening() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.listening
}

// SendAudio forwards audio bytes into the current streaming session.
func (i *Input) SendAudio(ctx context.Context, audio []byte) error {
	i.mu.Lock()
	stream := i.stream
	i.mu.Unlock()
	if stream == nil {
		return nil
	}
	return stream.Send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_AudioContent{
			AudioContent: audio,
		},
	})
}

// Close releases the underlying client.
func (i *Input) Close() error {
	i.Stop()
	return i.client.Close()
}

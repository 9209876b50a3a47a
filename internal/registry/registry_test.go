package registry

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/gptline/gptline/internal/memory"
	"github.com/gptline/gptline/internal/openai"
	"github.com/gptline/gptline/internal/storage"
)

type stubModel struct{ name string }

func (s *stubModel) CheckTokenValid(context.Context) error { return nil }

func (s *stubModel) ChatCompletions(context.Context, []memory.Message, string) (gopenai.ChatCompletionResponse, error) {
	return gopenai.ChatCompletionResponse{}, nil
}

func (s *stubModel) ImageGenerations(context.Context, string) (gopenai.ImageResponse, error) {
	return gopenai.ImageResponse{}, nil
}

func (s *stubModel) AudioTranscriptions(context.Context, string, string) (gopenai.AudioResponse, error) {
	return gopenai.AudioResponse{}, nil
}

func TestRegistry(t *testing.T) {
	r := New()

	if _, ok := r.Get("U1"); ok {
		t.Fatal("Get() on empty registry reported a model")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}

	first := &stubModel{name: "first"}
	r.Set("U1", first)
	if m, ok := r.Get("U1"); !ok || m != first {
		t.Fatalf("Get() = %v, %v after Set", m, ok)
	}

	second := &stubModel{name: "second"}
	r.Set("U1", second)
	if m, _ := r.Get("U1"); m != second {
		t.Error("Set() did not replace the existing model")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRehydrate(t *testing.T) {
	ctx := context.Background()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "db.json"), slog.Default())
	if err := store.Save(ctx, map[string]string{"U1": "sk-one", "U2": "sk-two"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var keys []string
	newModel := func(apiKey string) openai.Model {
		keys = append(keys, apiKey)
		return &stubModel{name: apiKey}
	}

	r := New()
	restored, err := r.Rehydrate(ctx, store, newModel)
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	if restored != 2 || r.Len() != 2 {
		t.Errorf("restored = %d, Len() = %d, want 2 and 2", restored, r.Len())
	}
	if len(keys) != 2 {
		t.Errorf("newModel called %d times, want 2", len(keys))
	}
	if _, ok := r.Get("U1"); !ok {
		t.Error("Get(U1) missing after rehydration")
	}
}

func TestRehydrateEmptyStore(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "db.json"), slog.Default())

	r := New()
	restored, err := r.Rehydrate(context.Background(), store, func(string) openai.Model {
		return &stubModel{}
	})
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	if restored != 0 || r.Len() != 0 {
		t.Errorf("restored = %d, Len() = %d, want 0 and 0", restored, r.Len())
	}
}

package rag

import (
	"context"
	"errors"
	"testing"

	"hyperlocal/repository"
)

type fakeEmbedder struct {
	vec      []float32
	err      error
	gotTexts []string
}

func (f *fakeEmbedder) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	f.gotTexts = append(f.gotTexts, texts...)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vec
	}
	return out, nil
}

type fakeVectorRepo struct {
	docs        []*repository.ChunkDoc
	searchErr   error
	gotLocality string
	gotTopK     uint64
	gotVector   []float32
}

func (f *fakeVectorRepo) EnsureCollection(context.Context, string, uint64) error {
	return nil
}

func (f *fakeVectorRepo) Upsert(context.Context, string, []*repository.ChunkDoc) error {
	return nil
}

func (f *fakeVectorRepo) Search(_ context.Context, locality string, vector []float32, topK uint64) ([]*repository.ChunkDoc, error) {
	f.gotLocality = locality
	f.gotVector = vector
	f.gotTopK = topK
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.docs, nil
}

func (f *fakeVectorRepo) Count(context.Context, string) (uint64, error) {
	return uint64(len(f.docs)), nil
}

func TestRetrieve(t *testing.T) {
	embedder := &fakeEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	repo := &fakeVectorRepo{docs: []*repository.ChunkDoc{
		{Content: "Residents cleared the canal bank on Sunday.", Score: 0.91},
		{Content: "The corporation resurfaced two inner roads.", Score: 0.88},
	}}
	r := NewRetriever(embedder, repo, 0)

	contextText, docs, err := r.Retrieve(context.Background(), "adyar", "civic works this week")
	if err != nil {
		t.Fatalf("Retrieve returned error: %v", err)
	}
	want := "Residents cleared the canal bank on Sunday.\n\nThe corporation resurfaced two inner roads."
	if contextText != want {
		t.Errorf("context = %q, want %q", contextText, want)
	}
	if len(docs) != 2 {
		t.Errorf("got %d docs, want 2", len(docs))
	}
	if repo.gotLocality != "adyar" {
		t.Errorf("searched locality %q, want %q", repo.gotLocality, "adyar")
	}
	if repo.gotTopK != 12 {
		t.Errorf("topK = %d, want default 12", repo.gotTopK)
	}
	if len(embedder.gotTexts) != 1 || embedder.gotTexts[0] != "civic works this week" {
		t.Errorf("embedded texts = %v, want the query once", embedder.gotTexts)
	}
}

func TestRetrieveEmptyCollection(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{vec: []float32{1}}, &fakeVectorRepo{}, 5)

	contextText, docs, err := r.Retrieve(context.Background(), "mylapore", "anything")
	if err != nil {
		t.Fatalf("Retrieve returned error: %v", err)
	}
	if contextText != "" {
		t.Errorf("context = %q, want empty", contextText)
	}
	if len(docs) != 0 {
		t.Errorf("got %d docs, want 0", len(docs))
	}
}

func TestRetrieveEmbedError(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{err: errors.New("quota exhausted")}, &fakeVectorRepo{}, 12)

	if _, _, err := r.Retrieve(context.Background(), "adyar", "anything"); err == nil {
		t.Fatal("expected error when embedding fails")
	}
}

func TestRetrieveSearchError(t *testing.T) {
	repo := &fakeVectorRepo{searchErr: errors.New("collection not found")}
	r := NewRetriever(&fakeEmbedder{vec: []float32{1}}, repo, 12)

	if _, _, err := r.Retrieve(context.Background(), "adyar", "anything"); err == nil {
		t.Fatal("expected error when search fails")
	}
}

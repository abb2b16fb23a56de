package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/test"
	. "github.com/baspana/backend/internal/usecase"
)

func TestImageUploadStoresHostedMetadata(t *testing.T) {
	images := &test.ImageRepositoryStub{}
	host := &test.ImageHostStub{}
	uc := NewImageUseCase(images, host)

	img, err := uc.Upload(context.Background(), 5, model.ObjectKindComplex, "front.jpg", strings.NewReader("binary"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if img.URL == "" || img.RemoteID == "" {
		t.Fatalf("metadata not filled: %+v", img)
	}
	if len(images.Created) != 1 {
		t.Fatalf("created = %d, want 1", len(images.Created))
	}
	if images.Created[0].ObjectID != 5 || images.Created[0].ObjectKind != model.ObjectKindComplex {
		t.Fatalf("unexpected row: %+v", images.Created[0])
	}
}

func TestImageDeleteRemovesRowAndRemote(t *testing.T) {
	images := &test.ImageRepositoryStub{
		Images: []model.Image{{ID: 3, RemoteID: "remote-3"}},
	}
	host := &test.ImageHostStub{}
	uc := NewImageUseCase(images, host)

	if err := uc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(images.Deleted) != 1 || images.Deleted[0] != 3 {
		t.Fatalf("row not deleted: %v", images.Deleted)
	}
	if len(host.Deleted) != 1 || host.Deleted[0] != "remote-3" {
		t.Fatalf("remote not deleted: %v", host.Deleted)
	}
}

package notesync_test

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/aretw0/notesync"
	"github.com/aretw0/notesync/pkg/core"
)

// memoryRepository keeps notes in a map, standing in for a remote repository.
type memoryRepository struct {
	docs map[string]string
}

func (m *memoryRepository) Initialize(ctx context.Context) error { return nil }

func (m *memoryRepository) Save(ctx context.Context, doc core.Document) error {
	m.docs[doc.ID] = doc.Content
	return nil
}

func (m *memoryRepository) Get(ctx context.Context, id string) (core.Document, error) {
	content, ok := m.docs[id]
	if !ok {
		return core.Document{}, core.ErrNotFound
	}
	return core.Document{ID: id, Content: content}, nil
}

func (m *memoryRepository) List(ctx context.Context) ([]core.Entry, error) {
	entries := make([]core.Entry, 0, len(m.docs))
	for id, content := range m.docs {
		entries = append(entries, core.Entry{ID: id, Name: id + ".txt", Size: int64(len(content))})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

// Example_basic saves a note and reads it back.
func Example_basic() {
	ctx := context.Background()
	svc, err := notesync.New(ctx, "", notesync.WithRepository(&memoryRepository{docs: map[string]string{}}))
	if err != nil {
		log.Fatal(err)
	}

	ctx = notesync.WithChangeReason(ctx, "docs(notes): add hello")
	if err := svc.SaveDocument(ctx, "hello", "Hello, notes."); err != nil {
		log.Fatal(err)
	}

	doc, err := svc.GetDocument(ctx, "hello")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %s\n", doc.ID, doc.Content)
	// Output:
	// hello: Hello, notes.
}

// Example_gitHub connects to a real repository. Credentials come from
// GITHUB_TOKEN, GITHUB_OWNER and GITHUB_REPO or a .env file.
func Example_gitHub() {
	cfg, err := notesync.LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	svc, err := notesync.New(ctx, "", notesync.WithGitHub(cfg), notesync.WithBranch("main"))
	if err != nil {
		log.Fatal(err)
	}

	entries, err := svc.ListDocuments(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		fmt.Println(e.ID, e.Size)
	}
}

// ExampleNewTypedService stores a struct as JSON note content.
func ExampleNewTypedService() {
	ctx := context.Background()
	svc, err := notesync.New(ctx, "", notesync.WithRepository(&memoryRepository{docs: map[string]string{}}))
	if err != nil {
		log.Fatal(err)
	}

	type Task struct {
		Title string `json:"title"`
		Done  bool   `json:"done"`
	}

	tasks := notesync.NewTypedService[Task](svc)
	err = tasks.Save(ctx, &notesync.DocumentModel[Task]{
		ID:   "tasks/groceries",
		Data: Task{Title: "Buy milk"},
	})
	if err != nil {
		log.Fatal(err)
	}

	doc, err := tasks.Get(ctx, "tasks/groceries")
	if err != nil {
		log.Fatal(err)
	}
	doc.Data.Done = true
	if err := doc.Save(ctx); err != nil {
		log.Fatal(err)
	}

	raw, _ := svc.GetDocument(ctx, "tasks/groceries")
	fmt.Println(strings.Contains(raw.Content, `"done": true`))
	// Output:
	// true
}

func ExampleFormatChangeReason() {
	fmt.Println(notesync.FormatChangeReason(notesync.CommitTypeDocs, "notes", "add todo", ""))
	// Output:
	// docs(notes): add todo
	//
	// Via: notesync
}

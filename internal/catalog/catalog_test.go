package catalog

import "testing"

func TestDefaultKeys(t *testing.T) {
	want := []string{"react", "laravel", "git", "devops", "codeigniter", "nodejs", "python", "mongodb", "sql", "tailwind", "docker"}
	got := Default.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLookupKnownKeys(t *testing.T) {
	for _, key := range Default.Keys() {
		t.Run(key, func(t *testing.T) {
			entry, ok := Default.Lookup(key)
			if !ok {
				t.Fatalf("Lookup(%q) reported unknown key", key)
			}
			if entry.Title == "" {
				t.Errorf("Lookup(%q) returned empty title", key)
			}
			for i, item := range entry.Items {
				if item.Name == "" {
					t.Errorf("item %d has empty name", i)
				}
				if item.Path == "" {
					t.Errorf("item %d has empty path", i)
				}
			}
		})
	}
}

func TestLookupUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "unknown", key: "cobol"},
		{name: "case mismatch", key: "Git"},
		{name: "trailing space", key: "git "},
		{name: "unicode", key: "gït"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := Default.Lookup(tt.key)
			if ok {
				t.Fatalf("Lookup(%q) reported known key", tt.key)
			}
			if entry.Title != NotFoundTitle {
				t.Errorf("Title = %q, want %q", entry.Title, NotFoundTitle)
			}
			if !entry.Empty() {
				t.Errorf("Items = %v, want none", entry.Items)
			}
		})
	}
}

func TestLookupGit(t *testing.T) {
	entry, _ := Default.Lookup("git")
	if len(entry.Items) != 11 {
		t.Fatalf("git items = %d, want 11", len(entry.Items))
	}
	first := entry.Items[0]
	if first.Name != "Git Commands" || first.Path != "/git-commands-reference" {
		t.Errorf("first git item = %+v", first)
	}
}

func TestLookupNodeJS(t *testing.T) {
	entry, _ := Default.Lookup("nodejs")
	if len(entry.Items) != 1 {
		t.Fatalf("nodejs items = %d, want 1", len(entry.Items))
	}
	item := entry.Items[0]
	if item.Name != "Coming Soon" || item.Path != "#" {
		t.Errorf("nodejs item = %+v", item)
	}
	if item.Available() {
		t.Error("placeholder item should not be available")
	}
}

func TestLookupPreservesOrder(t *testing.T) {
	r := NewRegistry(Category{Key: "k", Entry: CategoryEntry{
		Title: "K",
		Items: []ContentItem{{Name: "c", Path: "/c"}, {Name: "a", Path: "/a"}, {Name: "b", Path: "/b"}},
	}})

	entry, _ := r.Lookup("k")
	order := []string{"c", "a", "b"}
	for i, name := range order {
		if entry.Items[i].Name != name {
			t.Errorf("Items[%d] = %q, want %q", i, entry.Items[i].Name, name)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	entry, _ := Default.Lookup("react")
	entry.Items[0].Name = "mutated"
	entry.Title = "mutated"

	again, _ := Default.Lookup("react")
	if again.Title == "mutated" || again.Items[0].Name == "mutated" {
		t.Error("Lookup() leaked registry storage to the caller")
	}
}

func TestNewRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRegistry() should panic on duplicate keys")
		}
	}()
	NewRegistry(
		Category{Key: "a", Entry: CategoryEntry{Title: "A"}},
		Category{Key: "a", Entry: CategoryEntry{Title: "A again"}},
	)
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	entry, ok := r.Lookup("git")
	if ok || entry.Title != NotFoundTitle {
		t.Errorf("nil registry Lookup() = %+v, %v", entry, ok)
	}
	if r.Len() != 0 || r.Keys() != nil {
		t.Error("nil registry should be empty")
	}
}

package nav

import "testing"

func TestIsActive(t *testing.T) {
	tests := []struct {
		item    string
		current string
		want    bool
	}{
		{item: "/", current: "/", want: true},
		{item: "/", current: "/webhook", want: false},
		{item: "/resources", current: "/resources", want: true},
		{item: "/resources", current: "/resources/git", want: true},
		{item: "/resources/git", current: "/resources/github", want: false},
		{item: "/resources/git", current: "/resources/git", want: true},
	}

	for _, tt := range tests {
		if got := isActive(tt.item, tt.current); got != tt.want {
			t.Errorf("isActive(%q, %q) = %v, want %v", tt.item, tt.current, got, tt.want)
		}
	}
}

func TestBuildEmptyPathIsHome(t *testing.T) {
	items := Build("")
	if !items[0].Active {
		t.Error("Home should be active for an empty path")
	}
	for _, it := range items[1:] {
		if it.Active {
			t.Errorf("%s should not be active", it.Href)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs("/resources/devops")
	want := []Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/resources", Label: "Resources"},
		{Href: "/resources/devops", Label: "Devops", Active: true},
	}
	if len(crumbs) != len(want) {
		t.Fatalf("Breadcrumbs() = %+v", crumbs)
	}
	for i := range want {
		if crumbs[i] != want[i] {
			t.Errorf("crumb %d = %+v, want %+v", i, crumbs[i], want[i])
		}
	}

	home := Breadcrumbs("/")
	if len(home) != 1 || !home[0].Active {
		t.Errorf("Breadcrumbs(/) = %+v", home)
	}
}

func TestArticleCrumbs(t *testing.T) {
	crumbs := ArticleCrumbs("git", "Git Resources", "/webhook", "Webhooks")
	if len(crumbs) != 3 {
		t.Fatalf("ArticleCrumbs() = %+v", crumbs)
	}
	if crumbs[1].Href != "/resources/git" || crumbs[1].Label != "Git Resources" {
		t.Errorf("category crumb = %+v", crumbs[1])
	}
	if !crumbs[2].Active || crumbs[2].Label != "Webhooks" {
		t.Errorf("article crumb = %+v", crumbs[2])
	}

	if got := ArticleCrumbs("", "", "/x", "X"); len(got) != 2 {
		t.Errorf("ArticleCrumbs() without category = %+v", got)
	}
}

func TestTitleFromSegment(t *testing.T) {
	tests := map[string]string{
		"":                   "",
		"git":                "Git",
		"git-prune_branches": "Git Prune Branches",
		"ci-4":               "Ci 4",
	}
	for in, want := range tests {
		if got := TitleFromSegment(in); got != want {
			t.Errorf("TitleFromSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

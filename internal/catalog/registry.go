package catalog

func comingSoon(description string) []ContentItem {
	return []ContentItem{{Name: "Coming Soon", Path: Placeholder, Description: description}}
}

// Default is the site's category registry.
var Default = NewRegistry(
	Category{Key: "react", Entry: CategoryEntry{
		Title: "React Resources",
		Items: []ContentItem{
			{Name: "useRef Hook", Path: "/react-ref", Description: "Mutable refs, DOM access and values that survive re-renders."},
			{Name: "Context API", Path: "/react-context", Description: "Share state across the tree without prop drilling."},
			{Name: "Portals", Path: "/react-portal", Description: "Render children into a DOM node outside the parent hierarchy."},
			{Name: "Suspense", Path: "/react-suspense", Description: "Declarative loading states for lazy components and data."},
		},
	}},
	Category{Key: "laravel", Entry: CategoryEntry{
		Title: "Laravel Resources",
		Items: []ContentItem{
			{Name: "Laravel Concepts", Path: "/laravel-concepts", Description: "Service container, facades, providers and the request lifecycle."},
			{Name: "Queue Workers", Path: "/laravel-queue-worker-guide", Description: "Running, supervising and tuning queue workers."},
			{Name: "Utility Classes", Path: "/laravel-utility-class", Description: "Organising reusable helpers as plain classes."},
			{Name: "GraphQL with Lighthouse", Path: "/laravel-graphql-guide", Description: "Schema-first GraphQL APIs on Laravel."},
		},
	}},
	Category{Key: "git", Entry: CategoryEntry{
		Title: "Git Resources",
		Items: []ContentItem{
			{Name: "Git Commands", Path: "/git-commands-reference", Description: "Everyday commands with short explanations."},
			{Name: "Gitflow Workflow", Path: "/gitflow-workflow", Description: "Feature, release and hotfix branches explained."},
			{Name: "Conflict Resolution", Path: "/git-conflict-resolution", Description: "Reading conflict markers and resolving them safely."},
			{Name: "Pruning Branches", Path: "/git-prune-branches", Description: "Cleaning up stale local and remote branches."},
			{Name: "Pull Request Scenarios", Path: "/pr-scenarios-guide", Description: "Common pull request situations and how to handle them."},
			{Name: "Bitbucket Draft PRs", Path: "/bitbucket-draft-pr-guide", Description: "Opening and promoting draft pull requests on Bitbucket."},
			{Name: "git commit --amend", Path: "/git-commit-am-guide", Description: "Fixing the last commit message or contents."},
			{Name: "Feature Branch Rebase", Path: "/git-feature-branch-rebase", Description: "Keeping a feature branch current with rebase."},
			{Name: "Commit Types", Path: "/git-commit-types", Description: "Conventional commit prefixes and when to use them."},
			{Name: "Preparing a New Feature", Path: "/git-prep-new-feature", Description: "Starting a feature branch from an up to date base."},
			{Name: "Git Hooks", Path: Placeholder, Description: "Automating checks with client-side hooks."},
		},
	}},
	Category{Key: "devops", Entry: CategoryEntry{
		Title: "DevOps Resources",
		Items: []ContentItem{
			{Name: "Vite Explained", Path: "/vite-explanation", Description: "What Vite does in development and at build time."},
			{Name: "Web Services", Path: "/web-services-explanation", Description: "REST, SOAP and friends in plain words."},
			{Name: "Webhooks", Path: "/webhook", Description: "Receiving and verifying event callbacks."},
			{Name: "SSL with Let's Encrypt", Path: "/ssl-guide-lets-encrypt", Description: "Issuing and renewing certificates with certbot."},
			{Name: "Supabase Migrations", Path: "/supabase-migration-guide", Description: "Managing schema migrations with the Supabase CLI."},
		},
	}},
	Category{Key: "codeigniter", Entry: CategoryEntry{
		Title: "CodeIgniter Resources",
		Items: []ContentItem{
			{Name: "CodeIgniter 4 Layouts", Path: "/ci-4", Description: "View layouts, sections and partials in CodeIgniter 4."},
		},
	}},
	Category{Key: "nodejs", Entry: CategoryEntry{
		Title: "Node.js Resources",
		Items: comingSoon("Node.js guides are on the way."),
	}},
	Category{Key: "python", Entry: CategoryEntry{
		Title: "Python Resources",
		Items: comingSoon("Python guides are on the way."),
	}},
	Category{Key: "mongodb", Entry: CategoryEntry{
		Title: "MongoDB Resources",
		Items: comingSoon("MongoDB guides are on the way."),
	}},
	Category{Key: "sql", Entry: CategoryEntry{
		Title: "SQL Resources",
		Items: comingSoon("SQL guides are on the way."),
	}},
	Category{Key: "tailwind", Entry: CategoryEntry{
		Title: "Tailwind CSS Resources",
		Items: comingSoon("Tailwind CSS guides are on the way."),
	}},
	Category{Key: "docker", Entry: CategoryEntry{
		Title: "Docker Resources",
		Items: comingSoon("Docker guides are on the way."),
	}},
)

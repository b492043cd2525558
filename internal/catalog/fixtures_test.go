package catalog

import (
	"fmt"
	"math/rand"

	"tagscope/internal/domain"
)

func scenarioDataset() []domain.Project {
	return []domain.Project{
		{URL: "foo", Org: "acme", Stars: 10, Released: "2023-01-01", Tags: []string{"ml", "infra"}},
		{URL: "bar", Org: "beta", Stars: 3, Released: "2024-06-30", Tags: []string{"ml"}},
	}
}

var tagPool = []string{"ml", "infra", "go", "cli", "db", "web", "Rust", "k8s"}

// randomDataset builds a reproducible dataset for property checks
func randomDataset(seed int64, size int) []domain.Project {
	r := rand.New(rand.NewSource(seed))
	projects := make([]domain.Project, size)
	for i := range projects {
		n := r.Intn(4)
		tags := make([]string, 0, n)
		for j := 0; j < n; j++ {
			tags = append(tags, tagPool[r.Intn(len(tagPool))])
		}
		projects[i] = domain.Project{
			URL:      fmt.Sprintf("github.com/org%d/Repo-%d", r.Intn(5), i),
			Org:      fmt.Sprintf("Org%d", r.Intn(5)),
			Stars:    r.Intn(5000),
			Released: fmt.Sprintf("202%d-0%d-1%d", r.Intn(5), 1+r.Intn(9), r.Intn(10)),
			Tags:     tags,
		}
	}
	return projects
}

package report

import (
	"strings"

	"github.com/gorewood/snitch/internal/issue"
)

// bucketSeparator is the blank line between two buckets.
const bucketSeparator = "\n\n"

// Dimension is an issue attribute reports can be grouped by.
type Dimension int

// Grouping dimensions.
const (
	ByMilestone Dimension = iota
	ByLabel
	ByAssignee
)

// Bucket is a group of issues sharing one value of a Dimension. Href links
// to that value on the forge; it is empty for the placeholder bucket.
type Bucket struct {
	Key    string
	Href   string
	Issues []issue.Issue
}

// bucketKey is one grouping value of an issue.
type bucketKey struct {
	name string
	href string
}

// GroupBy partitions issues into buckets in one pass. Buckets are ordered
// by first appearance of their key, and issues keep their input order
// inside each bucket. An issue with several values along the dimension is
// added to each of their buckets, once.
func GroupBy(cfg Config, issues []issue.Issue, by Dimension) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket

	for _, is := range issues {
		seen := make(map[string]bool)
		for _, key := range keysOf(by, repoBaseURL(cfg.Repo, is.URL), is) {
			if seen[key.name] {
				continue
			}
			seen[key.name] = true

			pos, ok := index[key.name]
			if !ok {
				pos = len(buckets)
				index[key.name] = pos
				buckets = append(buckets, Bucket{Key: key.name, Href: key.href})
			}
			buckets[pos].Issues = append(buckets[pos].Issues, is)
		}
	}
	return buckets
}

// keysOf returns the grouping values of is, or the dimension's placeholder.
func keysOf(by Dimension, base string, is issue.Issue) []bucketKey {
	switch by {
	case ByMilestone:
		if is.Milestone == nil {
			return []bucketKey{{name: noMilestone}}
		}
		return []bucketKey{{name: is.Milestone.Title, href: milestoneURL(base, is.Milestone.Title)}}

	case ByLabel:
		if len(is.Labels) == 0 {
			return []bucketKey{{name: noLabels}}
		}
		keys := make([]bucketKey, 0, len(is.Labels))
		for _, label := range is.Labels {
			keys = append(keys, bucketKey{name: label.Name, href: labelURL(base, label.Name)})
		}
		return keys

	case ByAssignee:
		if len(is.Assignees) == 0 {
			return []bucketKey{{name: unassigned}}
		}
		keys := make([]bucketKey, 0, len(is.Assignees))
		for _, assignee := range is.Assignees {
			keys = append(keys, bucketKey{name: assignee.DisplayName(), href: profileURL(base, assignee.Handle())})
		}
		return keys
	}
	return nil
}

// section renders a set of issues into part of a report.
type section func(issues []issue.Issue) (string, error)

// listSection renders issues with the issue renderer.
func listSection(cfg Config, r Renderer, opts DisplayOptions) section {
	return func(issues []issue.Issue) (string, error) {
		return renderIssues(cfg, r, issues, opts)
	}
}

// groupedSection buckets issues along by and renders each bucket under a
// heading of the given level using inner. Nesting groupedSections yields
// multi-level reports.
func groupedSection(cfg Config, r Renderer, by Dimension, level int, inner section) section {
	return func(issues []issue.Issue) (string, error) {
		buckets := GroupBy(cfg, issues, by)
		if len(buckets) == 0 {
			return "", ErrNoIssues
		}

		parts := make([]string, 0, len(buckets))
		for _, bucket := range buckets {
			body, err := inner(bucket.Issues)
			if err != nil {
				return "", err
			}
			parts = append(parts, r.Heading(level, bucket.Key, bucket.Href)+body)
		}
		return strings.Join(parts, bucketSeparator), nil
	}
}

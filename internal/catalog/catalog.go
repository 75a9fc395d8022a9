// Package catalog holds the static option tables behind the generation
// form: role to example companies, difficulty guidance, DSA topics and
// supported languages. The tables are plain data so they can be extended
// without touching prompt or parser logic.
package catalog

import (
	"sort"
	"strings"

	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

var roleCompanies = map[string]string{
	"frontend developer":        "Google, Meta, Netflix, Airbnb",
	"backend developer":         "Amazon, Google, Uber, Stripe",
	"fullstack developer":       "Meta, Microsoft, Shopify, Atlassian",
	"data engineer":             "Netflix, Databricks, Snowflake, Uber",
	"data scientist":            "Google, OpenAI, Airbnb, LinkedIn",
	"mobile developer":          "Apple, Google, Instagram, Spotify",
	"devops engineer":           "Amazon, Netflix, HashiCorp, Datadog",
	"machine learning engineer": "OpenAI, Google DeepMind, Meta, NVIDIA",
	"sde":                       "Amazon, Google, Microsoft, Apple",
	"sde intern":                "Amazon, Google, Microsoft, Flipkart",
}

const genericCompanies = "top product-based companies"

// Companies returns a readable example-company list for a role. Unknown
// roles fall back to a generic phrase rather than an error.
func Companies(role string) string {
	if s, ok := roleCompanies[strings.ToLower(strings.TrimSpace(role))]; ok {
		return s
	}
	return genericCompanies
}

var difficultyGuidance = map[model.Difficulty]string{
	model.DifficultyEasy:   "Keep the questions beginner friendly: single concept, small input sizes, direct application of the topic without tricky edge cases.",
	model.DifficultyMedium: "Make the questions interview-realistic: combine the topic with one supporting concept and require an efficient (better than brute force) approach.",
	model.DifficultyHard:   "Make the questions challenging: tight complexity constraints, non-obvious insights, and edge cases that break naive solutions.",
}

// Guidance returns the prompt sentence for a difficulty level. Unknown
// levels get the medium guidance.
func Guidance(d model.Difficulty) string {
	if s, ok := difficultyGuidance[d]; ok {
		return s
	}
	return difficultyGuidance[model.DifficultyMedium]
}

var topics = []string{
	"Arrays",
	"Strings",
	"Two Pointers",
	"Sliding Window",
	"Hashing",
	"Stacks",
	"Queues",
	"Linked Lists",
	"Binary Search",
	"Sorting",
	"Recursion",
	"Backtracking",
	"Bit Manipulation",
	"Math",
	"Greedy",
	"Intervals",
	"Binary Trees",
	"Binary Search Trees",
	"Heaps",
	"Tries",
	"Graphs",
	"BFS/DFS",
	"Topological Sort",
	"Dynamic Programming",
	"Union Find",
}

// Topics returns the fixed topic list in display order.
func Topics() []string {
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// ValidTopic reports whether the topic is one of the catalog entries.
func ValidTopic(topic string) bool {
	for _, t := range topics {
		if strings.EqualFold(t, topic) {
			return true
		}
	}
	return false
}

// Language describes one supported target language: its canonical tag,
// display name and the hard-coded skeleton used when code extraction
// fails entirely.
type Language struct {
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	Skeleton string `json:"-"`
}

var languages = []Language{
	{Tag: "python", Name: "Python", Skeleton: "def solve():\n    # Write your solution here\n    pass\n"},
	{Tag: "java", Name: "Java", Skeleton: "public class Solution {\n    public static void solve() {\n        // Write your solution here\n    }\n}\n"},
	{Tag: "cpp", Name: "C++", Skeleton: "#include <bits/stdc++.h>\nusing namespace std;\n\nvoid solve() {\n    // Write your solution here\n}\n"},
	{Tag: "javascript", Name: "JavaScript", Skeleton: "function solve() {\n    // Write your solution here\n}\n"},
	{Tag: "go", Name: "Go", Skeleton: "package main\n\nfunc solve() {\n    // Write your solution here\n}\n"},
}

// GenericSkeleton covers languages without a dedicated fallback skeleton.
const GenericSkeleton = "// Write your solution here"

// Languages returns the supported language list.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Skeleton returns the fallback code skeleton for a language tag, or the
// generic one-liner when the language has no dedicated skeleton.
func Skeleton(tag string) string {
	for _, l := range languages {
		if strings.EqualFold(l.Tag, tag) {
			return l.Skeleton
		}
	}
	return GenericSkeleton
}

// Modes returns the supported generation modes.
func Modes() []model.Mode {
	return []model.Mode{model.ModeImplementation, model.ModeTemplate, model.ModeProblem}
}

// ValidMode reports whether m is a supported generation mode.
func ValidMode(m model.Mode) bool {
	switch m {
	case model.ModeImplementation, model.ModeTemplate, model.ModeProblem:
		return true
	}
	return false
}

// Difficulties returns the supported difficulty levels in ascending order.
func Difficulties() []model.Difficulty {
	return []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
}

// ValidDifficulty reports whether d is a supported difficulty level.
func ValidDifficulty(d model.Difficulty) bool {
	_, ok := difficultyGuidance[d]
	return ok
}

// Roles returns the known role names for the form dropdown.
func Roles() []string {
	out := make([]string, 0, len(roleCompanies))
	for r := range roleCompanies {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

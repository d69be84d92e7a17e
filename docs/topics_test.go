package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded by GetTopic.
	// 2. Every .md file (excluding readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestTopicsAreWellFormedMarkdown(t *testing.T) {
	// Each topic must parse as markdown and start with a level-1 heading,
	// so `bkp topic` always renders a titled section.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("%s does not start with a heading, got %T", file, first)
			}
			if heading.Level != 1 {
				t.Errorf("%s starts with a level-%d heading, want level 1", file, heading.Level)
			}
		})
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	for _, want := range []string{"# Document format", "# Account kinds", "# Groupings"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopics(*) missing section %q", want)
		}
	}
}

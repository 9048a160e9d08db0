// Package docs holds the user documentation, one markdown file per topic.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the topic shown when none is requested.
const Readme = "readme"

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found (available: %s): %w", topic, strings.Join(Topics(), ", "), err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
//
// The "*" topic expands to the readme followed by every other topic.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			names = append([]string{Readme}, Topics()...)
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Topics returns the sorted list of topics, the readme excluded.
func Topics() []string {
	entries, _ := fs.ReadDir(docs, ".")
	var topics []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || e.IsDir() || name == Readme {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}

package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

// TestTopics checks that every topic listed in readme.md loads, and that every
// markdown file is listed there.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"# calc", "# mapping", "# serve"} {
		if !strings.Contains(all, heading) {
			t.Errorf("GetTopics(*) misses %q", heading)
		}
	}
	if strings.Contains(all, "Topics, shown with") {
		t.Error("GetTopics(*) includes the index")
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) succeeded, want an error")
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := buildLots(t, t.TempDir())
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, bin, file)
		})
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildLots builds the `lots` executable in dir and returns its path.
func buildLots(t *testing.T, dir string) string {
	t.Helper()
	output := filepath.Join(dir, "lots")
	buildCmd := exec.Command("go", "build", "-o", output, "../lots/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build lots command: %v\n%s", err, out)
	}
	return output
}

// parseMarkdown returns the executable blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		switch lang {
		case bashCheck, bashSetup, bashRun, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			body.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: body.String(),
			File:    file,
			Line:    bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// blockRunner carries a scenario from block to block.
type blockRunner struct {
	env            []string
	previousOutput string
	tmpFolder      string
}

func (r *blockRunner) runBlock(t *testing.T, block *Block) {
	t.Helper()

	if block.Type == consoleCheck {
		want := strings.TrimSpace(block.Content)
		got := strings.TrimSpace(r.previousOutput)
		if want != got {
			t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q\n", block.File, block.Line, got, want, got, want)
		}
		return
	}
	if block.Type == bashSetup {
		r.tmpFolder = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+block.Content)
	cmd.Dir = r.tmpFolder
	cmd.Env = r.env
	output, err := cmd.CombinedOutput()
	if block.Type == bashRun {
		r.previousOutput = string(output)
	}
	if err == nil {
		return
	}
	switch block.Type {
	case bashSetup, bashRun:
		t.Fatalf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
	case bashCheck:
		t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
	}
}

// runBlocks executes the scenarios of a markdown file with bin on the PATH.
func runBlocks(t *testing.T, bin, file string) {
	t.Helper()

	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}
	path := fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH"))
	env := append(os.Environ(), path, "LOTS_LOG_LEVEL=error", "LOTS_PROFILE=", "LOTS_BUY_KEYWORD=", "LOTS_SELL_KEYWORD=")

	r := blockRunner{env: env, tmpFolder: t.TempDir()}
	for _, block := range blocks {
		r.runBlock(t, block)
	}
}

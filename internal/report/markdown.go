package report

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBullet
	blockNumbered
)

// block is one line of the summary after markdown classification
type block struct {
	kind   blockKind
	level  int
	number string
	text   string
}

var (
	reRule     = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// parseBlocks classifies every non-blank line of markdown. Rules are dropped.
func parseBlocks(markdown string) []block {
	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "", reRule.MatchString(line):
			continue
		case reHeading.MatchString(line):
			m := reHeading.FindStringSubmatch(line)
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
		case reBullet.MatchString(line):
			m := reBullet.FindStringSubmatch(line)
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
		case reNumbered.MatchString(line):
			m := reNumbered.FindStringSubmatch(line)
			blocks = append(blocks, block{kind: blockNumbered, number: m[1], text: m[2]})
		default:
			blocks = append(blocks, block{kind: blockParagraph, text: line})
		}
	}
	return blocks
}

// span is a run of text with uniform weight
type span struct {
	text string
	bold bool
}

// inlineSpans splits text on **bold** markers and strips the remaining inline markup
func inlineSpans(text string) []span {
	var spans []span
	add := func(s string, bold bool) {
		if s = stripInline(s); s != "" {
			spans = append(spans, span{text: s, bold: bold})
		}
	}

	last := 0
	for _, loc := range reBold.FindAllStringSubmatchIndex(text, -1) {
		add(text[last:loc[0]], false)
		add(text[loc[2]:loc[3]], true)
		last = loc[1]
	}
	add(text[last:], false)
	return spans
}

// plainText drops all inline markup, for places that take a single run
func plainText(text string) string {
	return stripInline(strings.ReplaceAll(text, "**", ""))
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
